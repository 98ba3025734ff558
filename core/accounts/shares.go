// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package accounts

import (
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// defaultSharesPerCoin bootstraps an empty pool: the first unit of underlying
// mints one million shares, leaving headroom for the share price to grow as
// interest accrues.
var defaultSharesPerCoin = num.NewUint(1_000_000)

// SharesForAmount converts an underlying amount to shares against the given
// pool, rounding down. With an empty pool it mints at the bootstrap ratio.
// Used both for minting on borrow/lend and burning on repay/reclaim: rounding
// down a burn leaves the residual share dust with the account, never the pool.
func SharesForAmount(amount, totalShares, totalAmount *num.Uint) (*num.Uint, error) {
	if totalShares.IsZero() || totalAmount.IsZero() {
		s, err := num.MulRatio(amount, defaultSharesPerCoin, num.UintOne())
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return num.MulRatio(amount, totalShares, totalAmount)
}

// DebtForShares converts debt shares to the underlying amount owed, rounding
// up so accrued interest is never forgiven by truncation.
func DebtForShares(shares, totalShares, totalAmount *num.Uint) (*num.Uint, error) {
	if totalShares.IsZero() {
		return num.UintZero(), nil
	}
	return num.MulRatioCeil(shares, totalAmount, totalShares)
}

// LentForShares converts lend shares to the underlying amount the account is
// entitled to, rounding down.
func LentForShares(shares, totalShares, totalAmount *num.Uint) (*num.Uint, error) {
	if totalShares.IsZero() {
		return num.UintZero(), nil
	}
	return num.MulRatio(shares, totalAmount, totalShares)
}

// AddDebtShares mints debt shares against (account, denom).
func (e *Engine) AddDebtShares(accountID, denom string, shares *num.Uint) {
	if shares.IsZero() {
		return
	}
	incrementEntry(e.debtShares, accountID, denom, shares)
	incrementTotal(e.totalDebtShares, denom, shares)
}

// BurnDebtShares burns debt shares from (account, denom). When the burn
// clears the position the row is removed.
func (e *Engine) BurnDebtShares(accountID, denom string, shares *num.Uint) error {
	if err := decrementEntry(e.debtShares, accountID, denom, shares); err != nil {
		return err
	}
	return decrementTotal(e.totalDebtShares, denom, shares)
}

// ClearDebtShares removes the account's whole debt row for denom and returns
// the share count burnt. Used on full repayment, where burning the exact row
// avoids leaving rounding dust behind.
func (e *Engine) ClearDebtShares(accountID, denom string) (*num.Uint, error) {
	shares := e.DebtShares(accountID, denom)
	if shares.IsZero() {
		return nil, types.ErrNoDebt
	}
	if err := e.BurnDebtShares(accountID, denom, shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// AddLendShares mints lend shares against (account, denom).
func (e *Engine) AddLendShares(accountID, denom string, shares *num.Uint) {
	if shares.IsZero() {
		return
	}
	incrementEntry(e.lendShares, accountID, denom, shares)
	incrementTotal(e.totalLendShares, denom, shares)
}

// BurnLendShares burns lend shares from (account, denom).
func (e *Engine) BurnLendShares(accountID, denom string, shares *num.Uint) error {
	if err := decrementEntry(e.lendShares, accountID, denom, shares); err != nil {
		return err
	}
	return decrementTotal(e.totalLendShares, denom, shares)
}

// ClearLendShares removes the account's whole lend row for denom and returns
// the share count burnt. Used when reclaiming the full lent balance.
func (e *Engine) ClearLendShares(accountID, denom string) (*num.Uint, error) {
	shares := e.LendShares(accountID, denom)
	if shares.IsZero() {
		return nil, types.ErrNoneLent
	}
	if err := e.BurnLendShares(accountID, denom, shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// DebtAmount resolves the account's debt in denom to an underlying amount,
// given the pool's current total underlying owed. Returns zero when the
// account holds no shares.
func (e *Engine) DebtAmount(accountID, denom string, totalAmount *num.Uint) (*num.Uint, error) {
	shares := e.DebtShares(accountID, denom)
	if shares.IsZero() {
		return num.UintZero(), nil
	}
	return DebtForShares(shares, e.TotalDebtShares(denom), totalAmount)
}

// LentAmount resolves the account's lent balance in denom to an underlying
// amount, given the pool's current total underlying lent.
func (e *Engine) LentAmount(accountID, denom string, totalAmount *num.Uint) (*num.Uint, error) {
	shares := e.LendShares(accountID, denom)
	if shares.IsZero() {
		return num.UintZero(), nil
	}
	return LentForShares(shares, e.TotalLendShares(denom), totalAmount)
}
