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

package credit

import (
	"github.com/pkg/errors"

	"code.vegaprotocol.io/credit/core/accounts"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

// lend supplies a deposited coin to the money market. The entitlement is
// tracked in shares so pool yield accrues to the account without further
// bookkeeping.
func (e *Engine) lend(accountID string, ac types.ActionCoin) error {
	p, err := e.params.AssetParams(ac.Denom)
	if err != nil {
		return err
	}
	if !p.Whitelisted {
		return types.NotWhitelistedError{Ref: ac.Denom}
	}
	amount, err := e.resolveAmount(accountID, ac)
	if err != nil {
		return err
	}

	totalLent, err := e.market.TotalLent(ac.Denom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	shares, err := accounts.SharesForAmount(amount, e.accounts.TotalLendShares(ac.Denom), totalLent)
	if err != nil {
		return err
	}

	coin := types.NewCoin(ac.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
		return err
	}
	e.accounts.AddLendShares(accountID, ac.Denom, shares)
	if err := e.market.Lend(coin); err != nil {
		return errors.Wrap(err, "money market")
	}

	if e.log.IsDebug() {
		e.log.Debug("coin lent",
			logging.AccountID(accountID),
			logging.String("coin", coin.String()),
			logging.String("shares", shares.String()),
		)
	}
	return nil
}

// reclaim pulls a lent coin back into the deposit, clamped to the account's
// current entitlement.
func (e *Engine) reclaim(accountID string, ac types.ActionCoin) error {
	totalLent, err := e.market.TotalLent(ac.Denom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	lent, err := e.accounts.LentAmount(accountID, ac.Denom, totalLent)
	if err != nil {
		return err
	}
	if lent.IsZero() {
		return types.ErrNoneLent
	}

	requested := ac.Amount
	if ac.IsAccountBalance() {
		requested = lent
	}
	if requested == nil || requested.IsZero() {
		return types.ErrNoAmount
	}
	amount := num.Min(requested, lent)

	if amount.EQ(lent) {
		if _, err := e.accounts.ClearLendShares(accountID, ac.Denom); err != nil {
			return err
		}
	} else {
		shares, err := accounts.SharesForAmount(amount, e.accounts.TotalLendShares(ac.Denom), totalLent)
		if err != nil {
			return err
		}
		if err := e.accounts.BurnLendShares(accountID, ac.Denom, shares); err != nil {
			return err
		}
	}

	coin := types.NewCoin(ac.Denom, amount.Clone())
	if err := e.market.Reclaim(coin); err != nil {
		return errors.Wrap(err, "money market")
	}
	e.accounts.IncrementDeposit(accountID, coin)

	if e.log.IsDebug() {
		e.log.Debug("lent coin reclaimed",
			logging.AccountID(accountID),
			logging.String("coin", coin.String()),
		)
	}
	return nil
}
