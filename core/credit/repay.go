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

// repay pays the account's debt down from its deposit. The amount actually
// repaid never exceeds what is owed, over-asking is clamped rather than
// rejected.
func (e *Engine) repay(accountID string, ac types.ActionCoin) error {
	requested := ac.Amount
	if ac.IsAccountBalance() {
		requested = e.accounts.Deposit(accountID, ac.Denom)
	}
	if requested == nil || requested.IsZero() {
		return types.ErrNoAmount
	}
	return e.repayForAccount(accountID, types.NewCoin(ac.Denom, requested.Clone()))
}

// repayForAccount settles up to coin.Amount of the account's debt in the
// coin's denom. Also the working half of a liquidation, where the liquidator
// has just handed the account the coin to repay with.
func (e *Engine) repayForAccount(accountID string, coin types.Coin) error {
	totalDebt, err := e.market.TotalDebt(coin.Denom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	owed, err := e.accounts.DebtAmount(accountID, coin.Denom, totalDebt)
	if err != nil {
		return err
	}
	if owed.IsZero() {
		return types.ErrNoDebt
	}

	amount := num.Min(coin.Amount, owed)
	if amount.EQ(owed) {
		// burning the exact share row on full repayment leaves no dust
		if _, err := e.accounts.ClearDebtShares(accountID, coin.Denom); err != nil {
			return err
		}
	} else {
		shares, err := accounts.SharesForAmount(amount, e.accounts.TotalDebtShares(coin.Denom), totalDebt)
		if err != nil {
			return err
		}
		if err := e.accounts.BurnDebtShares(accountID, coin.Denom, shares); err != nil {
			return err
		}
	}

	repaid := types.NewCoin(coin.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, repaid); err != nil {
		return err
	}
	if err := e.market.Repay(repaid); err != nil {
		return errors.Wrap(err, "money market")
	}

	if e.log.IsDebug() {
		e.log.Debug("debt repaid",
			logging.AccountID(accountID),
			logging.String("coin", repaid.String()),
			logging.String("owed", owed.String()),
		)
	}
	return nil
}
