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

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

// deposit consumes an attached coin into the account's balance. It runs
// inline rather than as a callback so later actions in the batch can spend
// the deposited funds.
func (e *Engine) deposit(accountID string, coin types.Coin, received *types.Coins) error {
	p, err := e.params.AssetParams(coin.Denom)
	if err != nil {
		return err
	}
	if !p.Whitelisted {
		return types.NotWhitelistedError{Ref: coin.Denom}
	}
	if coin.IsZero() {
		return nil
	}
	if err := received.Deduct(coin); err != nil {
		return err
	}
	e.accounts.IncrementDeposit(accountID, coin)

	if p.DepositCap != nil {
		total := e.accounts.TotalDeposited(coin.Denom)
		if total.GT(p.DepositCap) {
			return types.AboveAssetDepositCapError{
				Denom:   coin.Denom,
				New:     total,
				Maximum: p.DepositCap.Clone(),
			}
		}
	}

	if e.log.IsDebug() {
		e.log.Debug("coin deposited",
			logging.AccountID(accountID),
			logging.String("coin", coin.String()),
		)
	}
	return nil
}

// withdraw sends a deposited coin back to the account owner.
func (e *Engine) withdraw(accountID, owner string, ac types.ActionCoin) error {
	amount, err := e.resolveAmount(accountID, ac)
	if err != nil {
		return err
	}
	coin := types.NewCoin(ac.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
		return err
	}
	if err := e.bank.Send(owner, []types.Coin{coin}); err != nil {
		return errors.Wrap(err, "bank send")
	}
	if e.log.IsDebug() {
		e.log.Debug("coin withdrawn",
			logging.AccountID(accountID),
			logging.String("coin", coin.String()),
		)
	}
	return nil
}

// refundAllBalances empties every deposit back to the owner. A no-op on an
// account with no balances.
func (e *Engine) refundAllBalances(accountID, owner string) error {
	coins := e.accounts.Deposits(accountID)
	if len(coins) == 0 {
		return nil
	}
	for _, coin := range coins {
		if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
			return err
		}
	}
	if err := e.bank.Send(owner, coins); err != nil {
		return errors.Wrap(err, "bank send")
	}
	e.log.Info("balances refunded",
		logging.AccountID(accountID),
		logging.Int("coins", len(coins)),
	)
	return nil
}

// resolveAmount turns an action coin into a concrete amount, reading the
// deposit balance for account-balance references. Zero resolves to an error,
// there is nothing for the action to do.
func (e *Engine) resolveAmount(accountID string, ac types.ActionCoin) (*num.Uint, error) {
	amount := ac.Amount
	if ac.IsAccountBalance() {
		amount = e.accounts.Deposit(accountID, ac.Denom)
	}
	if amount == nil || amount.IsZero() {
		return nil, types.ErrNoAmount
	}
	return amount.Clone(), nil
}
