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
	"code.vegaprotocol.io/credit/core/liquidation"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
	"code.vegaprotocol.io/credit/metrics"
)

// liquidateCoin repays part of an underwater account's debt in exchange for
// one of its deposited coins plus the liquidation bonus.
func (e *Engine) liquidateCoin(liquidatorID, liquidateeID string, debtCoin types.Coin, requestDenom string) error {
	balance := e.accounts.Deposit(liquidateeID, requestDenom)
	return e.liquidate(liquidatorID, liquidateeID, debtCoin, requestDenom, balance, func(request types.Coin) error {
		if err := e.accounts.DecrementDeposit(liquidateeID, request); err != nil {
			return err
		}
		e.accounts.IncrementDeposit(liquidatorID, request)
		return nil
	})
}

// liquidateLend seizes from the liquidatee's combined deposited and lent
// balance in the request denom. The on-account deposit goes first and only
// the shortfall is reclaimed from the money market.
func (e *Engine) liquidateLend(liquidatorID, liquidateeID string, debtCoin types.Coin, requestDenom string) error {
	totalLent, err := e.market.TotalLent(requestDenom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	lent, err := e.accounts.LentAmount(liquidateeID, requestDenom, totalLent)
	if err != nil {
		return err
	}
	deposited := e.accounts.Deposit(liquidateeID, requestDenom)
	balance := num.Sum(deposited, lent)

	return e.liquidate(liquidatorID, liquidateeID, debtCoin, requestDenom, balance, func(request types.Coin) error {
		fromDeposit := num.Min(request.Amount, deposited)
		if !fromDeposit.IsZero() {
			if err := e.accounts.DecrementDeposit(liquidateeID, types.NewCoin(requestDenom, fromDeposit)); err != nil {
				return err
			}
		}
		shortfall := num.UintZero().Sub(request.Amount, fromDeposit)
		if !shortfall.IsZero() {
			if shortfall.EQ(lent) {
				if _, err := e.accounts.ClearLendShares(liquidateeID, requestDenom); err != nil {
					return err
				}
			} else {
				shares, err := accounts.SharesForAmount(shortfall, e.accounts.TotalLendShares(requestDenom), totalLent)
				if err != nil {
					return err
				}
				if err := e.accounts.BurnLendShares(liquidateeID, requestDenom, shares); err != nil {
					return err
				}
			}
			if err := e.market.Reclaim(types.NewCoin(requestDenom, shortfall)); err != nil {
				return errors.Wrap(err, "money market")
			}
		}
		e.accounts.IncrementDeposit(liquidatorID, request)
		return nil
	})
}

// liquidateVault seizes vault shares from the given bucket, force redeeming
// them so the liquidator receives the underlying base token. The vault token
// must be priced by the oracle for the sizing to work.
func (e *Engine) liquidateVault(liquidatorID, liquidateeID string, debtCoin types.Coin, requestVault string, bucket types.VaultBucket) error {
	info, err := e.vaults.Info(requestVault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	pos := e.accounts.VaultPosition(liquidateeID, requestVault)

	var balance *num.Uint
	switch bucket {
	case types.VaultBucketUnlocked:
		balance = pos.Unlocked
	case types.VaultBucketLocked:
		balance = pos.Locked
	case types.VaultBucketUnlocking:
		balance = pos.TotalUnlocking()
	}

	return e.liquidate(liquidatorID, liquidateeID, debtCoin, info.VaultTokenDenom, balance, func(request types.Coin) error {
		if err := e.seizeVaultShares(liquidateeID, requestVault, bucket, request.Amount); err != nil {
			return err
		}
		base, err := e.vaults.Redeem(requestVault, request.Amount)
		if err != nil {
			return errors.Wrap(err, "vault")
		}
		e.accounts.IncrementDeposit(liquidatorID, types.NewCoin(info.BaseTokenDenom, base))
		return nil
	})
}

// seizeVaultShares removes shares from the liquidatee's position. Unlocking
// tickets are drained oldest first.
func (e *Engine) seizeVaultShares(liquidateeID, vault string, bucket types.VaultBucket, amount *num.Uint) error {
	if bucket != types.VaultBucketUnlocking {
		return e.accounts.DecrementVaultShares(liquidateeID, vault, bucket, amount)
	}
	left := amount.Clone()
	for _, ticket := range e.accounts.VaultPosition(liquidateeID, vault).Unlocking {
		if left.IsZero() {
			return nil
		}
		if ticket.Amount.LTE(left) {
			taken, err := e.accounts.ForceTakeTicket(liquidateeID, vault, ticket.ID)
			if err != nil {
				return err
			}
			left.Sub(left, taken)
			continue
		}
		if err := e.accounts.ReduceTicket(liquidateeID, vault, ticket.ID, left); err != nil {
			return err
		}
		return nil
	}
	if !left.IsZero() {
		return types.NoPositionError{AccountID: liquidateeID, Ref: vault}
	}
	return nil
}

// liquidate is the shared path of the three liquidation variants. The debt
// coin moves from liquidator to liquidatee and a deferred repay settles it,
// while seize hands the collateral side over. A final deferred check rejects
// the batch when the liquidatee's curative health factor got worse.
func (e *Engine) liquidate(liquidatorID, liquidateeID string, debtCoin types.Coin, requestDenom string, requestBalance *num.Uint, seize func(request types.Coin) error) error {
	h, err := e.computeHealth(liquidateeID)
	if err != nil {
		return err
	}
	totalDebt, err := e.market.TotalDebt(debtCoin.Denom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	owed, err := e.accounts.DebtAmount(liquidateeID, debtCoin.Denom, totalDebt)
	if err != nil {
		return err
	}
	if owed.IsZero() {
		return types.ErrNoDebt
	}

	debt, request, err := e.liqCalc.Calculate(liquidation.Request{
		LiquidateeID:    liquidateeID,
		Health:          h,
		DebtCoin:        debtCoin,
		RequestDenom:    requestDenom,
		TotalDebtAmount: owed,
		RequestBalance:  requestBalance,
	})
	if err != nil {
		return err
	}
	preHF := h.LiquidationHealthFactor

	if err := e.accounts.DecrementDeposit(liquidatorID, debt); err != nil {
		return err
	}
	e.accounts.IncrementDeposit(liquidateeID, debt)
	if err := e.enqueue("repay-for-liquidatee", func() error {
		return e.repayForAccount(liquidateeID, debt)
	}); err != nil {
		return err
	}

	if err := seize(request); err != nil {
		return err
	}

	if err := e.enqueue("assert-health-improved", func() error {
		return e.assertHealthImproved(liquidateeID, preHF)
	}); err != nil {
		return err
	}

	metrics.LiquidationsExecuted.Inc()
	e.log.Info("account liquidated",
		logging.AccountID(liquidateeID),
		logging.String("liquidator", liquidatorID),
		logging.String("debt", debt.String()),
		logging.String("request", request.String()),
	)
	return nil
}

// assertHealthImproved compares the liquidatee's curative health factor with
// its pre-liquidation value. A cleared debt leaves the factor undefined,
// which counts as improved.
func (e *Engine) assertHealthImproved(liquidateeID string, preHF *num.Decimal) error {
	h, err := e.computeHealth(liquidateeID)
	if err != nil {
		return err
	}
	if h.LiquidationHealthFactor == nil || preHF == nil {
		return nil
	}
	if h.LiquidationHealthFactor.LessThan(*preHF) {
		return types.ErrHealthNotImproved
	}
	return nil
}
