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

package liquidation

import (
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.vegaprotocol.io/credit/core/liquidation Oracle,ParamsSource

// Oracle resolves current prices.
type Oracle interface {
	Price(denom string) (num.Decimal, error)
}

// ParamsSource supplies the risk parameters the calculation depends on: the
// close factor bounding how much debt one liquidation may retire, and the
// per-denom liquidation bonus.
type ParamsSource interface {
	AssetParams(denom string) (types.AssetParams, error)
	CloseFactor() num.Decimal
}

// Request describes one liquidation to be sized.
type Request struct {
	// LiquidateeID is the account being liquidated.
	LiquidateeID string
	// Health is the liquidatee's current health.
	Health types.Health
	// DebtCoin is the amount of debt the liquidator offers to repay.
	DebtCoin types.Coin
	// RequestDenom is the collateral denom the liquidator wants in return.
	RequestDenom string
	// TotalDebtAmount is the liquidatee's full debt in the debt denom,
	// interest included.
	TotalDebtAmount *num.Uint
	// RequestBalance is how much of the request denom the liquidatee can
	// give up.
	RequestBalance *num.Uint
}

// Engine sizes liquidations. Given what the liquidator offers and wants, it
// adjusts both sides down to the largest pair the rules permit.
type Engine struct {
	Config
	log *logging.Logger

	oracle Oracle
	params ParamsSource
}

// New instantiates the liquidation engine.
func New(log *logging.Logger, conf Config, oracle Oracle, params ParamsSource) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config: conf,
		log:    log,
		oracle: oracle,
		params: params,
	}
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// Calculate sizes the liquidation, returning the debt actually repaid and
// the collateral seized in exchange. The debt side is the minimum of what
// the liquidator offered, what the liquidatee owes, the close-factor cap,
// and what the liquidatee's request-denom balance can absorb after the
// bonus. Every intermediate value rounds down.
func (e *Engine) Calculate(req Request) (types.Coin, types.Coin, error) {
	if !req.Health.IsLiquidatable() {
		return types.Coin{}, types.Coin{}, types.NotLiquidatableError{
			AccountID:    req.LiquidateeID,
			HealthFactor: req.Health.LiquidationHealthFactor,
		}
	}

	debtPrice, err := e.oracle.Price(req.DebtCoin.Denom)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	requestPrice, err := e.oracle.Price(req.RequestDenom)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	debtParams, err := e.params.AssetParams(req.DebtCoin.Denom)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	bonusFactor := num.DecimalOne().Add(debtParams.LiquidationBonus)

	// close-factor cap, in debt denom units
	maxCloseValue, err := num.MulDecimal(req.Health.TotalDebtValue, e.params.CloseFactor())
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	maxCloseAmount, err := num.DivDecimal(maxCloseValue, debtPrice)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}

	// how much debt the liquidatee's request-denom balance can cover once
	// the bonus is carved out
	maxRequestValue, err := num.MulDecimal(req.RequestBalance, requestPrice)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	bonusAdjusted, err := num.DivDecimal(maxRequestValue, bonusFactor)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	balanceAdjustedMaxDebt, err := num.DivDecimal(bonusAdjusted, debtPrice)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}

	debtToRepay := num.Min(
		num.Min(req.DebtCoin.Amount, req.TotalDebtAmount),
		num.Min(maxCloseAmount, balanceAdjustedMaxDebt),
	).Clone()

	// collateral seized = debt value plus the bonus, in request denom units
	debtValue, err := num.MulDecimal(debtToRepay, debtPrice)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	withBonus, err := num.MulDecimal(debtValue, bonusFactor)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}
	requestAmount, err := num.DivDecimal(withBonus, requestPrice)
	if err != nil {
		return types.Coin{}, types.Coin{}, err
	}

	debt := types.NewCoin(req.DebtCoin.Denom, debtToRepay)
	request := types.NewCoin(req.RequestDenom, requestAmount)

	if err := e.assertProfitable(debt, request, debtPrice, requestPrice); err != nil {
		return types.Coin{}, types.Coin{}, err
	}

	if e.log.IsDebug() {
		e.log.Debug("liquidation sized",
			logging.String("debt-repaid", debt.String()),
			logging.String("collateral-seized", request.String()),
		)
	}
	return debt, request, nil
}

// assertProfitable rejects liquidations where the liquidator pays more value
// than they receive. Small amounts or a large price gap can produce one.
func (e *Engine) assertProfitable(debt, request types.Coin, debtPrice, requestPrice num.Decimal) error {
	debtValue, err := num.MulDecimal(debt.Amount, debtPrice)
	if err != nil {
		return err
	}
	requestValue, err := num.MulDecimal(request.Amount, requestPrice)
	if err != nil {
		return err
	}
	if debtValue.GTE(requestValue) {
		return types.ErrLiquidationNotProfitable
	}
	return nil
}
