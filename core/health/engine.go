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

package health

import (
	"fmt"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.vegaprotocol.io/credit/core/health Oracle,ParamsSource,VaultPricer

// Oracle resolves current prices, denominated in the engine's base value
// unit.
type Oracle interface {
	Price(denom string) (num.Decimal, error)
}

// ParamsSource is the risk parameter registry.
type ParamsSource interface {
	AssetParams(denom string) (types.AssetParams, error)
	VaultConfig(vault string) (types.VaultConfig, error)
}

// VaultPricer resolves vault shares into base tokens and back at the vault's
// current redemption rate.
type VaultPricer interface {
	Info(vault string) (types.VaultInfo, error)
	PreviewRedeem(vault string, shares *num.Uint) (*num.Uint, error)
	PreviewDeposit(vault string, baseAmount *num.Uint) (*num.Uint, error)
}

// Engine computes account health. It is stateless: every computation prices
// the supplied position snapshot against the oracle and the risk registry.
type Engine struct {
	Config
	log *logging.Logger

	oracle Oracle
	params ParamsSource
	vaults VaultPricer
}

// New instantiates the health engine.
func New(log *logging.Logger, conf Config, oracle Oracle, params ParamsSource, vaults VaultPricer) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config: conf,
		log:    log,
		oracle: oracle,
		params: params,
		vaults: vaults,
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

// Compute prices all positions of the account and derives the health
// factors. Collateral values round down and debt values round up, so rounding
// always works against the account. Health factors are nil when the account
// carries no debt.
func (e *Engine) Compute(state types.AccountState) (types.Health, error) {
	h := types.Health{
		TotalDebtValue:                         num.UintZero(),
		TotalCollateralValue:                   num.UintZero(),
		MaxLTVAdjustedCollateral:               num.UintZero(),
		LiquidationThresholdAdjustedCollateral: num.UintZero(),
	}

	for _, c := range state.Deposits {
		if err := e.addCollateral(&h, state.Kind, c); err != nil {
			return types.Health{}, err
		}
	}
	// lent coins back leverage exactly like deposits do
	for _, c := range state.Lends {
		if err := e.addCollateral(&h, state.Kind, c); err != nil {
			return types.Health{}, err
		}
	}
	for _, entry := range state.Vaults {
		if err := e.addVaultCollateral(&h, state.Kind, entry); err != nil {
			return types.Health{}, err
		}
	}

	for _, c := range state.Debts {
		price, err := e.oracle.Price(c.Denom)
		if err != nil {
			return types.Health{}, fmt.Errorf("could not price debt %s: %w", c.Denom, err)
		}
		v, err := num.MulDecimalCeil(c.Amount, price)
		if err != nil {
			return types.Health{}, err
		}
		h.TotalDebtValue.AddSum(v)
	}

	if !h.TotalDebtValue.IsZero() {
		maxLTVHF := num.DecimalRatio(h.MaxLTVAdjustedCollateral, h.TotalDebtValue)
		liqHF := num.DecimalRatio(h.LiquidationThresholdAdjustedCollateral, h.TotalDebtValue)
		h.MaxLTVHealthFactor = &maxLTVHF
		h.LiquidationHealthFactor = &liqHF
	}

	if e.log.IsDebug() {
		e.log.Debug("health computed",
			logging.AccountID(state.AccountID),
			logging.String("health", h.String()),
		)
	}
	return h, nil
}

func (e *Engine) addCollateral(h *types.Health, kind types.AccountKind, c types.Coin) error {
	price, err := e.oracle.Price(c.Denom)
	if err != nil {
		return fmt.Errorf("could not price collateral %s: %w", c.Denom, err)
	}
	params, err := e.params.AssetParams(c.Denom)
	if err != nil {
		return err
	}
	value, err := num.MulDecimal(c.Amount, price)
	if err != nil {
		return err
	}
	return accumulate(h, value, params.LTVFor(kind), params.ThresholdFor(kind))
}

func (e *Engine) addVaultCollateral(h *types.Health, kind types.AccountKind, entry types.VaultPositionEntry) error {
	info, err := e.vaults.Info(entry.Vault)
	if err != nil {
		return err
	}
	// all buckets carry equal collateral weight, a locked share is worth no
	// less than an unlocked one
	base, err := e.vaults.PreviewRedeem(entry.Vault, entry.Position.Total())
	if err != nil {
		return err
	}
	price, err := e.oracle.Price(info.BaseTokenDenom)
	if err != nil {
		return fmt.Errorf("could not price vault base token %s: %w", info.BaseTokenDenom, err)
	}
	conf, err := e.params.VaultConfig(entry.Vault)
	if err != nil {
		return err
	}
	value, err := num.MulDecimal(base, price)
	if err != nil {
		return err
	}
	return accumulate(h, value, conf.LTVFor(kind), conf.ThresholdFor(kind))
}

func accumulate(h *types.Health, value *num.Uint, ltv, threshold num.Decimal) error {
	h.TotalCollateralValue.AddSum(value)
	adj, err := num.MulDecimal(value, ltv)
	if err != nil {
		return err
	}
	h.MaxLTVAdjustedCollateral.AddSum(adj)
	thr, err := num.MulDecimal(value, threshold)
	if err != nil {
		return err
	}
	h.LiquidationThresholdAdjustedCollateral.AddSum(thr)
	return nil
}
