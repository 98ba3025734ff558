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

package types

import "code.vegaprotocol.io/credit/libs/num"

// HLSParams are the risk parameters applied to high-leveraged-strategy
// accounts in place of the standard ones.
type HLSParams struct {
	MaxLTV               num.Decimal
	LiquidationThreshold num.Decimal
}

// AssetParams is the per-denom risk configuration from the registry.
type AssetParams struct {
	Denom                string
	MaxLTV               num.Decimal
	LiquidationThreshold num.Decimal
	LiquidationBonus     num.Decimal
	// DepositCap bounds the engine-wide holdings of the denom, nil for
	// uncapped.
	DepositCap  *num.Uint
	Whitelisted bool
	HLS         *HLSParams
}

// LTVFor returns the max LTV applying to the given account kind. A
// de-whitelisted asset backs no new leverage regardless of kind.
func (p AssetParams) LTVFor(kind AccountKind) num.Decimal {
	if !p.Whitelisted {
		return num.DecimalZero()
	}
	if kind == AccountKindHighLeveragedStrategy && p.HLS != nil {
		return p.HLS.MaxLTV
	}
	return p.MaxLTV
}

// ThresholdFor returns the liquidation threshold applying to the given
// account kind. De-whitelisting leaves it intact.
func (p AssetParams) ThresholdFor(kind AccountKind) num.Decimal {
	if kind == AccountKindHighLeveragedStrategy && p.HLS != nil {
		return p.HLS.LiquidationThreshold
	}
	return p.LiquidationThreshold
}

// VaultConfig is the per-vault risk configuration from the registry.
type VaultConfig struct {
	Vault                string
	MaxLTV               num.Decimal
	LiquidationThreshold num.Decimal
	// DepositCap bounds the value held in the vault, expressed as a coin.
	DepositCap  Coin
	Whitelisted bool
	HLS         *HLSParams
}

func (c VaultConfig) LTVFor(kind AccountKind) num.Decimal {
	if !c.Whitelisted {
		return num.DecimalZero()
	}
	if kind == AccountKindHighLeveragedStrategy && c.HLS != nil {
		return c.HLS.MaxLTV
	}
	return c.MaxLTV
}

func (c VaultConfig) ThresholdFor(kind AccountKind) num.Decimal {
	if kind == AccountKindHighLeveragedStrategy && c.HLS != nil {
		return c.HLS.LiquidationThreshold
	}
	return c.LiquidationThreshold
}
