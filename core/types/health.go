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

import (
	"fmt"

	"code.vegaprotocol.io/credit/libs/num"
)

// Health is the computed risk state of one account. The health factors are
// nil when the account has no debt, a ratio cannot be formed.
type Health struct {
	TotalDebtValue                         *num.Uint
	TotalCollateralValue                   *num.Uint
	MaxLTVAdjustedCollateral               *num.Uint
	LiquidationThresholdAdjustedCollateral *num.Uint
	MaxLTVHealthFactor                     *num.Decimal
	LiquidationHealthFactor                *num.Decimal
}

// IsLiquidatable reports whether the curative threshold is breached.
func (h Health) IsLiquidatable() bool {
	return h.LiquidationHealthFactor != nil && h.LiquidationHealthFactor.LessThan(num.DecimalOne())
}

// IsAboveMaxLTV reports whether the preventive threshold is breached.
func (h Health) IsAboveMaxLTV() bool {
	return h.MaxLTVHealthFactor != nil && h.MaxLTVHealthFactor.LessThan(num.DecimalOne())
}

func (h Health) String() string {
	fmtHF := func(hf *num.Decimal) string {
		if hf == nil {
			return "n/a"
		}
		return hf.String()
	}
	return fmt.Sprintf(
		"(total_debt_value: %s, total_collateral_value: %s, max_ltv_adjusted_collateral: %s, liquidation_threshold_adjusted_collateral: %s, max_ltv_health_factor: %s, liquidation_health_factor: %s)",
		h.TotalDebtValue,
		h.TotalCollateralValue,
		h.MaxLTVAdjustedCollateral,
		h.LiquidationThresholdAdjustedCollateral,
		fmtHF(h.MaxLTVHealthFactor),
		fmtHF(h.LiquidationHealthFactor),
	)
}

// BorrowTarget says where the proceeds of a prospective borrow would go,
// which changes how much can be borrowed.
type BorrowTarget struct {
	// Kind is one of the BorrowTarget* constants.
	Kind BorrowTargetKind
	// Vault is set for BorrowTargetVault.
	Vault string
}

type BorrowTargetKind int

const (
	// BorrowTargetWallet sends the borrowed coin out of the account, debt
	// grows with no offsetting collateral.
	BorrowTargetWallet BorrowTargetKind = iota
	// BorrowTargetDeposit keeps the borrowed coin on the account.
	BorrowTargetDeposit
	// BorrowTargetVault enters the borrowed coin straight into a vault.
	BorrowTargetVault
)

// SwapKind selects the health bound used by the max-swap estimator.
type SwapKind int

const (
	// SwapKindDefault relabels collateral from one denom to another.
	SwapKindDefault SwapKind = iota
	// SwapKindRepay applies the swap output directly to debt.
	SwapKindRepay
)
