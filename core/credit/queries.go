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
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// Positions returns the account's full position sheet with debts and lends
// resolved to current underlying amounts.
func (e *Engine) Positions(accountID string) (types.AccountState, error) {
	return e.accounts.State(accountID, e.market)
}

// Health computes the account's current health.
func (e *Engine) Health(accountID string) (types.Health, error) {
	return e.computeHealth(accountID)
}

// Owner resolves the account's owner through the registry.
func (e *Engine) Owner(accountID string) (string, error) {
	return e.registry.OwnerOf(accountID)
}

// Kind returns the account's kind.
func (e *Engine) Kind(accountID string) types.AccountKind {
	return e.accounts.Kind(accountID)
}

// AccountIDs pages through every known account id, lexicographically,
// strictly after startAfter.
func (e *Engine) AccountIDs(startAfter string, limit uint64) []string {
	return e.accounts.AccountIDs(startAfter, limit)
}

// TotalDebtShares pages through the per-denom outstanding debt share totals.
func (e *Engine) TotalDebtShares(startAfter string, limit uint64) []types.Coin {
	return e.accounts.TotalDebtSharesPage(startAfter, limit)
}

// TotalLendShares pages through the per-denom outstanding lend share totals.
func (e *Engine) TotalLendShares(startAfter string, limit uint64) []types.Coin {
	return e.accounts.TotalLendSharesPage(startAfter, limit)
}

// VaultSupplies pages through the per-vault share supply held by the engine.
func (e *Engine) VaultSupplies(startAfter string, limit uint64) []types.Coin {
	return e.accounts.VaultSupplyPage(startAfter, limit)
}

// MaxWithdrawEstimate is the largest amount of denom the account could
// withdraw right now without breaching its max LTV.
func (e *Engine) MaxWithdrawEstimate(accountID, denom string) (*num.Uint, error) {
	state, err := e.accounts.State(accountID, e.market)
	if err != nil {
		return nil, err
	}
	return e.health.MaxWithdraw(state, denom)
}

// MaxBorrowEstimate is the largest amount of denom the account could borrow
// right now, given where the proceeds would go.
func (e *Engine) MaxBorrowEstimate(accountID, denom string, target types.BorrowTarget) (*num.Uint, error) {
	state, err := e.accounts.State(accountID, e.market)
	if err != nil {
		return nil, err
	}
	return e.health.MaxBorrow(state, denom, target)
}

// MaxSwapEstimate is the largest amount of denomIn the account could swap to
// denomOut right now without breaching its max LTV.
func (e *Engine) MaxSwapEstimate(accountID, denomIn, denomOut string, kind types.SwapKind) (*num.Uint, error) {
	state, err := e.accounts.State(accountID, e.market)
	if err != nil {
		return nil, err
	}
	return e.health.MaxSwap(state, denomIn, denomOut, kind)
}

// EstimateProvideLiquidity previews the LP tokens minted for the coins.
func (e *Engine) EstimateProvideLiquidity(lpTokenOut string, coinsIn []types.Coin) (*num.Uint, error) {
	return e.zapper.EstimateProvideLiquidity(lpTokenOut, coinsIn)
}

// EstimateWithdrawLiquidity previews the coins returned for the LP token.
func (e *Engine) EstimateWithdrawLiquidity(lpToken types.Coin) ([]types.Coin, error) {
	return e.zapper.EstimateWithdrawLiquidity(lpToken)
}
