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
	"sort"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 30
)

// PageLimit clamps a requested page size to the allowed range, applying the
// default when the caller passed zero.
func PageLimit(requested uint64) uint64 {
	if requested == 0 {
		return defaultPageLimit
	}
	if requested > maxPageLimit {
		return maxPageLimit
	}
	return requested
}

// PoolTotals resolves the current total underlying amounts of the debt and
// lend pools, interest included. The money-market engine implements it.
type PoolTotals interface {
	TotalDebt(denom string) (*num.Uint, error)
	TotalLent(denom string) (*num.Uint, error)
}

// AccountIDs returns a lexicographically ordered page of accounts known to
// the store, strictly after startAfter.
func (e *Engine) AccountIDs(startAfter string, limit uint64) []string {
	limit = PageLimit(limit)
	seen := map[string]struct{}{}
	for id := range e.deposits {
		seen[id] = struct{}{}
	}
	for id := range e.debtShares {
		seen[id] = struct{}{}
	}
	for id := range e.lendShares {
		seen[id] = struct{}{}
	}
	for id := range e.vaults {
		seen[id] = struct{}{}
	}
	for id := range e.kinds {
		seen[id] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		if id > startAfter {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if uint64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids
}

// TotalDebtSharesPage returns a page of per-denom outstanding debt share
// totals, ordered by denom, strictly after startAfter.
func (e *Engine) TotalDebtSharesPage(startAfter string, limit uint64) []types.Coin {
	return pageTotals(e.totalDebtShares, startAfter, limit)
}

// TotalLendSharesPage returns a page of per-denom outstanding lend share
// totals, ordered by denom, strictly after startAfter.
func (e *Engine) TotalLendSharesPage(startAfter string, limit uint64) []types.Coin {
	return pageTotals(e.totalLendShares, startAfter, limit)
}

// VaultSupplyPage returns a page of per-vault share supply, ordered by vault
// address, strictly after startAfter.
func (e *Engine) VaultSupplyPage(startAfter string, limit uint64) []types.Coin {
	return pageTotals(e.vaultSupply, startAfter, limit)
}

// State assembles the account's full position picture with debts and lends
// resolved to underlying amounts against the given pools.
func (e *Engine) State(accountID string, pools PoolTotals) (types.AccountState, error) {
	state := types.AccountState{
		AccountID: accountID,
		Kind:      e.Kind(accountID),
		Deposits:  e.Deposits(accountID),
		Vaults:    e.VaultPositions(accountID),
	}

	for _, denom := range sortedKeys(e.debtShares[accountID]) {
		total, err := pools.TotalDebt(denom)
		if err != nil {
			return types.AccountState{}, err
		}
		amt, err := e.DebtAmount(accountID, denom, total)
		if err != nil {
			return types.AccountState{}, err
		}
		state.Debts = append(state.Debts, types.Coin{Denom: denom, Amount: amt})
	}

	for _, denom := range sortedKeys(e.lendShares[accountID]) {
		total, err := pools.TotalLent(denom)
		if err != nil {
			return types.AccountState{}, err
		}
		amt, err := e.LentAmount(accountID, denom, total)
		if err != nil {
			return types.AccountState{}, err
		}
		state.Lends = append(state.Lends, types.Coin{Denom: denom, Amount: amt})
	}

	return state, nil
}

func pageTotals(totals map[string]*num.Uint, startAfter string, limit uint64) []types.Coin {
	limit = PageLimit(limit)
	keys := make([]string, 0, len(totals))
	for k := range totals {
		if k > startAfter {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if uint64(len(keys)) > limit {
		keys = keys[:limit]
	}
	out := make([]types.Coin, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Coin{Denom: k, Amount: totals[k].Clone()})
	}
	return out
}

func sortedKeys(m map[string]*num.Uint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
