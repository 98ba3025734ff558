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
	"errors"
	"fmt"
	"sort"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

var (
	// ErrNotEnoughFunds is raised when decrementing a balance below zero.
	ErrNotEnoughFunds = errors.New("not enough funds for action")
	// ErrNotEnoughShares is raised when burning more shares than held.
	ErrNotEnoughShares = errors.New("not enough shares for action")
)

// Engine is the authoritative store of every account's holdings: deposit
// balances, debt and lend share counts, vault positions, and the per-denom
// and per-vault totals. It holds no prices and performs no health logic.
type Engine struct {
	Config
	log *logging.Logger

	deposits   map[string]map[string]*num.Uint
	debtShares map[string]map[string]*num.Uint
	lendShares map[string]map[string]*num.Uint
	vaults     map[string]map[string]*types.VaultPosition
	kinds      map[string]types.AccountKind

	totalDeposits   map[string]*num.Uint
	totalDebtShares map[string]*num.Uint
	totalLendShares map[string]*num.Uint
	vaultSupply     map[string]*num.Uint
}

// New instantiates the accounts engine.
func New(log *logging.Logger, conf Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:          conf,
		log:             log,
		deposits:        map[string]map[string]*num.Uint{},
		debtShares:      map[string]map[string]*num.Uint{},
		lendShares:      map[string]map[string]*num.Uint{},
		vaults:          map[string]map[string]*types.VaultPosition{},
		kinds:           map[string]types.AccountKind{},
		totalDeposits:   map[string]*num.Uint{},
		totalDebtShares: map[string]*num.Uint{},
		totalLendShares: map[string]*num.Uint{},
		vaultSupply:     map[string]*num.Uint{},
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

// SetKind records the account kind. Called when the registry mints the
// account; absent entries default to the unrestricted kind.
func (e *Engine) SetKind(accountID string, kind types.AccountKind) {
	e.kinds[accountID] = kind
}

// Kind returns the account kind, defaulting to the unrestricted kind.
func (e *Engine) Kind(accountID string) types.AccountKind {
	return e.kinds[accountID]
}

// Deposit returns the deposit balance for (account, denom), zero when absent.
func (e *Engine) Deposit(accountID, denom string) *num.Uint {
	if byDenom, ok := e.deposits[accountID]; ok {
		if amt, ok := byDenom[denom]; ok {
			return amt.Clone()
		}
	}
	return num.UintZero()
}

// IncrementDeposit adds to the deposit balance of (account, denom).
func (e *Engine) IncrementDeposit(accountID string, coin types.Coin) {
	if coin.IsZero() {
		return
	}
	incrementEntry(e.deposits, accountID, coin.Denom, coin.Amount)
	incrementTotal(e.totalDeposits, coin.Denom, coin.Amount)
}

// DecrementDeposit removes from the deposit balance, deleting the entry when
// it reaches zero.
func (e *Engine) DecrementDeposit(accountID string, coin types.Coin) error {
	if err := decrementEntry(e.deposits, accountID, coin.Denom, coin.Amount); err != nil {
		return fmt.Errorf("decrement %s deposit of %s: %w", coin, accountID, err)
	}
	// entry existed so the total does too
	_ = decrementTotal(e.totalDeposits, coin.Denom, coin.Amount)
	return nil
}

// Deposits returns all deposit coins of the account, ordered by denom.
func (e *Engine) Deposits(accountID string) []types.Coin {
	return listCoins(e.deposits[accountID])
}

// TotalDeposited returns the engine-wide deposit holdings of a denom. Used
// for the registry deposit-cap check.
func (e *Engine) TotalDeposited(denom string) *num.Uint {
	if t, ok := e.totalDeposits[denom]; ok {
		return t.Clone()
	}
	return num.UintZero()
}

// TotalDebtShares returns the denom's outstanding debt share count.
func (e *Engine) TotalDebtShares(denom string) *num.Uint {
	if t, ok := e.totalDebtShares[denom]; ok {
		return t.Clone()
	}
	return num.UintZero()
}

// TotalLendShares returns the denom's outstanding lend share count.
func (e *Engine) TotalLendShares(denom string) *num.Uint {
	if t, ok := e.totalLendShares[denom]; ok {
		return t.Clone()
	}
	return num.UintZero()
}

// DebtShares returns the account's share count for denom, zero when absent.
func (e *Engine) DebtShares(accountID, denom string) *num.Uint {
	if byDenom, ok := e.debtShares[accountID]; ok {
		if s, ok := byDenom[denom]; ok {
			return s.Clone()
		}
	}
	return num.UintZero()
}

// LendShares returns the account's lend share count for denom, zero when
// absent.
func (e *Engine) LendShares(accountID, denom string) *num.Uint {
	if byDenom, ok := e.lendShares[accountID]; ok {
		if s, ok := byDenom[denom]; ok {
			return s.Clone()
		}
	}
	return num.UintZero()
}

// HasDebt reports whether the account owes anything in denom.
func (e *Engine) HasDebt(accountID, denom string) bool {
	byDenom, ok := e.debtShares[accountID]
	if !ok {
		return false
	}
	_, ok = byDenom[denom]
	return ok
}

// HasLend reports whether the account has lent anything in denom.
func (e *Engine) HasLend(accountID, denom string) bool {
	byDenom, ok := e.lendShares[accountID]
	if !ok {
		return false
	}
	_, ok = byDenom[denom]
	return ok
}

// Checkpoint captures a deep copy of the full engine state. The pipeline
// takes one at batch entry and restores it when any callback fails, matching
// the all-or-nothing transaction semantics of the host runtime.
func (e *Engine) Checkpoint() *Checkpoint {
	return &Checkpoint{
		deposits:        cloneNested(e.deposits),
		debtShares:      cloneNested(e.debtShares),
		lendShares:      cloneNested(e.lendShares),
		vaults:          cloneVaults(e.vaults),
		kinds:           cloneKinds(e.kinds),
		totalDeposits:   cloneTotals(e.totalDeposits),
		totalDebtShares: cloneTotals(e.totalDebtShares),
		totalLendShares: cloneTotals(e.totalLendShares),
		vaultSupply:     cloneTotals(e.vaultSupply),
	}
}

// Restore rewinds the engine to a previously captured checkpoint.
func (e *Engine) Restore(cp *Checkpoint) {
	e.deposits = cloneNested(cp.deposits)
	e.debtShares = cloneNested(cp.debtShares)
	e.lendShares = cloneNested(cp.lendShares)
	e.vaults = cloneVaults(cp.vaults)
	e.kinds = cloneKinds(cp.kinds)
	e.totalDeposits = cloneTotals(cp.totalDeposits)
	e.totalDebtShares = cloneTotals(cp.totalDebtShares)
	e.totalLendShares = cloneTotals(cp.totalLendShares)
	e.vaultSupply = cloneTotals(cp.vaultSupply)
}

// Checkpoint is an opaque copy of the engine state at one point in time.
type Checkpoint struct {
	deposits        map[string]map[string]*num.Uint
	debtShares      map[string]map[string]*num.Uint
	lendShares      map[string]map[string]*num.Uint
	vaults          map[string]map[string]*types.VaultPosition
	kinds           map[string]types.AccountKind
	totalDeposits   map[string]*num.Uint
	totalDebtShares map[string]*num.Uint
	totalLendShares map[string]*num.Uint
	vaultSupply     map[string]*num.Uint
}

func incrementEntry(m map[string]map[string]*num.Uint, accountID, key string, amount *num.Uint) {
	byKey, ok := m[accountID]
	if !ok {
		byKey = map[string]*num.Uint{}
		m[accountID] = byKey
	}
	if cur, ok := byKey[key]; ok {
		cur.AddSum(amount)
		return
	}
	byKey[key] = amount.Clone()
}

func decrementEntry(m map[string]map[string]*num.Uint, accountID, key string, amount *num.Uint) error {
	byKey, ok := m[accountID]
	if !ok {
		return ErrNotEnoughFunds
	}
	cur, ok := byKey[key]
	if !ok || cur.LT(amount) {
		return ErrNotEnoughFunds
	}
	cur.Sub(cur, amount)
	if cur.IsZero() {
		delete(byKey, key)
		if len(byKey) == 0 {
			delete(m, accountID)
		}
	}
	return nil
}

func incrementTotal(totals map[string]*num.Uint, key string, amount *num.Uint) {
	if cur, ok := totals[key]; ok {
		cur.AddSum(amount)
		return
	}
	totals[key] = amount.Clone()
}

func decrementTotal(totals map[string]*num.Uint, key string, amount *num.Uint) error {
	cur, ok := totals[key]
	if !ok || cur.LT(amount) {
		return ErrNotEnoughShares
	}
	cur.Sub(cur, amount)
	if cur.IsZero() {
		delete(totals, key)
	}
	return nil
}

func listCoins(byDenom map[string]*num.Uint) []types.Coin {
	if len(byDenom) == 0 {
		return nil
	}
	denoms := make([]string, 0, len(byDenom))
	for d := range byDenom {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	out := make([]types.Coin, 0, len(denoms))
	for _, d := range denoms {
		out = append(out, types.Coin{Denom: d, Amount: byDenom[d].Clone()})
	}
	return out
}

func cloneNested(m map[string]map[string]*num.Uint) map[string]map[string]*num.Uint {
	out := make(map[string]map[string]*num.Uint, len(m))
	for a, byKey := range m {
		c := make(map[string]*num.Uint, len(byKey))
		for k, v := range byKey {
			c[k] = v.Clone()
		}
		out[a] = c
	}
	return out
}

func cloneVaults(m map[string]map[string]*types.VaultPosition) map[string]map[string]*types.VaultPosition {
	out := make(map[string]map[string]*types.VaultPosition, len(m))
	for a, byVault := range m {
		c := make(map[string]*types.VaultPosition, len(byVault))
		for v, p := range byVault {
			cp := p.Clone()
			c[v] = &cp
		}
		out[a] = c
	}
	return out
}

func cloneKinds(m map[string]types.AccountKind) map[string]types.AccountKind {
	out := make(map[string]types.AccountKind, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTotals(m map[string]*num.Uint) map[string]*num.Uint {
	out := make(map[string]*num.Uint, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}
