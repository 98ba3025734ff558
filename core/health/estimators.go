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
	"errors"
	"fmt"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// ErrNoEstimate is raised when an estimator has no solution, for example a
// max-borrow on an asset with no risk parameters.
var ErrNoEstimate = errors.New("no estimate possible")

// The estimators answer "how much of X keeps this account at or above the
// max-LTV line". Per-denom value flooring makes closed forms off by one in
// the corners, so each estimator brackets the answer and binary searches the
// exact boundary: the returned amount passes the health check, one unit more
// does not.

// MaxWithdraw returns the largest amount of denom withdrawable from the
// account's deposit balance without tripping the max-LTV line.
func (e *Engine) MaxWithdraw(state types.AccountState, denom string) (*num.Uint, error) {
	balance := num.UintZero()
	for _, c := range state.Deposits {
		if c.Denom == denom {
			balance = c.Amount.Clone()
		}
	}
	if balance.IsZero() {
		return num.UintZero(), nil
	}
	if len(state.Debts) == 0 {
		return balance, nil
	}

	healthyAt := func(x *num.Uint) (bool, error) {
		trial := withDepositDelta(state, denom, x, true)
		h, err := e.Compute(trial)
		if err != nil {
			return false, err
		}
		return !h.IsAboveMaxLTV(), nil
	}
	return e.searchLargest(num.UintZero(), balance, healthyAt)
}

// MaxBorrow returns the largest amount of denom borrowable given where the
// proceeds would land. Borrowing to the wallet adds pure debt; borrowing to
// the deposit balance or into a vault also adds collateral.
func (e *Engine) MaxBorrow(state types.AccountState, denom string, target types.BorrowTarget) (*num.Uint, error) {
	price, err := e.oracle.Price(denom)
	if err != nil {
		return nil, err
	}
	if price.IsZero() {
		return nil, ErrNoEstimate
	}

	base, err := e.Compute(state)
	if err != nil {
		return nil, err
	}
	if base.IsAboveMaxLTV() {
		return num.UintZero(), nil
	}

	hi, err := e.borrowUpperBound(state, denom, price, base, target)
	if err != nil {
		return nil, err
	}

	healthyAt := func(x *num.Uint) (bool, error) {
		trial, err := e.withBorrow(state, denom, x, target)
		if err != nil {
			return false, err
		}
		h, err := e.Compute(trial)
		if err != nil {
			return false, err
		}
		return !h.IsAboveMaxLTV(), nil
	}
	return e.searchLargest(num.UintZero(), hi, healthyAt)
}

// MaxSwap returns the largest amount of denomIn swappable to denomOut at
// oracle prices without tripping the max-LTV line. A repay-kind swap burns
// the output against debt instead of keeping it as collateral.
func (e *Engine) MaxSwap(state types.AccountState, denomIn, denomOut string, kind types.SwapKind) (*num.Uint, error) {
	balance := num.UintZero()
	for _, c := range state.Deposits {
		if c.Denom == denomIn {
			balance = c.Amount.Clone()
		}
	}
	if balance.IsZero() {
		return num.UintZero(), nil
	}

	healthyAt := func(x *num.Uint) (bool, error) {
		trial, err := e.withSwap(state, denomIn, denomOut, x, kind)
		if err != nil {
			return false, err
		}
		h, err := e.Compute(trial)
		if err != nil {
			return false, err
		}
		return !h.IsAboveMaxLTV(), nil
	}
	return e.searchLargest(num.UintZero(), balance, healthyAt)
}

// searchLargest finds the largest x in [lo, hi] satisfying the predicate.
// The predicate must be monotonically decreasing over the range and must
// hold at lo.
func (e *Engine) searchLargest(lo, hi *num.Uint, pred func(*num.Uint) (bool, error)) (*num.Uint, error) {
	ok, err := pred(hi)
	if err != nil {
		return nil, err
	}
	if ok {
		return hi, nil
	}
	lo, hi = lo.Clone(), hi.Clone()
	for lo.LT(hi) {
		// mid = lo + (hi - lo + 1) / 2, biased up so the loop narrows
		mid := num.UintZero().Sub(hi, lo)
		mid.AddSum(num.UintOne())
		mid.Div(mid, num.NewUint(2))
		mid.AddSum(lo)

		ok, err := pred(mid)
		if err != nil {
			return nil, err
		}
		if ok {
			lo = mid
		} else {
			hi = num.UintZero().Sub(mid, num.UintOne())
		}
	}
	return lo, nil
}

func (e *Engine) borrowUpperBound(state types.AccountState, denom string, price num.Decimal, base types.Health, target types.BorrowTarget) (*num.Uint, error) {
	// headroom in value terms, then into units with slack for the flooring
	headroom := num.UintZero().Sub(base.MaxLTVAdjustedCollateral, base.TotalDebtValue)

	divisor := price
	if target.Kind != types.BorrowTargetWallet {
		params, err := e.params.AssetParams(denom)
		if err != nil {
			return nil, err
		}
		ltv := params.LTVFor(state.Kind)
		if target.Kind == types.BorrowTargetVault {
			conf, err := e.params.VaultConfig(target.Vault)
			if err != nil {
				return nil, err
			}
			ltv = conf.LTVFor(state.Kind)
		}
		retained := num.DecimalOne().Sub(ltv)
		if !retained.IsPositive() {
			return nil, ErrNoEstimate
		}
		divisor = price.Mul(retained)
	}

	bound, err := num.DivDecimal(headroom, divisor)
	if err != nil {
		return nil, err
	}
	// cover the rounding slack on both sides of the closed form
	bound.AddSum(num.NewUint(2))
	return bound, nil
}

func (e *Engine) withBorrow(state types.AccountState, denom string, amount *num.Uint, target types.BorrowTarget) (types.AccountState, error) {
	trial := cloneState(state)
	trial.Debts = addCoin(trial.Debts, denom, amount)
	switch target.Kind {
	case types.BorrowTargetWallet:
	case types.BorrowTargetDeposit:
		trial.Deposits = addCoin(trial.Deposits, denom, amount)
	case types.BorrowTargetVault:
		shares, err := e.vaults.PreviewDeposit(target.Vault, amount)
		if err != nil {
			return types.AccountState{}, err
		}
		trial.Vaults = addVaultShares(trial.Vaults, target.Vault, shares)
	default:
		return types.AccountState{}, fmt.Errorf("unknown borrow target %d", target.Kind)
	}
	return trial, nil
}

func (e *Engine) withSwap(state types.AccountState, denomIn, denomOut string, amount *num.Uint, kind types.SwapKind) (types.AccountState, error) {
	trial := withDepositDelta(state, denomIn, amount, true)

	priceIn, err := e.oracle.Price(denomIn)
	if err != nil {
		return types.AccountState{}, err
	}
	priceOut, err := e.oracle.Price(denomOut)
	if err != nil {
		return types.AccountState{}, err
	}
	if priceOut.IsZero() {
		return types.AccountState{}, ErrNoEstimate
	}
	valueIn, err := num.MulDecimal(amount, priceIn)
	if err != nil {
		return types.AccountState{}, err
	}
	out, err := num.DivDecimal(valueIn, priceOut)
	if err != nil {
		return types.AccountState{}, err
	}

	switch kind {
	case types.SwapKindDefault:
		trial.Deposits = addCoin(trial.Deposits, denomOut, out)
	case types.SwapKindRepay:
		trial.Debts = subCoinCapped(trial.Debts, denomOut, out)
	default:
		return types.AccountState{}, fmt.Errorf("unknown swap kind %d", kind)
	}
	return trial, nil
}

func cloneState(state types.AccountState) types.AccountState {
	cpy := types.AccountState{
		AccountID: state.AccountID,
		Kind:      state.Kind,
		Deposits:  make([]types.Coin, 0, len(state.Deposits)),
		Debts:     make([]types.Coin, 0, len(state.Debts)),
		Lends:     make([]types.Coin, 0, len(state.Lends)),
		Vaults:    make([]types.VaultPositionEntry, 0, len(state.Vaults)),
	}
	for _, c := range state.Deposits {
		cpy.Deposits = append(cpy.Deposits, c.Clone())
	}
	for _, c := range state.Debts {
		cpy.Debts = append(cpy.Debts, c.Clone())
	}
	for _, c := range state.Lends {
		cpy.Lends = append(cpy.Lends, c.Clone())
	}
	for _, v := range state.Vaults {
		cpy.Vaults = append(cpy.Vaults, types.VaultPositionEntry{Vault: v.Vault, Position: v.Position.Clone()})
	}
	return cpy
}

func withDepositDelta(state types.AccountState, denom string, amount *num.Uint, sub bool) types.AccountState {
	trial := cloneState(state)
	for i, c := range trial.Deposits {
		if c.Denom != denom {
			continue
		}
		if sub {
			if c.Amount.LT(amount) {
				c.Amount.SetUint64(0)
			} else {
				c.Amount.Sub(c.Amount, amount)
			}
		} else {
			c.Amount.AddSum(amount)
		}
		trial.Deposits[i] = c
		return trial
	}
	if !sub {
		trial.Deposits = addCoin(trial.Deposits, denom, amount)
	}
	return trial
}

func addCoin(coins []types.Coin, denom string, amount *num.Uint) []types.Coin {
	for i, c := range coins {
		if c.Denom == denom {
			coins[i].Amount.AddSum(amount)
			return coins
		}
	}
	return append(coins, types.Coin{Denom: denom, Amount: amount.Clone()})
}

func subCoinCapped(coins []types.Coin, denom string, amount *num.Uint) []types.Coin {
	for i, c := range coins {
		if c.Denom != denom {
			continue
		}
		if c.Amount.LTE(amount) {
			return append(coins[:i], coins[i+1:]...)
		}
		coins[i].Amount.Sub(c.Amount, amount)
		return coins
	}
	return coins
}

func addVaultShares(entries []types.VaultPositionEntry, vault string, shares *num.Uint) []types.VaultPositionEntry {
	for i, v := range entries {
		if v.Vault == vault {
			entries[i].Position.Unlocked.AddSum(shares)
			return entries
		}
	}
	p := types.NewVaultPosition()
	p.Unlocked = shares.Clone()
	return append(entries, types.VaultPositionEntry{Vault: vault, Position: p})
}
