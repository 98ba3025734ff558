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

package stubs

import (
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

type marketPool struct {
	debt *num.Uint
	lent *num.Uint
}

// MarketStub mimics the money market. Borrows and repays move the per-denom
// debt pool, lends and reclaims the lent pool, and tests can bump either to
// simulate interest accruing between batches.
type MarketStub struct {
	pools map[string]*marketPool
	saved map[string]*marketPool
}

func NewMarketStub() *MarketStub {
	return &MarketStub{
		pools: map[string]*marketPool{},
	}
}

// Begin snapshots the pools so a failed batch can put them back.
func (m *MarketStub) Begin() {
	m.saved = make(map[string]*marketPool, len(m.pools))
	for denom, p := range m.pools {
		m.saved[denom] = &marketPool{debt: p.debt.Clone(), lent: p.lent.Clone()}
	}
}

func (m *MarketStub) Commit() {
	m.saved = nil
}

func (m *MarketStub) Rollback() {
	if m.saved == nil {
		return
	}
	m.pools = m.saved
	m.saved = nil
}

func (m *MarketStub) pool(denom string) *marketPool {
	p, ok := m.pools[denom]
	if !ok {
		p = &marketPool{debt: num.UintZero(), lent: num.UintZero()}
		m.pools[denom] = p
	}
	return p
}

// AccrueDebtInterest grows the denom's debt pool without minting shares,
// raising the per-share value of outstanding debt.
func (m *MarketStub) AccrueDebtInterest(denom, amount string) {
	p := m.pool(denom)
	p.debt.AddSum(num.MustUintFromString(amount))
}

// AccrueLendInterest grows the denom's lent pool without minting shares.
func (m *MarketStub) AccrueLendInterest(denom, amount string) {
	p := m.pool(denom)
	p.lent.AddSum(num.MustUintFromString(amount))
}

func (m *MarketStub) TotalDebt(denom string) (*num.Uint, error) {
	return m.pool(denom).debt.Clone(), nil
}

func (m *MarketStub) TotalLent(denom string) (*num.Uint, error) {
	return m.pool(denom).lent.Clone(), nil
}

func (m *MarketStub) Borrow(coin types.Coin) error {
	m.pool(coin.Denom).debt.AddSum(coin.Amount)
	return nil
}

func (m *MarketStub) Repay(coin types.Coin) error {
	p := m.pool(coin.Denom)
	if p.debt.LT(coin.Amount) {
		p.debt = num.UintZero()
		return nil
	}
	p.debt.Sub(p.debt, coin.Amount)
	return nil
}

func (m *MarketStub) Lend(coin types.Coin) error {
	m.pool(coin.Denom).lent.AddSum(coin.Amount)
	return nil
}

func (m *MarketStub) Reclaim(coin types.Coin) error {
	p := m.pool(coin.Denom)
	if p.lent.LT(coin.Amount) {
		p.lent = num.UintZero()
		return nil
	}
	p.lent.Sub(p.lent, coin.Amount)
	return nil
}
