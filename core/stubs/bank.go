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

// BankStub records outgoing transfers and serves settable engine balances.
type BankStub struct {
	sent     map[string][]types.Coin
	balances map[string]*num.Uint

	savedSent     map[string][]types.Coin
	savedBalances map[string]*num.Uint
}

func NewBankStub() *BankStub {
	return &BankStub{
		sent:     map[string][]types.Coin{},
		balances: map[string]*num.Uint{},
	}
}

// Begin snapshots transfers and balances so a failed batch can unwind them.
func (b *BankStub) Begin() {
	b.savedSent = make(map[string][]types.Coin, len(b.sent))
	for recipient, coins := range b.sent {
		cp := make([]types.Coin, 0, len(coins))
		for _, c := range coins {
			cp = append(cp, c.Clone())
		}
		b.savedSent[recipient] = cp
	}
	b.savedBalances = make(map[string]*num.Uint, len(b.balances))
	for denom, bal := range b.balances {
		b.savedBalances[denom] = bal.Clone()
	}
}

func (b *BankStub) Commit() {
	b.savedSent, b.savedBalances = nil, nil
}

func (b *BankStub) Rollback() {
	if b.savedSent == nil {
		return
	}
	b.sent, b.balances = b.savedSent, b.savedBalances
	b.savedSent, b.savedBalances = nil, nil
}

// SetBalance pins the engine's balance in a denom.
func (b *BankStub) SetBalance(denom, amount string) {
	b.balances[denom] = num.MustUintFromString(amount)
}

// SentTo returns everything sent to the recipient so far.
func (b *BankStub) SentTo(recipient string) []types.Coin {
	return b.sent[recipient]
}

func (b *BankStub) Send(recipient string, coins []types.Coin) error {
	for _, c := range coins {
		b.sent[recipient] = append(b.sent[recipient], c.Clone())
	}
	return nil
}

func (b *BankStub) Balance(denom string) (*num.Uint, error) {
	if bal, ok := b.balances[denom]; ok {
		return bal.Clone(), nil
	}
	return num.UintZero(), nil
}
