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
	"sort"
	"strings"

	"code.vegaprotocol.io/credit/libs/num"
)

// Coin is an amount of a single asset denomination.
type Coin struct {
	Denom  string
	Amount *num.Uint
}

func NewCoin(denom string, amount *num.Uint) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func NewCoin64(denom string, amount uint64) Coin {
	return Coin{Denom: denom, Amount: num.NewUint(amount)}
}

func (c Coin) Clone() Coin {
	return Coin{Denom: c.Denom, Amount: c.Amount.Clone()}
}

func (c Coin) IsZero() bool {
	return c.Amount == nil || c.Amount.IsZero()
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

// ActionCoin is a coin reference in a user action. A nil amount stands for
// "the account's entire balance", resolved at execution time.
type ActionCoin struct {
	Denom  string
	Amount *num.Uint
}

func (c ActionCoin) IsAccountBalance() bool {
	return c.Amount == nil
}

func (c ActionCoin) String() string {
	if c.IsAccountBalance() {
		return fmt.Sprintf("balance(%s)", c.Denom)
	}
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

// Coins is a bag of coins keyed by denomination. The pipeline uses it to
// track funds attached to a batch as deposits consume them.
type Coins struct {
	amounts map[string]*num.Uint
}

func NewCoins(coins ...Coin) *Coins {
	c := &Coins{amounts: map[string]*num.Uint{}}
	for _, coin := range coins {
		c.Add(coin)
	}
	return c
}

func (c *Coins) Add(coin Coin) {
	if coin.IsZero() {
		return
	}
	if cur, ok := c.amounts[coin.Denom]; ok {
		cur.AddSum(coin.Amount)
		return
	}
	c.amounts[coin.Denom] = coin.Amount.Clone()
}

// Deduct removes the given coin from the bag, deleting the entry when it
// reaches zero. It fails when the bag holds less than requested.
func (c *Coins) Deduct(coin Coin) error {
	cur, ok := c.amounts[coin.Denom]
	if !ok || cur.LT(coin.Amount) {
		return FundsMismatchError{
			Expected: coin.Amount.Clone(),
			Received: c.AmountOf(coin.Denom),
		}
	}
	cur.Sub(cur, coin.Amount)
	if cur.IsZero() {
		delete(c.amounts, coin.Denom)
	}
	return nil
}

// AmountOf returns the held amount for denom, zero when absent.
func (c *Coins) AmountOf(denom string) *num.Uint {
	if cur, ok := c.amounts[denom]; ok {
		return cur.Clone()
	}
	return num.UintZero()
}

func (c *Coins) IsEmpty() bool {
	return len(c.amounts) == 0
}

// List returns the bag's contents ordered by denomination.
func (c *Coins) List() []Coin {
	denoms := make([]string, 0, len(c.amounts))
	for d := range c.amounts {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	out := make([]Coin, 0, len(denoms))
	for _, d := range denoms {
		out = append(out, Coin{Denom: d, Amount: c.amounts[d].Clone()})
	}
	return out
}

func (c *Coins) String() string {
	coins := c.List()
	ss := make([]string, 0, len(coins))
	for _, coin := range coins {
		ss = append(ss, coin.String())
	}
	return strings.Join(ss, ",")
}
