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
	"fmt"

	"code.vegaprotocol.io/credit/libs/num"
)

// OracleStub serves fixed prices settable from tests.
type OracleStub struct {
	prices map[string]num.Decimal
}

func NewOracleStub() *OracleStub {
	return &OracleStub{
		prices: map[string]num.Decimal{},
	}
}

// SetPrice pins the price of a denom.
func (o *OracleStub) SetPrice(denom, price string) {
	o.prices[denom] = num.MustDecimalFromString(price)
}

func (o *OracleStub) Price(denom string) (num.Decimal, error) {
	p, ok := o.prices[denom]
	if !ok {
		return num.DecimalZero(), fmt.Errorf("stub oracle has no price for %s", denom)
	}
	return p, nil
}
