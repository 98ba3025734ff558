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

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// SwapperStub swaps at fixed pairwise rates, truncating the output.
type SwapperStub struct {
	rates map[string]num.Decimal
}

func NewSwapperStub() *SwapperStub {
	return &SwapperStub{
		rates: map[string]num.Decimal{},
	}
}

// SetRate pins the output-per-input rate for the pair.
func (s *SwapperStub) SetRate(denomIn, denomOut, rate string) {
	s.rates[denomIn+"/"+denomOut] = num.MustDecimalFromString(rate)
}

func (s *SwapperStub) SwapExactIn(coinIn types.Coin, denomOut string, _ num.Decimal) (*num.Uint, error) {
	rate, ok := s.rates[coinIn.Denom+"/"+denomOut]
	if !ok {
		return nil, fmt.Errorf("stub swapper has no rate for %s/%s", coinIn.Denom, denomOut)
	}
	return num.MulDecimal(coinIn.Amount, rate)
}
