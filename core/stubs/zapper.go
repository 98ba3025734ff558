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

// ZapperStub mints a fixed LP amount per provide and returns fixed coins per
// withdraw, both settable from tests.
type ZapperStub struct {
	mintResults     map[string]*num.Uint
	withdrawResults map[string][]types.Coin
}

func NewZapperStub() *ZapperStub {
	return &ZapperStub{
		mintResults:     map[string]*num.Uint{},
		withdrawResults: map[string][]types.Coin{},
	}
}

// SetMintResult pins what the next provide into lpDenom mints.
func (z *ZapperStub) SetMintResult(lpDenom, amount string) {
	z.mintResults[lpDenom] = num.MustUintFromString(amount)
}

// SetWithdrawResult pins what a withdrawal of lpDenom returns.
func (z *ZapperStub) SetWithdrawResult(lpDenom string, coins ...types.Coin) {
	z.withdrawResults[lpDenom] = coins
}

func (z *ZapperStub) ProvideLiquidity(_ []types.Coin, lpTokenOut string, minimumReceive *num.Uint) (*num.Uint, error) {
	minted, ok := z.mintResults[lpTokenOut]
	if !ok {
		return nil, fmt.Errorf("stub zapper has no mint result for %s", lpTokenOut)
	}
	if minimumReceive != nil && minted.LT(minimumReceive) {
		return nil, fmt.Errorf("minted %s below minimum %s", minted, minimumReceive)
	}
	return minted.Clone(), nil
}

func (z *ZapperStub) WithdrawLiquidity(lpToken types.Coin) ([]types.Coin, error) {
	coins, ok := z.withdrawResults[lpToken.Denom]
	if !ok {
		return nil, fmt.Errorf("stub zapper has no withdraw result for %s", lpToken.Denom)
	}
	out := make([]types.Coin, 0, len(coins))
	for _, c := range coins {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (z *ZapperStub) EstimateProvideLiquidity(lpTokenOut string, _ []types.Coin) (*num.Uint, error) {
	minted, ok := z.mintResults[lpTokenOut]
	if !ok {
		return nil, fmt.Errorf("stub zapper has no mint result for %s", lpTokenOut)
	}
	return minted.Clone(), nil
}

func (z *ZapperStub) EstimateWithdrawLiquidity(lpToken types.Coin) ([]types.Coin, error) {
	return z.WithdrawLiquidity(lpToken)
}
