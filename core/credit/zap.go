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
	"github.com/pkg/errors"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

// provideLiquidity zaps deposited coins into an LP token position.
func (e *Engine) provideLiquidity(accountID string, coinsIn []types.ActionCoin, lpTokenOut string, minimumReceive *num.Uint) error {
	p, err := e.params.AssetParams(lpTokenOut)
	if err != nil {
		return err
	}
	if !p.Whitelisted {
		return types.NotWhitelistedError{Ref: lpTokenOut}
	}

	resolved := make([]types.Coin, 0, len(coinsIn))
	for _, ac := range coinsIn {
		amount, err := e.resolveAmount(accountID, ac)
		if err != nil {
			return err
		}
		resolved = append(resolved, types.NewCoin(ac.Denom, amount))
	}
	if len(resolved) == 0 {
		return types.ErrNoAmount
	}

	for _, coin := range resolved {
		if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
			return err
		}
	}
	minted, err := e.zapper.ProvideLiquidity(resolved, lpTokenOut, minimumReceive)
	if err != nil {
		return errors.Wrap(err, "zapper")
	}
	e.accounts.IncrementDeposit(accountID, types.NewCoin(lpTokenOut, minted))

	if e.log.IsDebug() {
		e.log.Debug("liquidity provided",
			logging.AccountID(accountID),
			logging.Denom(lpTokenOut),
			logging.String("minted", minted.String()),
		)
	}
	return nil
}

// withdrawLiquidity unzaps an LP token back into the pool's reserve coins.
func (e *Engine) withdrawLiquidity(accountID string, lp types.ActionCoin) error {
	amount, err := e.resolveAmount(accountID, lp)
	if err != nil {
		return err
	}
	coin := types.NewCoin(lp.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
		return err
	}
	coinsOut, err := e.zapper.WithdrawLiquidity(coin)
	if err != nil {
		return errors.Wrap(err, "zapper")
	}
	for _, out := range coinsOut {
		p, err := e.params.AssetParams(out.Denom)
		if err != nil {
			return err
		}
		if !p.Whitelisted {
			return types.NotWhitelistedError{Ref: out.Denom}
		}
		e.accounts.IncrementDeposit(accountID, out)
	}

	if e.log.IsDebug() {
		e.log.Debug("liquidity withdrawn",
			logging.AccountID(accountID),
			logging.String("lp", coin.String()),
			logging.Int("coins", len(coinsOut)),
		)
	}
	return nil
}
