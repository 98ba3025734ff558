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

// swapExactIn trades a deposited coin for another denom through the swapper.
// Whatever the swapper actually returns is what gets credited, slippage
// enforcement is its job.
func (e *Engine) swapExactIn(accountID string, acIn types.ActionCoin, denomOut string, slippage num.Decimal) error {
	p, err := e.params.AssetParams(denomOut)
	if err != nil {
		return err
	}
	if !p.Whitelisted {
		return types.NotWhitelistedError{Ref: denomOut}
	}
	amount, err := e.resolveAmount(accountID, acIn)
	if err != nil {
		return err
	}

	coinIn := types.NewCoin(acIn.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, coinIn); err != nil {
		return err
	}
	received, err := e.swapper.SwapExactIn(coinIn, denomOut, slippage)
	if err != nil {
		return errors.Wrap(err, "swapper")
	}
	coinOut := types.NewCoin(denomOut, received)
	e.accounts.IncrementDeposit(accountID, coinOut)

	if e.log.IsDebug() {
		e.log.Debug("coin swapped",
			logging.AccountID(accountID),
			logging.String("in", coinIn.String()),
			logging.String("out", coinOut.String()),
		)
	}
	return nil
}
