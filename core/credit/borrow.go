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

	"code.vegaprotocol.io/credit/core/accounts"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/logging"
)

// borrow draws a coin from the money market, minting debt shares against the
// account and crediting the proceeds to its deposit. The debt is priced in
// shares so interest accrued by the pool is carried pro rata.
func (e *Engine) borrow(accountID string, coin types.Coin) error {
	if coin.IsZero() {
		return types.ErrNoAmount
	}
	p, err := e.params.AssetParams(coin.Denom)
	if err != nil {
		return err
	}
	if !p.Whitelisted {
		return types.NotWhitelistedError{Ref: coin.Denom}
	}

	totalDebt, err := e.market.TotalDebt(coin.Denom)
	if err != nil {
		return errors.Wrap(err, "money market")
	}
	shares, err := accounts.SharesForAmount(coin.Amount, e.accounts.TotalDebtShares(coin.Denom), totalDebt)
	if err != nil {
		return err
	}

	if err := e.market.Borrow(coin); err != nil {
		return errors.Wrap(err, "money market")
	}
	e.accounts.AddDebtShares(accountID, coin.Denom, shares)
	e.accounts.IncrementDeposit(accountID, coin)

	if e.log.IsDebug() {
		e.log.Debug("coin borrowed",
			logging.AccountID(accountID),
			logging.String("coin", coin.String()),
			logging.String("shares", shares.String()),
		)
	}
	return nil
}
