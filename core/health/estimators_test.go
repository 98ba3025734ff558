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

package health_test

import (
	"testing"

	"code.vegaprotocol.io/credit/core/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxWithdraw(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")
	te.registerAsset("uatom", "1", "0.7", "0.75")

	t.Run("no debt releases the full balance", func(t *testing.T) {
		est, err := te.MaxWithdraw(types.AccountState{
			Deposits: coins(coin("uosmo", 300)),
		}, "uosmo")
		require.NoError(t, err)
		assert.Equal(t, "300", est.String())
	})

	t.Run("estimate is exactly at the boundary", func(t *testing.T) {
		state := types.AccountState{
			Deposits: coins(coin("uosmo", 300)),
			Debts:    coins(coin("uatom", 10)),
		}
		est, err := te.MaxWithdraw(state, "uosmo")
		require.NoError(t, err)
		assert.Equal(t, "240", est.String())

		// withdrawing the estimate keeps the account healthy
		h, err := te.Compute(types.AccountState{
			Deposits: coins(coin("uosmo", 300-240)),
			Debts:    coins(coin("uatom", 10)),
		})
		require.NoError(t, err)
		assert.False(t, h.IsAboveMaxLTV())

		// one more unit crosses the line
		h, err = te.Compute(types.AccountState{
			Deposits: coins(coin("uosmo", 300-241)),
			Debts:    coins(coin("uatom", 10)),
		})
		require.NoError(t, err)
		assert.True(t, h.IsAboveMaxLTV())
	})

	t.Run("no balance means nothing to withdraw", func(t *testing.T) {
		est, err := te.MaxWithdraw(types.AccountState{}, "uosmo")
		require.NoError(t, err)
		assert.True(t, est.IsZero())
	})
}

func TestMaxBorrow(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")
	te.registerAsset("uatom", "1", "0.7", "0.75")

	state := types.AccountState{
		Deposits: coins(coin("uosmo", 300)),
	}

	t.Run("borrowing to the wallet is pure debt", func(t *testing.T) {
		est, err := te.MaxBorrow(state, "uatom", types.BorrowTarget{Kind: types.BorrowTargetWallet})
		require.NoError(t, err)
		// adjusted collateral is floor(0.7 * 75) = 52
		assert.Equal(t, "52", est.String())

		h, err := te.Compute(types.AccountState{
			Deposits: state.Deposits,
			Debts:    coins(coin("uatom", 52)),
		})
		require.NoError(t, err)
		assert.False(t, h.IsAboveMaxLTV())

		h, err = te.Compute(types.AccountState{
			Deposits: state.Deposits,
			Debts:    coins(coin("uatom", 53)),
		})
		require.NoError(t, err)
		assert.True(t, h.IsAboveMaxLTV())
	})

	t.Run("borrowed deposits offset their own debt", func(t *testing.T) {
		est, err := te.MaxBorrow(state, "uatom", types.BorrowTarget{Kind: types.BorrowTargetDeposit})
		require.NoError(t, err)
		assert.Equal(t, "173", est.String())

		h, err := te.Compute(types.AccountState{
			Deposits: coins(coin("uosmo", 300), coin("uatom", 173)),
			Debts:    coins(coin("uatom", 173)),
		})
		require.NoError(t, err)
		assert.False(t, h.IsAboveMaxLTV())

		h, err = te.Compute(types.AccountState{
			Deposits: coins(coin("uosmo", 300), coin("uatom", 174)),
			Debts:    coins(coin("uatom", 174)),
		})
		require.NoError(t, err)
		assert.True(t, h.IsAboveMaxLTV())
	})

	t.Run("an unhealthy account cannot borrow at all", func(t *testing.T) {
		est, err := te.MaxBorrow(types.AccountState{
			Deposits: coins(coin("uosmo", 10)),
			Debts:    coins(coin("uatom", 100)),
		}, "uatom", types.BorrowTarget{Kind: types.BorrowTargetWallet})
		require.NoError(t, err)
		assert.True(t, est.IsZero())
	})
}

func TestMaxSwap(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")
	te.registerAsset("uatom", "1", "0.7", "0.75")
	te.registerAsset("udead", "1", "0", "0.1")

	t.Run("swapping into a lower LTV asset is bounded", func(t *testing.T) {
		state := types.AccountState{
			Deposits: coins(coin("uosmo", 300)),
			Debts:    coins(coin("uatom", 10)),
		}
		// udead backs no leverage, so the bound matches a plain withdraw
		est, err := te.MaxSwap(state, "uosmo", "udead", types.SwapKindDefault)
		require.NoError(t, err)
		assert.Equal(t, "240", est.String())
	})

	t.Run("repay swaps can consume the full balance", func(t *testing.T) {
		state := types.AccountState{
			Deposits: coins(coin("uosmo", 300)),
			Debts:    coins(coin("uatom", 50)),
		}
		est, err := te.MaxSwap(state, "uosmo", "uatom", types.SwapKindRepay)
		require.NoError(t, err)
		assert.Equal(t, "300", est.String())
	})
}
