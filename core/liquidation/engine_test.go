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

package liquidation_test

import (
	"testing"

	"code.vegaprotocol.io/credit/core/liquidation"
	"code.vegaprotocol.io/credit/core/stubs"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*liquidation.Engine
	oracle *stubs.OracleStub
	params *stubs.ParamsStub
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	oracle := stubs.NewOracleStub()
	params := stubs.NewParamsStub()
	eng := liquidation.New(logging.NewTestLogger(), liquidation.NewDefaultConfig(), oracle, params)
	return &testEngine{
		Engine: eng,
		oracle: oracle,
		params: params,
	}
}

func liquidatableHealth(debtValue uint64) types.Health {
	hf := num.MustDecimalFromString("0.5")
	return types.Health{
		TotalDebtValue:          num.NewUint(debtValue),
		LiquidationHealthFactor: &hf,
	}
}

func TestCalculate(t *testing.T) {
	t.Run("sizes against the liquidatee balance", testSizedByBalance)
	t.Run("sizes against the close factor", testSizedByCloseFactor)
	t.Run("healthy accounts cannot be liquidated", testNotLiquidatable)
	t.Run("unprofitable trades are rejected", testNotProfitable)
}

// liquidatee: 300 uosmo at 0.25 backing 100 uatom of debt after uatom moved
// to 20. The 10 uatom offered is cut down to what the uosmo balance can
// absorb once the 10% bonus is carved out.
func testSizedByBalance(t *testing.T) {
	te := getTestEngine(t)
	te.oracle.SetPrice("uosmo", "0.25")
	te.oracle.SetPrice("uatom", "20")
	te.params.SetAssetParams(types.AssetParams{
		Denom:            "uatom",
		LiquidationBonus: num.MustDecimalFromString("0.1"),
	})
	te.params.SetCloseFactor("0.5")

	debt, request, err := te.Calculate(liquidation.Request{
		LiquidateeID:    "acc-2",
		Health:          liquidatableHealth(2000),
		DebtCoin:        types.NewCoin64("uatom", 10),
		RequestDenom:    "uosmo",
		TotalDebtAmount: num.NewUint(100),
		RequestBalance:  num.NewUint(300),
	})
	require.NoError(t, err)

	// min(10, 100, 0.5*2000/20=50, floor(floor(75/1.1)/20)=3)
	assert.Equal(t, "uatom", debt.Denom)
	assert.Equal(t, "3", debt.Amount.String())
	// 3 * 20 * 1.1 / 0.25
	assert.Equal(t, "uosmo", request.Denom)
	assert.Equal(t, "264", request.Amount.String())
	assert.True(t, request.Amount.LTE(num.NewUint(300)))
}

func testSizedByCloseFactor(t *testing.T) {
	te := getTestEngine(t)
	te.oracle.SetPrice("uosmo", "1")
	te.oracle.SetPrice("uatom", "2")
	te.params.SetAssetParams(types.AssetParams{
		Denom:            "uatom",
		LiquidationBonus: num.MustDecimalFromString("0.1"),
	})
	te.params.SetCloseFactor("0.5")

	debt, request, err := te.Calculate(liquidation.Request{
		LiquidateeID:    "acc-2",
		Health:          liquidatableHealth(200),
		DebtCoin:        types.NewCoin64("uatom", 100),
		RequestDenom:    "uosmo",
		TotalDebtAmount: num.NewUint(100),
		RequestBalance:  num.NewUint(10_000),
	})
	require.NoError(t, err)

	// close factor cap: 0.5 * 200 / 2 = 50
	assert.Equal(t, "50", debt.Amount.String())
	// 50 * 2 * 1.1 / 1
	assert.Equal(t, "110", request.Amount.String())
}

func testNotLiquidatable(t *testing.T) {
	te := getTestEngine(t)

	hf := num.MustDecimalFromString("1.2")
	_, _, err := te.Calculate(liquidation.Request{
		LiquidateeID: "acc-2",
		Health: types.Health{
			TotalDebtValue:          num.NewUint(100),
			LiquidationHealthFactor: &hf,
		},
		DebtCoin:        types.NewCoin64("uatom", 10),
		RequestDenom:    "uosmo",
		TotalDebtAmount: num.NewUint(100),
		RequestBalance:  num.NewUint(300),
	})

	notLiquidatable := types.NotLiquidatableError{}
	require.ErrorAs(t, err, &notLiquidatable)
	assert.Equal(t, "acc-2", notLiquidatable.AccountID)
}

func testNotProfitable(t *testing.T) {
	te := getTestEngine(t)
	te.oracle.SetPrice("uosmo", "0.25")
	te.oracle.SetPrice("uatom", "20")
	// zero bonus makes the seized value equal the repaid value at best
	te.params.SetAssetParams(types.AssetParams{
		Denom:            "uatom",
		LiquidationBonus: num.DecimalZero(),
	})
	te.params.SetCloseFactor("0.5")

	_, _, err := te.Calculate(liquidation.Request{
		LiquidateeID:    "acc-2",
		Health:          liquidatableHealth(2000),
		DebtCoin:        types.NewCoin64("uatom", 10),
		RequestDenom:    "uosmo",
		TotalDebtAmount: num.NewUint(100),
		RequestBalance:  num.NewUint(300),
	})
	require.ErrorIs(t, err, types.ErrLiquidationNotProfitable)
}
