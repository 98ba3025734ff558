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
	"time"

	"code.vegaprotocol.io/credit/core/health"
	"code.vegaprotocol.io/credit/core/stubs"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*health.Engine
	oracle *stubs.OracleStub
	params *stubs.ParamsStub
	vaults *stubs.VaultStub
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	oracle := stubs.NewOracleStub()
	params := stubs.NewParamsStub()
	vaults := stubs.NewVaultStub()
	eng := health.New(logging.NewTestLogger(), health.NewDefaultConfig(), oracle, params, vaults)
	return &testEngine{
		Engine: eng,
		oracle: oracle,
		params: params,
		vaults: vaults,
	}
}

func (te *testEngine) registerAsset(denom, price, maxLTV, threshold string) {
	te.oracle.SetPrice(denom, price)
	te.params.SetAssetParams(types.AssetParams{
		Denom:                denom,
		MaxLTV:               num.MustDecimalFromString(maxLTV),
		LiquidationThreshold: num.MustDecimalFromString(threshold),
		Whitelisted:          true,
	})
}

func coins(pairs ...types.Coin) []types.Coin {
	return pairs
}

func coin(denom string, amount uint64) types.Coin {
	return types.NewCoin64(denom, amount)
}

func TestComputeNoDebt(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")

	h, err := te.Compute(types.AccountState{
		AccountID: "acc-1",
		Deposits:  coins(coin("uosmo", 234)),
	})
	require.NoError(t, err)

	// 234 * 0.25 = 58.5, floored
	assert.Equal(t, "58", h.TotalCollateralValue.String())
	assert.True(t, h.TotalDebtValue.IsZero())
	assert.Nil(t, h.MaxLTVHealthFactor)
	assert.Nil(t, h.LiquidationHealthFactor)
	assert.False(t, h.IsAboveMaxLTV())
	assert.False(t, h.IsLiquidatable())
}

func TestComputeWithDebt(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("ujake", "2.3654", "0.5", "0.55")

	h, err := te.Compute(types.AccountState{
		AccountID: "acc-1",
		Deposits:  coins(coin("ujake", 350)),
		Debts:     coins(coin("ujake", 50)),
	})
	require.NoError(t, err)

	// collateral 350 * 2.3654 = 827.89 floored, debt 50 * 2.3654 = 118.27
	// rounded up
	assert.Equal(t, "827", h.TotalCollateralValue.String())
	assert.Equal(t, "119", h.TotalDebtValue.String())
	assert.Equal(t, "413", h.MaxLTVAdjustedCollateral.String())
	assert.Equal(t, "454", h.LiquidationThresholdAdjustedCollateral.String())

	require.NotNil(t, h.MaxLTVHealthFactor)
	require.NotNil(t, h.LiquidationHealthFactor)
	assert.True(t, h.MaxLTVHealthFactor.GreaterThanOrEqual(num.DecimalOne()))
	assert.False(t, h.IsAboveMaxLTV())
	assert.False(t, h.IsLiquidatable())
}

func TestComputeUnderwater(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")
	te.registerAsset("uatom", "20", "0.7", "0.75")

	h, err := te.Compute(types.AccountState{
		AccountID: "acc-1",
		Deposits:  coins(coin("uosmo", 300)),
		Debts:     coins(coin("uatom", 100)),
	})
	require.NoError(t, err)

	assert.True(t, h.IsAboveMaxLTV())
	assert.True(t, h.IsLiquidatable())
}

func TestLendsCountAsCollateral(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")

	withDeposit, err := te.Compute(types.AccountState{
		Deposits: coins(coin("uosmo", 400)),
	})
	require.NoError(t, err)

	withLend, err := te.Compute(types.AccountState{
		Lends: coins(coin("uosmo", 400)),
	})
	require.NoError(t, err)

	assert.Equal(t, withDeposit.TotalCollateralValue.String(), withLend.TotalCollateralValue.String())
	assert.Equal(t, withDeposit.MaxLTVAdjustedCollateral.String(), withLend.MaxLTVAdjustedCollateral.String())
}

func TestDeWhitelistingAsymmetry(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("uosmo", "0.25", "0.7", "0.78")
	te.registerAsset("uatom", "1.02", "0.7", "0.75")

	state := types.AccountState{
		AccountID: "acc-1",
		Deposits:  coins(coin("uosmo", 300), coin("uatom", 100)),
		Debts:     coins(coin("uatom", 100)),
	}

	before, err := te.Compute(state)
	require.NoError(t, err)
	require.False(t, before.IsLiquidatable())

	te.params.SetWhitelisted("uosmo", false)

	after, err := te.Compute(state)
	require.NoError(t, err)

	// total and liquidation-threshold-adjusted collateral are untouched, only
	// the preventive bound moves
	assert.Equal(t, before.TotalCollateralValue.String(), after.TotalCollateralValue.String())
	assert.Equal(t,
		before.LiquidationThresholdAdjustedCollateral.String(),
		after.LiquidationThresholdAdjustedCollateral.String(),
	)
	assert.True(t, after.MaxLTVAdjustedCollateral.LT(before.MaxLTVAdjustedCollateral))
	assert.Equal(t, before.IsLiquidatable(), after.IsLiquidatable())
}

func TestVaultCollateral(t *testing.T) {
	te := getTestEngine(t)
	te.registerAsset("ulp", "2", "0.6", "0.65")
	te.vaults.Register("vault-a", types.VaultInfo{
		BaseTokenDenom:  "ulp",
		VaultTokenDenom: "uvault-a",
		LockupDuration:  14 * 24 * time.Hour,
	})
	te.params.SetVaultConfig(types.VaultConfig{
		Vault:                "vault-a",
		MaxLTV:               num.MustDecimalFromString("0.55"),
		LiquidationThreshold: num.MustDecimalFromString("0.6"),
		Whitelisted:          true,
	})
	te.vaults.SetRate("vault-a", "1.2")

	p := types.NewVaultPosition()
	p.Unlocked = num.NewUint(100)
	p.Locked = num.NewUint(50)
	p.Unlocking = []types.UnlockingTicket{{ID: 0, Amount: num.NewUint(50)}}

	h, err := te.Compute(types.AccountState{
		AccountID: "acc-1",
		Vaults:    []types.VaultPositionEntry{{Vault: "vault-a", Position: p}},
	})
	require.NoError(t, err)

	// 200 shares * 1.2 = 240 base * price 2 = 480, every bucket counted
	assert.Equal(t, "480", h.TotalCollateralValue.String())
	assert.Equal(t, "264", h.MaxLTVAdjustedCollateral.String())
	assert.Equal(t, "288", h.LiquidationThresholdAdjustedCollateral.String())
}

func TestHLSParamsApply(t *testing.T) {
	te := getTestEngine(t)
	te.oracle.SetPrice("uosmo", "1")
	te.params.SetAssetParams(types.AssetParams{
		Denom:                "uosmo",
		MaxLTV:               num.MustDecimalFromString("0.5"),
		LiquidationThreshold: num.MustDecimalFromString("0.55"),
		Whitelisted:          true,
		HLS: &types.HLSParams{
			MaxLTV:               num.MustDecimalFromString("0.8"),
			LiquidationThreshold: num.MustDecimalFromString("0.85"),
		},
	})

	state := types.AccountState{
		Deposits: coins(coin("uosmo", 100)),
	}

	std, err := te.Compute(state)
	require.NoError(t, err)
	assert.Equal(t, "50", std.MaxLTVAdjustedCollateral.String())

	state.Kind = types.AccountKindHighLeveragedStrategy
	hls, err := te.Compute(state)
	require.NoError(t, err)
	assert.Equal(t, "80", hls.MaxLTVAdjustedCollateral.String())
	assert.Equal(t, "85", hls.LiquidationThresholdAdjustedCollateral.String())
}
