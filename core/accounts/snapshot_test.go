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

package accounts_test

import (
	"testing"
	"time"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	eng := getTestEngine(t)
	release := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

	eng.SetKind("acc-1", types.AccountKindHighLeveragedStrategy)
	eng.IncrementDeposit("acc-1", coin("uosmo", 300))
	eng.AddDebtShares("acc-1", "uatom", num.NewUint(50_000_000))
	eng.AddLendShares("acc-2", "uosmo", num.NewUint(750))
	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(200)))
	require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", 3, num.NewUint(50), release))

	data, err := eng.Serialize()
	require.NoError(t, err)

	restored := getTestEngine(t)
	require.NoError(t, restored.Load(data))

	assert.Equal(t, types.AccountKindHighLeveragedStrategy, restored.Kind("acc-1"))
	assert.Equal(t, "300", restored.Deposit("acc-1", "uosmo").String())
	assert.Equal(t, "50000000", restored.DebtShares("acc-1", "uatom").String())
	assert.Equal(t, "50000000", restored.TotalDebtShares("uatom").String())
	assert.Equal(t, "750", restored.LendShares("acc-2", "uosmo").String())

	p := restored.VaultPosition("acc-1", "vault-a")
	assert.Equal(t, "150", p.Locked.String())
	require.Len(t, p.Unlocking, 1)
	assert.Equal(t, uint64(3), p.Unlocking[0].ID)
	assert.Equal(t, "50", p.Unlocking[0].Amount.String())
	assert.True(t, p.Unlocking[0].ReleaseAt.Equal(release))
	assert.Equal(t, "200", restored.VaultSupply("vault-a").String())
}

func TestSnapshotMigration(t *testing.T) {
	t.Run("version 1 vault positions land in the unlocked bucket", func(t *testing.T) {
		legacy := []byte(`{
			"version": 1,
			"accounts": [
				{
					"id": "acc-1",
					"deposits": [{"denom": "uosmo", "amount": "300"}],
					"vaults": [{"vault": "vault-a", "amount": "200"}]
				}
			]
		}`)

		eng := getTestEngine(t)
		require.NoError(t, eng.Load(legacy))

		p := eng.VaultPosition("acc-1", "vault-a")
		assert.Equal(t, "200", p.Unlocked.String())
		assert.True(t, p.Locked.IsZero())
		assert.Empty(t, p.Unlocking)
		assert.Equal(t, "200", eng.VaultSupply("vault-a").String())
	})

	t.Run("unknown versions are rejected", func(t *testing.T) {
		eng := getTestEngine(t)
		err := eng.Load([]byte(`{"version": 3}`))
		require.Error(t, err)
	})
}
