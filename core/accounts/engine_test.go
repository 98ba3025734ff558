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

	"code.vegaprotocol.io/credit/core/accounts"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestEngine(t *testing.T) *accounts.Engine {
	t.Helper()
	return accounts.New(logging.NewTestLogger(), accounts.NewDefaultConfig())
}

func coin(denom string, amount uint64) types.Coin {
	return types.NewCoin64(denom, amount)
}

func TestDeposits(t *testing.T) {
	t.Run("increment and read back", testDepositIncrement)
	t.Run("decrement to zero removes the entry", testDepositDecrementToZero)
	t.Run("decrement below balance fails", testDepositDecrementTooMuch)
}

func testDepositIncrement(t *testing.T) {
	eng := getTestEngine(t)

	eng.IncrementDeposit("acc-1", coin("uosmo", 234))
	eng.IncrementDeposit("acc-1", coin("uosmo", 66))
	eng.IncrementDeposit("acc-1", coin("uatom", 10))

	assert.Equal(t, "300", eng.Deposit("acc-1", "uosmo").String())
	assert.Equal(t, "10", eng.Deposit("acc-1", "uatom").String())
	assert.Equal(t, "300", eng.TotalDeposited("uosmo").String())

	deps := eng.Deposits("acc-1")
	require.Len(t, deps, 2)
	// ordered by denom
	assert.Equal(t, "uatom", deps[0].Denom)
	assert.Equal(t, "uosmo", deps[1].Denom)
}

func testDepositDecrementToZero(t *testing.T) {
	eng := getTestEngine(t)

	eng.IncrementDeposit("acc-1", coin("uosmo", 234))
	require.NoError(t, eng.DecrementDeposit("acc-1", coin("uosmo", 234)))

	assert.True(t, eng.Deposit("acc-1", "uosmo").IsZero())
	assert.True(t, eng.TotalDeposited("uosmo").IsZero())
	assert.Empty(t, eng.Deposits("acc-1"))
}

func testDepositDecrementTooMuch(t *testing.T) {
	eng := getTestEngine(t)

	eng.IncrementDeposit("acc-1", coin("uosmo", 100))
	err := eng.DecrementDeposit("acc-1", coin("uosmo", 101))
	require.ErrorIs(t, err, accounts.ErrNotEnoughFunds)
	// balance untouched on failure
	assert.Equal(t, "100", eng.Deposit("acc-1", "uosmo").String())
}

func TestShareConversion(t *testing.T) {
	t.Run("empty pool mints at the bootstrap ratio", testSharesBootstrap)
	t.Run("mint rounds down against a grown pool", testSharesMintFloor)
	t.Run("debt amount rounds up", testDebtAmountCeil)
	t.Run("lent amount rounds down", testLentAmountFloor)
}

func testSharesBootstrap(t *testing.T) {
	s, err := accounts.SharesForAmount(num.NewUint(50), num.UintZero(), num.UintZero())
	require.NoError(t, err)
	assert.Equal(t, "50000000", s.String())
}

func testSharesMintFloor(t *testing.T) {
	// pool: 150 shares over 100 underlying, so 7 units mint 10.5 -> 10
	s, err := accounts.SharesForAmount(num.NewUint(7), num.NewUint(150), num.NewUint(100))
	require.NoError(t, err)
	assert.Equal(t, "10", s.String())
}

func testDebtAmountCeil(t *testing.T) {
	// 10 shares of a pool owing 105 over 100 shares = 10.5 -> 11 owed
	amt, err := accounts.DebtForShares(num.NewUint(10), num.NewUint(100), num.NewUint(105))
	require.NoError(t, err)
	assert.Equal(t, "11", amt.String())
}

func testLentAmountFloor(t *testing.T) {
	amt, err := accounts.LentForShares(num.NewUint(10), num.NewUint(100), num.NewUint(105))
	require.NoError(t, err)
	assert.Equal(t, "10", amt.String())
}

func TestDebtShares(t *testing.T) {
	t.Run("totals track every account", testDebtSharesTotals)
	t.Run("full clear removes the row", testDebtSharesClear)
	t.Run("clearing without debt fails", testDebtSharesClearNoDebt)
}

func testDebtSharesTotals(t *testing.T) {
	eng := getTestEngine(t)

	eng.AddDebtShares("acc-1", "uatom", num.NewUint(400))
	eng.AddDebtShares("acc-2", "uatom", num.NewUint(600))

	assert.Equal(t, "1000", eng.TotalDebtShares("uatom").String())
	assert.Equal(t, "400", eng.DebtShares("acc-1", "uatom").String())
	assert.True(t, eng.HasDebt("acc-2", "uatom"))

	require.NoError(t, eng.BurnDebtShares("acc-2", "uatom", num.NewUint(100)))
	assert.Equal(t, "900", eng.TotalDebtShares("uatom").String())
}

func testDebtSharesClear(t *testing.T) {
	eng := getTestEngine(t)

	eng.AddDebtShares("acc-1", "uatom", num.NewUint(400))
	burnt, err := eng.ClearDebtShares("acc-1", "uatom")
	require.NoError(t, err)

	assert.Equal(t, "400", burnt.String())
	assert.False(t, eng.HasDebt("acc-1", "uatom"))
	assert.True(t, eng.TotalDebtShares("uatom").IsZero())
}

func testDebtSharesClearNoDebt(t *testing.T) {
	eng := getTestEngine(t)
	_, err := eng.ClearDebtShares("acc-1", "uatom")
	require.ErrorIs(t, err, types.ErrNoDebt)
}

func TestVaultPositions(t *testing.T) {
	t.Run("credit and debit buckets", testVaultBuckets)
	t.Run("unlock lifecycle honours the release time", testVaultUnlockLifecycle)
	t.Run("consumed tickets leave the supply total", testVaultTicketSupply)
	t.Run("unlocking tickets are capped", testVaultUnlockCap)
	t.Run("ticket renumbering", testVaultTicketRenumber)
}

func testVaultBuckets(t *testing.T) {
	eng := getTestEngine(t)

	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketUnlocked, num.NewUint(200)))
	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(50)))

	p := eng.VaultPosition("acc-1", "vault-a")
	assert.Equal(t, "200", p.Unlocked.String())
	assert.Equal(t, "50", p.Locked.String())
	assert.Equal(t, "250", eng.VaultSupply("vault-a").String())

	require.NoError(t, eng.DecrementVaultShares("acc-1", "vault-a", types.VaultBucketUnlocked, num.NewUint(200)))
	require.NoError(t, eng.DecrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(50)))

	// fully drained positions are pruned
	assert.Empty(t, eng.VaultPositions("acc-1"))
	assert.True(t, eng.VaultSupply("vault-a").IsZero())
}

func testVaultUnlockLifecycle(t *testing.T) {
	eng := getTestEngine(t)
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	release := start.Add(14 * 24 * time.Hour)

	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(200)))
	require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", 7, num.NewUint(100), release))

	p := eng.VaultPosition("acc-1", "vault-a")
	assert.Equal(t, "100", p.Locked.String())
	require.Len(t, p.Unlocking, 1)
	assert.Equal(t, uint64(7), p.Unlocking[0].ID)

	// one day early
	_, err := eng.TakeUnlocked("acc-1", "vault-a", 7, release.Add(-24*time.Hour))
	require.ErrorIs(t, err, types.ErrUnlockNotReady)

	amt, err := eng.TakeUnlocked("acc-1", "vault-a", 7, release)
	require.NoError(t, err)
	assert.Equal(t, "100", amt.String())
	assert.Empty(t, eng.VaultPosition("acc-1", "vault-a").Unlocking)
	// the supply total tracks the shares left in the position
	assert.Equal(t, "100", eng.VaultSupply("vault-a").String())
}

func testVaultTicketSupply(t *testing.T) {
	eng := getTestEngine(t)
	release := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(200)))
	require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", 1, num.NewUint(60), release))
	require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", 2, num.NewUint(40), release))

	// moving locked shares into tickets does not change the supply
	assert.Equal(t, "200", eng.VaultSupply("vault-a").String())

	amt, err := eng.ForceTakeTicket("acc-1", "vault-a", 1)
	require.NoError(t, err)
	assert.Equal(t, "60", amt.String())
	assert.Equal(t, "140", eng.VaultSupply("vault-a").String())

	require.NoError(t, eng.ReduceTicket("acc-1", "vault-a", 2, num.NewUint(15)))
	assert.Equal(t, "125", eng.VaultSupply("vault-a").String())

	// drain everything and the total goes with it
	require.NoError(t, eng.ReduceTicket("acc-1", "vault-a", 2, num.NewUint(25)))
	require.NoError(t, eng.DecrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(100)))
	assert.True(t, eng.VaultSupply("vault-a").IsZero())
	assert.Empty(t, eng.VaultPositions("acc-1"))
}

func testVaultUnlockCap(t *testing.T) {
	eng := getTestEngine(t)
	release := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(100)))
	for i := uint64(0); i < 5; i++ {
		require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", i, num.NewUint(10), release))
	}
	err := eng.BeginUnlock("acc-1", "vault-a", 5, num.NewUint(10), release)
	require.ErrorIs(t, err, types.ErrExceedsMaxUnlockingPositions)
}

func testVaultTicketRenumber(t *testing.T) {
	eng := getTestEngine(t)
	release := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketLocked, num.NewUint(100)))
	require.NoError(t, eng.BeginUnlock("acc-1", "vault-a", 1, num.NewUint(100), release))
	require.NoError(t, eng.RenumberTicket("acc-1", "vault-a", 1, 42))

	p := eng.VaultPosition("acc-1", "vault-a")
	_, ok := p.Ticket(1)
	assert.False(t, ok)
	got, ok := p.Ticket(42)
	require.True(t, ok)
	assert.Equal(t, "100", got.Amount.String())
}

func TestCheckpointRestore(t *testing.T) {
	eng := getTestEngine(t)

	eng.SetKind("acc-1", types.AccountKindDefault)
	eng.IncrementDeposit("acc-1", coin("uosmo", 300))
	eng.AddDebtShares("acc-1", "uatom", num.NewUint(50_000_000))
	require.NoError(t, eng.IncrementVaultShares("acc-1", "vault-a", types.VaultBucketUnlocked, num.NewUint(200)))

	cp := eng.Checkpoint()

	// mutate everything
	require.NoError(t, eng.DecrementDeposit("acc-1", coin("uosmo", 300)))
	eng.AddDebtShares("acc-2", "uatom", num.NewUint(1))
	require.NoError(t, eng.DecrementVaultShares("acc-1", "vault-a", types.VaultBucketUnlocked, num.NewUint(200)))

	eng.Restore(cp)

	assert.Equal(t, "300", eng.Deposit("acc-1", "uosmo").String())
	assert.Equal(t, "50000000", eng.TotalDebtShares("uatom").String())
	assert.False(t, eng.HasDebt("acc-2", "uatom"))
	assert.Equal(t, "200", eng.VaultPosition("acc-1", "vault-a").Unlocked.String())

	// a checkpoint can be restored more than once
	require.NoError(t, eng.DecrementDeposit("acc-1", coin("uosmo", 100)))
	eng.Restore(cp)
	assert.Equal(t, "300", eng.Deposit("acc-1", "uosmo").String())
}

func TestPagination(t *testing.T) {
	t.Run("limit defaults and clamps", testPageLimit)
	t.Run("account ids page lexicographically", testAccountIDsPage)
}

func testPageLimit(t *testing.T) {
	assert.EqualValues(t, 10, accounts.PageLimit(0))
	assert.EqualValues(t, 25, accounts.PageLimit(25))
	assert.EqualValues(t, 30, accounts.PageLimit(31))
}

func testAccountIDsPage(t *testing.T) {
	eng := getTestEngine(t)

	for _, id := range []string{"acc-03", "acc-01", "acc-12", "acc-07", "acc-02"} {
		eng.IncrementDeposit(id, coin("uosmo", 1))
	}

	page := eng.AccountIDs("", 3)
	assert.Equal(t, []string{"acc-01", "acc-02", "acc-03"}, page)

	page = eng.AccountIDs("acc-03", 3)
	assert.Equal(t, []string{"acc-07", "acc-12"}, page)

	assert.Empty(t, eng.AccountIDs("acc-12", 3))
}
