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

package types

import "code.vegaprotocol.io/credit/libs/num"

// Action is one user-requested operation in an UpdateCreditAccount batch.
type Action interface {
	isAction()
}

// Deposit credits attached funds to the account. The batch must carry the
// exact coin.
type Deposit struct {
	Coin Coin
}

// Withdraw sends a coin from the account back to its owner.
type Withdraw struct {
	Coin ActionCoin
}

// Borrow draws a coin from the money market against the account.
type Borrow struct {
	Coin Coin
}

// Repay pays debt back to the money market. An account-balance amount repays
// the minimum of the deposit balance and the total owed.
type Repay struct {
	Coin ActionCoin
}

// Lend supplies a deposited coin to the money market to earn yield. Lent
// coins still count as collateral.
type Lend struct {
	Coin ActionCoin
}

// Reclaim pulls a lent coin back from the money market into the deposit.
type Reclaim struct {
	Coin ActionCoin
}

// EnterVault exchanges a deposited coin for shares of a yield vault.
type EnterVault struct {
	Vault string
	Coin  ActionCoin
}

// ExitVault redeems unlocked vault shares for base tokens.
type ExitVault struct {
	Vault  string
	Amount *num.Uint
}

// RequestVaultUnlock starts the lockup countdown on locked vault shares.
type RequestVaultUnlock struct {
	Vault  string
	Amount *num.Uint
}

// WithdrawUnlocked redeems an unlocking ticket whose release time has passed.
type WithdrawUnlocked struct {
	Vault    string
	TicketID uint64
}

// UpdateLockupID rewrites the identifier of an existing unlocking ticket.
// Used when the vault migrates its own lockup bookkeeping.
type UpdateLockupID struct {
	Vault string
	OldID uint64
	NewID uint64
}

// SwapExactIn atomically swaps a deposited coin for another denomination.
type SwapExactIn struct {
	CoinIn   ActionCoin
	DenomOut string
	Slippage num.Decimal
}

// ProvideLiquidity zaps deposited coins into an LP token.
type ProvideLiquidity struct {
	CoinsIn        []ActionCoin
	LPTokenOut     string
	MinimumReceive *num.Uint
}

// WithdrawLiquidity unzaps an LP token back into its reserve coins.
type WithdrawLiquidity struct {
	LPToken ActionCoin
}

// RefreshVaultCoinBalance reconciles the account's vault position with the
// engine's actual vault token balance.
type RefreshVaultCoinBalance struct {
	Vault string
}

// RefundAllBalances withdraws every deposit back to the owner.
type RefundAllBalances struct{}

// LiquidateCoin repays a liquidatable account's debt in exchange for a
// deposited collateral coin plus the liquidation bonus.
type LiquidateCoin struct {
	LiquidateeID string
	DebtCoin     Coin
	RequestDenom string
}

// LiquidateLend is LiquidateCoin drawing from the liquidatee's lent balance,
// reclaiming from the money market as needed.
type LiquidateLend struct {
	LiquidateeID string
	DebtCoin     Coin
	RequestDenom string
}

// LiquidateVault is LiquidateCoin seizing a vault position bucket, force
// withdrawing if the bucket is locked.
type LiquidateVault struct {
	LiquidateeID string
	DebtCoin     Coin
	RequestVault string
	Bucket       VaultBucket
}

func (Deposit) isAction()                 {}
func (Withdraw) isAction()                {}
func (Borrow) isAction()                  {}
func (Repay) isAction()                   {}
func (Lend) isAction()                    {}
func (Reclaim) isAction()                 {}
func (EnterVault) isAction()              {}
func (ExitVault) isAction()               {}
func (RequestVaultUnlock) isAction()      {}
func (WithdrawUnlocked) isAction()        {}
func (UpdateLockupID) isAction()          {}
func (SwapExactIn) isAction()             {}
func (ProvideLiquidity) isAction()        {}
func (WithdrawLiquidity) isAction()       {}
func (RefreshVaultCoinBalance) isAction() {}
func (RefundAllBalances) isAction()       {}
func (LiquidateCoin) isAction()           {}
func (LiquidateLend) isAction()           {}
func (LiquidateVault) isAction()          {}

// IsLiquidation reports whether the action is one of the liquidation
// variants. A batch may contain at most one of them.
func IsLiquidation(a Action) bool {
	switch a.(type) {
	case LiquidateCoin, LiquidateLend, LiquidateVault:
		return true
	default:
		return false
	}
}
