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

package accounts

import (
	"fmt"
	"sort"
	"time"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// maxUnlockingPositions bounds the ticket list of a single vault position so
// a health computation stays O(1) per vault.
const maxUnlockingPositions = 5

// VaultPosition returns a copy of the account's position in the given vault,
// or an empty position when none exists.
func (e *Engine) VaultPosition(accountID, vault string) types.VaultPosition {
	if byVault, ok := e.vaults[accountID]; ok {
		if p, ok := byVault[vault]; ok {
			return p.Clone()
		}
	}
	return types.NewVaultPosition()
}

// VaultPositions returns the account's vault positions ordered by vault
// address.
func (e *Engine) VaultPositions(accountID string) []types.VaultPositionEntry {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return nil
	}
	addrs := make([]string, 0, len(byVault))
	for v := range byVault {
		addrs = append(addrs, v)
	}
	sort.Strings(addrs)
	out := make([]types.VaultPositionEntry, 0, len(addrs))
	for _, v := range addrs {
		out = append(out, types.VaultPositionEntry{Vault: v, Position: byVault[v].Clone()})
	}
	return out
}

// VaultSupply returns the total vault shares held across all accounts for the
// given vault. Used for the vault deposit-cap check.
func (e *Engine) VaultSupply(vault string) *num.Uint {
	if t, ok := e.vaultSupply[vault]; ok {
		return t.Clone()
	}
	return num.UintZero()
}

// IncrementVaultShares credits vault shares into the unlocked or locked
// bucket of the account's position.
func (e *Engine) IncrementVaultShares(accountID, vault string, bucket types.VaultBucket, amount *num.Uint) error {
	if amount.IsZero() {
		return nil
	}
	p := e.vaultPosition(accountID, vault)
	switch bucket {
	case types.VaultBucketUnlocked:
		p.Unlocked.AddSum(amount)
	case types.VaultBucketLocked:
		p.Locked.AddSum(amount)
	default:
		return fmt.Errorf("cannot credit vault shares into bucket %s", bucket)
	}
	incrementTotal(e.vaultSupply, vault, amount)
	return nil
}

// DecrementVaultShares debits vault shares from the unlocked or locked bucket
// of the account's position, pruning the position when emptied.
func (e *Engine) DecrementVaultShares(accountID, vault string, bucket types.VaultBucket, amount *num.Uint) error {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	var target *num.Uint
	switch bucket {
	case types.VaultBucketUnlocked:
		target = p.Unlocked
	case types.VaultBucketLocked:
		target = p.Locked
	default:
		return fmt.Errorf("cannot debit vault shares from bucket %s", bucket)
	}
	if target.LT(amount) {
		return ErrNotEnoughShares
	}
	target.Sub(target, amount)
	e.pruneVaultPosition(accountID, vault, p)
	return decrementTotal(e.vaultSupply, vault, amount)
}

// BeginUnlock moves locked shares into an unlocking ticket releasing at the
// given time. The ticket ID comes from the vault's unlock receipt.
func (e *Engine) BeginUnlock(accountID, vault string, ticketID uint64, amount *num.Uint, releaseAt time.Time) error {
	if amount.IsZero() {
		return types.ErrNoAmount
	}
	byVault, ok := e.vaults[accountID]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	if len(p.Unlocking) >= maxUnlockingPositions {
		return types.ErrExceedsMaxUnlockingPositions
	}
	if p.Locked.LT(amount) {
		return ErrNotEnoughShares
	}
	p.Locked.Sub(p.Locked, amount)
	p.Unlocking = append(p.Unlocking, types.UnlockingTicket{
		ID:        ticketID,
		Amount:    amount.Clone(),
		ReleaseAt: releaseAt,
	})
	return nil
}

// TakeUnlocked removes a matured ticket and returns its share amount. The
// caller redeems the shares with the vault. Before the release time the
// ticket stays put and ErrUnlockNotReady is returned.
func (e *Engine) TakeUnlocked(accountID, vault string, ticketID uint64, now time.Time) (*num.Uint, error) {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	for i, t := range p.Unlocking {
		if t.ID != ticketID {
			continue
		}
		if now.Before(t.ReleaseAt) {
			return nil, types.ErrUnlockNotReady
		}
		p.Unlocking = append(p.Unlocking[:i], p.Unlocking[i+1:]...)
		e.pruneVaultPosition(accountID, vault, p)
		if err := decrementTotal(e.vaultSupply, vault, t.Amount); err != nil {
			return nil, err
		}
		return t.Amount, nil
	}
	return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
}

// ForceTakeTicket removes a ticket regardless of maturity and returns its
// share amount. Only the liquidation path uses this.
func (e *Engine) ForceTakeTicket(accountID, vault string, ticketID uint64) (*num.Uint, error) {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	for i, t := range p.Unlocking {
		if t.ID != ticketID {
			continue
		}
		p.Unlocking = append(p.Unlocking[:i], p.Unlocking[i+1:]...)
		e.pruneVaultPosition(accountID, vault, p)
		if err := decrementTotal(e.vaultSupply, vault, t.Amount); err != nil {
			return nil, err
		}
		return t.Amount, nil
	}
	return nil, types.NoPositionError{AccountID: accountID, Ref: vault}
}

// ReduceTicket shrinks a ticket in place, removing it when fully consumed.
// Only the liquidation path uses this.
func (e *Engine) ReduceTicket(accountID, vault string, ticketID uint64, amount *num.Uint) error {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	for i := range p.Unlocking {
		t := &p.Unlocking[i]
		if t.ID != ticketID {
			continue
		}
		if t.Amount.LT(amount) {
			return ErrNotEnoughShares
		}
		t.Amount.Sub(t.Amount, amount)
		if t.Amount.IsZero() {
			p.Unlocking = append(p.Unlocking[:i], p.Unlocking[i+1:]...)
		}
		e.pruneVaultPosition(accountID, vault, p)
		return decrementTotal(e.vaultSupply, vault, amount)
	}
	return types.NoPositionError{AccountID: accountID, Ref: vault}
}

// RenumberTicket rewrites a ticket's ID. Vault migrations renumber their
// lockups and the position must follow.
func (e *Engine) RenumberTicket(accountID, vault string, oldID, newID uint64) error {
	byVault, ok := e.vaults[accountID]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	p, ok := byVault[vault]
	if !ok {
		return types.NoPositionError{AccountID: accountID, Ref: vault}
	}
	for i := range p.Unlocking {
		if p.Unlocking[i].ID == oldID {
			p.Unlocking[i].ID = newID
			return nil
		}
	}
	return types.NoPositionError{AccountID: accountID, Ref: vault}
}

func (e *Engine) vaultPosition(accountID, vault string) *types.VaultPosition {
	byVault, ok := e.vaults[accountID]
	if !ok {
		byVault = map[string]*types.VaultPosition{}
		e.vaults[accountID] = byVault
	}
	p, ok := byVault[vault]
	if !ok {
		np := types.NewVaultPosition()
		p = &np
		byVault[vault] = p
	}
	return p
}

func (e *Engine) pruneVaultPosition(accountID, vault string, p *types.VaultPosition) {
	if !p.IsEmpty() {
		return
	}
	delete(e.vaults[accountID], vault)
	if len(e.vaults[accountID]) == 0 {
		delete(e.vaults, accountID)
	}
}
