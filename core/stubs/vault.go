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

package stubs

import (
	"time"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

type vaultState struct {
	info types.VaultInfo
	// rate is base tokens per vault share
	rate         num.Decimal
	nextTicketID uint64
}

// VaultStub mimics a set of external vault contracts with a settable
// share-to-base redemption rate per vault.
type VaultStub struct {
	vaults       map[string]*vaultState
	now          time.Time
	savedTickets map[string]uint64
}

func NewVaultStub() *VaultStub {
	return &VaultStub{
		vaults: map[string]*vaultState{},
	}
}

// Begin snapshots the ticket counters so a failed batch can rewind them.
func (v *VaultStub) Begin() {
	v.savedTickets = make(map[string]uint64, len(v.vaults))
	for name, s := range v.vaults {
		v.savedTickets[name] = s.nextTicketID
	}
}

func (v *VaultStub) Commit() {
	v.savedTickets = nil
}

func (v *VaultStub) Rollback() {
	if v.savedTickets == nil {
		return
	}
	for name, id := range v.savedTickets {
		if s, ok := v.vaults[name]; ok {
			s.nextTicketID = id
		}
	}
	v.savedTickets = nil
}

// Register adds a vault with its info and a 1:1 redemption rate.
func (v *VaultStub) Register(vault string, info types.VaultInfo) {
	v.vaults[vault] = &vaultState{
		info: info,
		rate: num.DecimalOne(),
	}
}

// SetRate pins the base-per-share redemption rate of a vault.
func (v *VaultStub) SetRate(vault, rate string) {
	v.vaults[vault].rate = num.MustDecimalFromString(rate)
}

// SetNow pins the stub's clock, used to stamp unlock release times.
func (v *VaultStub) SetNow(now time.Time) {
	v.now = now
}

func (v *VaultStub) Info(vault string) (types.VaultInfo, error) {
	s, ok := v.vaults[vault]
	if !ok {
		return types.VaultInfo{}, types.ErrUnknownVault
	}
	return s.info, nil
}

func (v *VaultStub) PreviewRedeem(vault string, shares *num.Uint) (*num.Uint, error) {
	s, ok := v.vaults[vault]
	if !ok {
		return nil, types.ErrUnknownVault
	}
	return num.MulDecimal(shares, s.rate)
}

func (v *VaultStub) PreviewDeposit(vault string, baseAmount *num.Uint) (*num.Uint, error) {
	s, ok := v.vaults[vault]
	if !ok {
		return nil, types.ErrUnknownVault
	}
	return num.DivDecimal(baseAmount, s.rate)
}

// Deposit exchanges base tokens for freshly minted vault shares.
func (v *VaultStub) Deposit(vault string, baseAmount *num.Uint) (*num.Uint, error) {
	return v.PreviewDeposit(vault, baseAmount)
}

// Redeem exchanges vault shares for base tokens.
func (v *VaultStub) Redeem(vault string, shares *num.Uint) (*num.Uint, error) {
	return v.PreviewRedeem(vault, shares)
}

// RequestUnlock opens an unlock ticket, releasing after the vault's lockup.
func (v *VaultStub) RequestUnlock(vault string, shares *num.Uint) (uint64, time.Time, error) {
	s, ok := v.vaults[vault]
	if !ok {
		return 0, time.Time{}, types.ErrUnknownVault
	}
	id := s.nextTicketID
	s.nextTicketID++
	return id, v.now.Add(s.info.LockupDuration), nil
}
