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

import (
	"fmt"
	"time"

	"code.vegaprotocol.io/credit/libs/num"
)

// VaultBucket identifies which part of a vault position an operation targets.
type VaultBucket int

const (
	VaultBucketUnlocked VaultBucket = iota
	VaultBucketLocked
	VaultBucketUnlocking
)

func (b VaultBucket) String() string {
	switch b {
	case VaultBucketUnlocked:
		return "unlocked"
	case VaultBucketLocked:
		return "locked"
	case VaultBucketUnlocking:
		return "unlocking"
	default:
		return fmt.Sprintf("unknown(%d)", int(b))
	}
}

// UnlockingTicket is one pending unlock of vault shares, released at
// ReleaseAt. The ID is assigned by the vault.
type UnlockingTicket struct {
	ID        uint64
	Amount    *num.Uint
	ReleaseAt time.Time
}

func (t UnlockingTicket) Clone() UnlockingTicket {
	return UnlockingTicket{ID: t.ID, Amount: t.Amount.Clone(), ReleaseAt: t.ReleaseAt}
}

// VaultPosition is an account's claim on one vault, split into an unlocked
// bucket, a locked bucket and pending unlocking tickets. A position exists
// only while at least one bucket is non zero.
type VaultPosition struct {
	Unlocked  *num.Uint
	Locked    *num.Uint
	Unlocking []UnlockingTicket
}

func NewVaultPosition() VaultPosition {
	return VaultPosition{
		Unlocked: num.UintZero(),
		Locked:   num.UintZero(),
	}
}

func (p VaultPosition) Clone() VaultPosition {
	cpy := VaultPosition{
		Unlocked:  p.Unlocked.Clone(),
		Locked:    p.Locked.Clone(),
		Unlocking: make([]UnlockingTicket, 0, len(p.Unlocking)),
	}
	for _, t := range p.Unlocking {
		cpy.Unlocking = append(cpy.Unlocking, t.Clone())
	}
	return cpy
}

// TotalUnlocking sums the share amounts across all unlocking tickets.
func (p VaultPosition) TotalUnlocking() *num.Uint {
	total := num.UintZero()
	for _, t := range p.Unlocking {
		total.AddSum(t.Amount)
	}
	return total
}

// Total is the account's full claim on the vault, all buckets at equal
// weight.
func (p VaultPosition) Total() *num.Uint {
	return num.Sum(p.Unlocked, p.Locked, p.TotalUnlocking())
}

func (p VaultPosition) IsEmpty() bool {
	return p.Unlocked.IsZero() && p.Locked.IsZero() && len(p.Unlocking) == 0
}

// Ticket returns the unlocking ticket with the given id.
func (p VaultPosition) Ticket(id uint64) (UnlockingTicket, bool) {
	for _, t := range p.Unlocking {
		if t.ID == id {
			return t, true
		}
	}
	return UnlockingTicket{}, false
}

// VaultInfo describes a vault as reported by the vault itself.
type VaultInfo struct {
	BaseTokenDenom  string
	VaultTokenDenom string
	// LockupDuration is zero for vaults without a lockup gate.
	LockupDuration time.Duration
}

func (i VaultInfo) HasLockup() bool {
	return i.LockupDuration > 0
}
