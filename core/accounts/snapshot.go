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
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// currentSnapshotVersion is bumped whenever the serialized layout changes.
// Version 1 stored a vault position as a single share amount; version 2
// splits it into unlocked, locked and unlocking buckets.
const currentSnapshotVersion = 2

type snapshotPayload struct {
	Version  int               `json:"version"`
	Accounts []accountPayload  `json:"accounts"`
	Kinds    map[string]string `json:"kinds,omitempty"`
}

type accountPayload struct {
	ID         string         `json:"id"`
	Deposits   []coinPayload  `json:"deposits,omitempty"`
	DebtShares []coinPayload  `json:"debt_shares,omitempty"`
	LendShares []coinPayload  `json:"lend_shares,omitempty"`
	Vaults     []vaultPayload `json:"vaults,omitempty"`
}

type coinPayload struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type vaultPayload struct {
	Vault string `json:"vault"`
	// Amount is the legacy version 1 field, the whole position as one
	// unlocked share count.
	Amount    string          `json:"amount,omitempty"`
	Unlocked  string          `json:"unlocked,omitempty"`
	Locked    string          `json:"locked,omitempty"`
	Unlocking []ticketPayload `json:"unlocking,omitempty"`
}

type ticketPayload struct {
	ID        uint64 `json:"id"`
	Amount    string `json:"amount"`
	ReleaseAt int64  `json:"release_at"`
}

// Serialize dumps the full engine state in the current snapshot layout.
func (e *Engine) Serialize() ([]byte, error) {
	p := snapshotPayload{
		Version: currentSnapshotVersion,
		Kinds:   map[string]string{},
	}
	for id, kind := range e.kinds {
		p.Kinds[id] = kind.String()
	}

	ids := e.allAccountIDs()
	for _, id := range ids {
		acc := accountPayload{
			ID:         id,
			Deposits:   coinsPayload(e.deposits[id]),
			DebtShares: coinsPayload(e.debtShares[id]),
			LendShares: coinsPayload(e.lendShares[id]),
		}
		for _, entry := range e.VaultPositions(id) {
			vp := vaultPayload{
				Vault:    entry.Vault,
				Unlocked: entry.Position.Unlocked.String(),
				Locked:   entry.Position.Locked.String(),
			}
			for _, t := range entry.Position.Unlocking {
				vp.Unlocking = append(vp.Unlocking, ticketPayload{
					ID:        t.ID,
					Amount:    t.Amount.String(),
					ReleaseAt: t.ReleaseAt.UnixNano(),
				})
			}
			acc.Vaults = append(acc.Vaults, vp)
		}
		p.Accounts = append(p.Accounts, acc)
	}

	return json.Marshal(p)
}

// Load restores engine state from a serialized snapshot, migrating older
// layouts forward. A version 1 vault position lands in the unlocked bucket.
func (e *Engine) Load(data []byte) error {
	var p snapshotPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("could not parse accounts snapshot: %w", err)
	}
	if p.Version < 1 || p.Version > currentSnapshotVersion {
		return fmt.Errorf("unsupported accounts snapshot version %d", p.Version)
	}

	fresh := New(e.log, e.Config)
	e.deposits = fresh.deposits
	e.debtShares = fresh.debtShares
	e.lendShares = fresh.lendShares
	e.vaults = fresh.vaults
	e.kinds = fresh.kinds
	e.totalDeposits = fresh.totalDeposits
	e.totalDebtShares = fresh.totalDebtShares
	e.totalLendShares = fresh.totalLendShares
	e.vaultSupply = fresh.vaultSupply

	for id, kind := range p.Kinds {
		k, err := parseKind(kind)
		if err != nil {
			return err
		}
		e.kinds[id] = k
	}

	for _, acc := range p.Accounts {
		for _, c := range acc.Deposits {
			amt, err := parseAmount(c.Amount)
			if err != nil {
				return err
			}
			e.IncrementDeposit(acc.ID, types.Coin{Denom: c.Denom, Amount: amt})
		}
		for _, c := range acc.DebtShares {
			amt, err := parseAmount(c.Amount)
			if err != nil {
				return err
			}
			e.AddDebtShares(acc.ID, c.Denom, amt)
		}
		for _, c := range acc.LendShares {
			amt, err := parseAmount(c.Amount)
			if err != nil {
				return err
			}
			e.AddLendShares(acc.ID, c.Denom, amt)
		}
		for _, v := range acc.Vaults {
			if err := e.loadVaultPosition(acc.ID, v, p.Version); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) loadVaultPosition(accountID string, v vaultPayload, version int) error {
	if version == 1 {
		amt, err := parseAmount(v.Amount)
		if err != nil {
			return err
		}
		return e.IncrementVaultShares(accountID, v.Vault, types.VaultBucketUnlocked, amt)
	}

	if v.Unlocked != "" {
		amt, err := parseAmount(v.Unlocked)
		if err != nil {
			return err
		}
		if err := e.IncrementVaultShares(accountID, v.Vault, types.VaultBucketUnlocked, amt); err != nil {
			return err
		}
	}
	if v.Locked != "" {
		amt, err := parseAmount(v.Locked)
		if err != nil {
			return err
		}
		if err := e.IncrementVaultShares(accountID, v.Vault, types.VaultBucketLocked, amt); err != nil {
			return err
		}
	}
	for _, t := range v.Unlocking {
		amt, err := parseAmount(t.Amount)
		if err != nil {
			return err
		}
		p := e.vaultPosition(accountID, v.Vault)
		p.Unlocking = append(p.Unlocking, types.UnlockingTicket{
			ID:        t.ID,
			Amount:    amt,
			ReleaseAt: time.Unix(0, t.ReleaseAt).UTC(),
		})
		incrementTotal(e.vaultSupply, v.Vault, amt)
	}
	return nil
}

func (e *Engine) allAccountIDs() []string {
	seen := map[string]struct{}{}
	for id := range e.deposits {
		seen[id] = struct{}{}
	}
	for id := range e.debtShares {
		seen[id] = struct{}{}
	}
	for id := range e.lendShares {
		seen[id] = struct{}{}
	}
	for id := range e.vaults {
		seen[id] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func coinsPayload(byDenom map[string]*num.Uint) []coinPayload {
	if len(byDenom) == 0 {
		return nil
	}
	denoms := make([]string, 0, len(byDenom))
	for d := range byDenom {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	out := make([]coinPayload, 0, len(denoms))
	for _, d := range denoms {
		out = append(out, coinPayload{Denom: d, Amount: byDenom[d].String()})
	}
	return out
}

func parseAmount(s string) (*num.Uint, error) {
	if s == "" {
		return num.UintZero(), nil
	}
	amt, overflow := num.UintFromString(s, 10)
	if overflow {
		return nil, fmt.Errorf("invalid amount %q in accounts snapshot", s)
	}
	return amt, nil
}

func parseKind(s string) (types.AccountKind, error) {
	switch s {
	case types.AccountKindDefault.String():
		return types.AccountKindDefault, nil
	case types.AccountKindHighLeveragedStrategy.String():
		return types.AccountKindHighLeveragedStrategy, nil
	default:
		return 0, fmt.Errorf("unknown account kind %q in accounts snapshot", s)
	}
}
