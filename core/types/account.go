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

import "fmt"

// AccountKind narrows which collateral and debt denominations an account may
// hold.
type AccountKind int

const (
	// AccountKindDefault is the unrestricted credit account kind.
	AccountKindDefault AccountKind = iota
	// AccountKindHighLeveragedStrategy restricts the account to correlated
	// collateral/debt pairs carrying dedicated HLS risk parameters in
	// exchange for higher leverage.
	AccountKindHighLeveragedStrategy
)

func (k AccountKind) String() string {
	switch k {
	case AccountKindDefault:
		return "default"
	case AccountKindHighLeveragedStrategy:
		return "high_leveraged_strategy"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// VaultPositionEntry pairs a vault address with the account's position in it.
type VaultPositionEntry struct {
	Vault    string
	Position VaultPosition
}

// AccountState is the assembled view of one account's holdings. Debts and
// lends carry converted amounts, not shares.
type AccountState struct {
	AccountID string
	Kind      AccountKind
	Deposits  []Coin
	Debts     []Coin
	Lends     []Coin
	Vaults    []VaultPositionEntry
}
