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
	"fmt"

	"code.vegaprotocol.io/credit/core/types"
)

// RegistryStub is an in-memory account ownership registry.
type RegistryStub struct {
	owners map[string]string
	nextID uint64
}

func NewRegistryStub() *RegistryStub {
	return &RegistryStub{
		owners: map[string]string{},
	}
}

// SetOwner registers an account with a fixed id.
func (r *RegistryStub) SetOwner(accountID, owner string) {
	r.owners[accountID] = owner
}

func (r *RegistryStub) Mint(owner string) (string, error) {
	r.nextID++
	id := fmt.Sprintf("account-%d", r.nextID)
	r.owners[id] = owner
	return id, nil
}

func (r *RegistryStub) OwnerOf(accountID string) (string, error) {
	owner, ok := r.owners[accountID]
	if !ok {
		return "", types.ErrAccountNotFound
	}
	return owner, nil
}
