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

package credit

import "code.vegaprotocol.io/credit/core/types"

type guardState int

const (
	guardInactive guardState = iota
	guardActive
)

// guard blocks a second batch from entering the pipeline while one is in
// flight. Adapter calls reach external systems which could call back in, so
// the whole batch runs under it.
type guard struct {
	state guardState
}

func (g *guard) activate() error {
	if g.state == guardActive {
		return types.ErrReentrancy
	}
	g.state = guardActive
	return nil
}

func (g *guard) deactivate() error {
	if g.state != guardActive {
		return types.ErrInvalidGuardTransition
	}
	g.state = guardInactive
	return nil
}

func (g *guard) active() bool {
	return g.state == guardActive
}
