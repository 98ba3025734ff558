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

import (
	"testing"

	"code.vegaprotocol.io/credit/core/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueAfterHealthAssertionIsRefused(t *testing.T) {
	e := &Engine{dispatcher: SyncDispatcher{}}

	require.NoError(t, e.enqueue("withdraw", func() error { return nil }))

	e.healthCheckDone = true
	err := e.enqueue("withdraw", func() error { return nil })
	require.ErrorIs(t, err, types.ErrCallbackAfterHealthCheck)
}

func TestDrainSplicesNestedCallbacks(t *testing.T) {
	e := &Engine{dispatcher: SyncDispatcher{}}

	var order []string
	record := func(name string) func() error {
		return func() error {
			order = append(order, name)
			return nil
		}
	}

	// the first callback defers more work mid-flight, which must run before
	// anything queued after it
	require.NoError(t, e.enqueue("first", func() error {
		order = append(order, "first")
		if err := e.enqueue("first-nested", record("first-nested")); err != nil {
			return err
		}
		return e.enqueue("second-nested", record("second-nested"))
	}))
	require.NoError(t, e.enqueue("assert-healthy", record("assert-healthy")))

	require.NoError(t, e.drain())
	assert.Equal(t, []string{"first", "first-nested", "second-nested", "assert-healthy"}, order)
}
