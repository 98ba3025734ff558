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

import "time"

// TimeStub serves a settable network time.
type TimeStub struct {
	now time.Time
}

func NewTimeStub(now time.Time) *TimeStub {
	return &TimeStub{now: now}
}

// SetNow moves the clock.
func (t *TimeStub) SetNow(now time.Time) {
	t.now = now
}

// Forward advances the clock by d.
func (t *TimeStub) Forward(d time.Duration) {
	t.now = t.now.Add(d)
}

func (t *TimeStub) GetTimeNow() time.Time {
	return t.now
}
