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

package num_test

import (
	"math/big"
	"testing"

	"code.vegaprotocol.io/credit/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintConstructors(t *testing.T) {
	var expected uint64 = 42

	t.Run("from uint64", func(t *testing.T) {
		n := num.NewUint(expected)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("from string", func(t *testing.T) {
		n, overflow := num.UintFromString("42", 10)
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("from big", func(t *testing.T) {
		n, overflow := num.UintFromBig(big.NewInt(int64(expected)))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("from decimal floors", func(t *testing.T) {
		n, overflow := num.UintFromDecimal(num.MustDecimalFromString("42.9"))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("from decimal ceil", func(t *testing.T) {
		n, overflow := num.UintFromDecimalCeil(num.MustDecimalFromString("41.1"))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})
}

func TestUintClone(t *testing.T) {
	first := num.NewUint(42)
	second := first.Clone()

	second.Add(second, num.NewUint(42))

	assert.Equal(t, uint64(42), first.Uint64())
	assert.Equal(t, uint64(84), second.Uint64())
}

func TestMulRatio(t *testing.T) {
	t.Run("floors the quotient", func(t *testing.T) {
		// 10 * 10 / 3 = 33.33..
		r, err := num.MulRatio(num.NewUint(10), num.NewUint(10), num.NewUint(3))
		require.NoError(t, err)
		assert.Equal(t, uint64(33), r.Uint64())
	})

	t.Run("ceil rounds up", func(t *testing.T) {
		r, err := num.MulRatioCeil(num.NewUint(10), num.NewUint(10), num.NewUint(3))
		require.NoError(t, err)
		assert.Equal(t, uint64(34), r.Uint64())
	})

	t.Run("ceil of exact division does not round", func(t *testing.T) {
		r, err := num.MulRatioCeil(num.NewUint(10), num.NewUint(9), num.NewUint(3))
		require.NoError(t, err)
		assert.Equal(t, uint64(30), r.Uint64())
	})

	t.Run("zero divisor errors", func(t *testing.T) {
		_, err := num.MulRatio(num.NewUint(10), num.NewUint(10), num.UintZero())
		require.ErrorIs(t, err, num.ErrDivideByZero)
	})

	t.Run("no spurious overflow on full 256 bit product", func(t *testing.T) {
		// maxUint * maxUint / maxUint = maxUint, the intermediate product
		// needs 512 bits
		maxStr := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
		m := num.MustUintFromString(maxStr)
		r, err := num.MulRatio(m, m, m)
		require.NoError(t, err)
		assert.Equal(t, maxStr, r.String())
	})

	t.Run("overflowing quotient errors", func(t *testing.T) {
		maxStr := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
		m := num.MustUintFromString(maxStr)
		_, err := num.MulRatio(m, m, num.UintOne())
		require.ErrorIs(t, err, num.ErrOverflow)
	})
}

func TestMulDecimal(t *testing.T) {
	price := num.MustDecimalFromString("2.3654")

	t.Run("floor", func(t *testing.T) {
		r, err := num.MulDecimal(num.NewUint(300), price)
		require.NoError(t, err)
		// 300 * 2.3654 = 709.62
		assert.Equal(t, uint64(709), r.Uint64())
	})

	t.Run("ceil", func(t *testing.T) {
		r, err := num.MulDecimalCeil(num.NewUint(300), price)
		require.NoError(t, err)
		assert.Equal(t, uint64(710), r.Uint64())
	})

	t.Run("div floors", func(t *testing.T) {
		r, err := num.DivDecimal(num.NewUint(100), price)
		require.NoError(t, err)
		// 100 / 2.3654 = 42.27..
		assert.Equal(t, uint64(42), r.Uint64())
	})

	t.Run("div by zero errors", func(t *testing.T) {
		_, err := num.DivDecimal(num.NewUint(100), num.DecimalZero())
		require.ErrorIs(t, err, num.ErrDivideByZero)
	})
}

func TestDelta(t *testing.T) {
	d, neg := num.UintZero().Delta(num.NewUint(10), num.NewUint(4))
	assert.False(t, neg)
	assert.Equal(t, uint64(6), d.Uint64())

	d, neg = num.UintZero().Delta(num.NewUint(4), num.NewUint(10))
	assert.True(t, neg)
	assert.Equal(t, uint64(6), d.Uint64())
}

func TestDecimalRatio(t *testing.T) {
	hf := num.DecimalRatio(num.NewUint(105), num.NewUint(100))
	assert.True(t, hf.Equal(num.MustDecimalFromString("1.05")))

	// zero denominator yields zero, callers treat it as undefined
	assert.True(t, num.DecimalRatio(num.NewUint(10), num.UintZero()).IsZero())
}
