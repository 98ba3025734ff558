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

package num

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned by checked arithmetic when the result does not
	// fit 256 bits.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrDivideByZero is returned by checked arithmetic on a zero divisor.
	ErrDivideByZero = errors.New("divide by zero")
)

// Uint is a wrapper for a big unsigned int.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintOne returns a new Uint set to one.
func UintOne() *Uint {
	return NewUint(1)
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a
	}
	return b
}

// UintFromBig constructs a new Uint from a big.Int,
// returns true if overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, ok := uint256.FromBig(b)
	// ok means an overflow happened
	if ok {
		return NewUint(0), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal returns a new Uint from a Decimal, dropping any fractional
// part. Returns true if overflow happened.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.Floor().BigInt())
}

// UintFromDecimalCeil is UintFromDecimal rounding any fractional part up.
func UintFromDecimalCeil(d Decimal) (*Uint, bool) {
	return UintFromBig(d.Ceil().BigInt())
}

// UintFromString creates a new Uint from a string interpreted using the
// given base. Returns true if an error or overflow happened.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return NewUint(0), true
	}
	return UintFromBig(b)
}

// MustUintFromString creates a new base-10 Uint from a string, panicking on
// bad input. For constants and tests.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str, 10)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %s", str))
	}
	return u
}

// Sum returns the sum of all given values as a new Uint.
func Sum(vals ...*Uint) *Uint {
	return NewUint(0).AddSum(vals...)
}

// MulRatio computes x * num / den with an arbitrary precision intermediate,
// flooring the result. Fails on a zero divisor or if the quotient does not
// fit 256 bits. This is the required idiom for every risk-sensitive
// multiply-then-divide.
func MulRatio(x, num, den *Uint) (*Uint, error) {
	if den.IsZero() {
		return nil, fmt.Errorf("%s * %s / %s: %w", x, num, den, ErrDivideByZero)
	}
	p := new(big.Int).Mul(x.BigInt(), num.BigInt())
	p.Quo(p, den.BigInt())
	r, overflow := UintFromBig(p)
	if overflow {
		return nil, fmt.Errorf("%s * %s / %s: %w", x, num, den, ErrOverflow)
	}
	return r, nil
}

// MulRatioCeil is MulRatio rounding the quotient up.
func MulRatioCeil(x, num, den *Uint) (*Uint, error) {
	if den.IsZero() {
		return nil, fmt.Errorf("%s * %s / %s: %w", x, num, den, ErrDivideByZero)
	}
	p := new(big.Int).Mul(x.BigInt(), num.BigInt())
	q, m := new(big.Int).QuoRem(p, den.BigInt(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	r, overflow := UintFromBig(q)
	if overflow {
		return nil, fmt.Errorf("%s * %s / %s: %w", x, num, den, ErrOverflow)
	}
	return r, nil
}

// MulDecimal computes u * d flooring the result, with an arbitrary precision
// intermediate. Used for values credited to the user, which round down.
func MulDecimal(u *Uint, d Decimal) (*Uint, error) {
	r, overflow := UintFromDecimal(u.ToDecimal().Mul(d))
	if overflow {
		return nil, fmt.Errorf("%s * %s: %w", u, d, ErrOverflow)
	}
	return r, nil
}

// MulDecimalCeil computes u * d rounding the result up. Used for amounts
// owed by the user, which round up.
func MulDecimalCeil(u *Uint, d Decimal) (*Uint, error) {
	r, overflow := UintFromDecimalCeil(u.ToDecimal().Mul(d))
	if overflow {
		return nil, fmt.Errorf("%s * %s: %w", u, d, ErrOverflow)
	}
	return r, nil
}

// DivDecimal computes u / d flooring the result.
func DivDecimal(u *Uint, d Decimal) (*Uint, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("%s / %s: %w", u, d, ErrDivideByZero)
	}
	r, overflow := UintFromDecimal(u.ToDecimal().Div(d))
	if overflow {
		return nil, fmt.Errorf("%s / %s: %w", u, d, ErrOverflow)
	}
	return r, nil
}

func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

func (z *Uint) SetUint64(val uint64) *Uint {
	z.u.SetUint64(val)
	return z
}

func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

func (z Uint) ToDecimal() Decimal {
	return DecimalFromUint(&z)
}

// Add will add x and y then store the result into z.
// This is equivalent to `z = x + y`.
// z is returned for convenience, no new variable is created.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds multiple values at the same time to a given uint,
// so x.AddSum(y, z) is equivalent to x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// AddOverflow will add x and y then store the result into z.
// True is returned if an overflow occurred.
func (z *Uint) AddOverflow(x, y *Uint) (*Uint, bool) {
	_, ok := z.u.AddOverflow(&x.u, &y.u)
	return z, ok
}

// Sub will subtract y from x then store the result into z.
// This is equivalent to `z = x - y`.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// SubOverflow will subtract y from x then store the result into z.
// True is returned if an underflow occurred.
func (z *Uint) SubOverflow(x, y *Uint) (*Uint, bool) {
	_, ok := z.u.SubOverflow(&x.u, &y.u)
	return z, ok
}

// Delta will subtract y from x and store the result, unless x-y underflowed,
// in which case the neg flag is set and the result of y - x is set instead.
func (z *Uint) Delta(x, y *Uint) (*Uint, bool) {
	// y is the bigger value - swap the two
	if y.GT(x) {
		_ = z.Sub(y, x)
		return z, true
	}
	_ = z.Sub(x, y)
	return z, false
}

// Mul will multiply x and y then store the result into z.
// This is equivalent to `z = x * y`.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// MulOverflow will multiply x and y then store the result into z.
// True is returned if an overflow occurred.
func (z *Uint) MulOverflow(x, y *Uint) (*Uint, bool) {
	_, ok := z.u.MulOverflow(&x.u, &y.u)
	return z, ok
}

// Div will divide x by y then store the result into z.
// This is equivalent to `z = x / y`.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// LT checks if the value stored in z is lesser than oth.
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE checks if the value stored in z is lesser than or equal to oth.
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ checks if the value stored in z is equal to oth.
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// EQUint64 checks if the value stored in z is equal to oth.
func (z Uint) EQUint64(oth uint64) bool {
	return z.u.Eq(uint256.NewInt(oth))
}

// NEQ checks if the value stored in z is different than oth.
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT checks if the value stored in z is greater than oth.
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTUint64 checks if the value stored in z is greater than oth.
func (z Uint) GTUint64(oth uint64) bool {
	return z.u.GtUint64(oth)
}

// GTE checks if the value stored in z is greater than or equal to oth.
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero returns whether z == 0 or not.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Copy sets z to x. This is the equivalent of `z = x`.
func (z *Uint) Copy(x *Uint) *Uint {
	z.u = x.u
	return z
}

// Clone creates a copy of this value. This is the equivalent of `x := z`.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

// String returns the stored value as a base-10 string.
func (z Uint) String() string {
	return z.u.ToBig().String()
}

// Format implements fmt.Formatter.
func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}

// Bytes returns the internal representation of the Uint as a [32]byte,
// big endian encoded array.
func (z Uint) Bytes() [32]byte {
	return z.u.Bytes32()
}
