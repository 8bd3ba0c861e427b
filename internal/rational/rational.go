// Package rational implements exact rational arithmetic over bignum.Bignum,
// kept normalised (gcd-reduced, positive denominator) after every operation,
// with a distinguished nan value (1/0) that absorbs through + and *.
package rational

import (
	"fmt"

	"github.com/hyeong-run/hyeong/internal/bignum"
)

// nanString is the display form for an undefined (1/0) rational.
const nanString = "너무 커엇..."

// Num is a normalised signed rational number, or nan.
type Num struct {
	up, down bignum.Bignum
}

// Zero returns 0/1.
func Zero() Num { return Num{up: bignum.Zero(), down: bignum.One()} }

// One returns 1/1.
func One() Num { return Num{up: bignum.One(), down: bignum.One()} }

// NaN returns the undefined value 1/0.
func NaN() Num { return Num{up: bignum.One(), down: bignum.Zero()} }

// FromInt constructs n/1.
func FromInt(n int64) Num { return Num{up: bignum.FromInt64(n), down: bignum.One()} }

// FromCount constructs an exact integer from an unsigned count (e.g. a
// hangul/dot count derived while parsing).
func FromCount(n uint64) Num { return Num{up: bignum.FromUint64(n), down: bignum.One()} }

// IsNaN reports whether n is the undefined value.
func (n Num) IsNaN() bool { return n.down.IsZero() }

// IsPos reports whether n's sign (after normalisation, carried on up) is
// non-negative. Reports true for nan (its up is 1).
func (n Num) IsPos() bool { return n.up.IsPos() }

func normalize(up, down bignum.Bignum) Num {
	if down.IsZero() {
		return NaN()
	}
	g := bignum.Gcd(up, down)
	if !g.IsZero() {
		up = bignum.Div(up, g)
		down = bignum.Div(down, g)
	}
	if !down.IsPos() {
		up = up.Minus()
		down = down.Minus()
	}
	return Num{up: up, down: down}
}

// Add returns lhs+rhs. nan propagates.
func Add(lhs, rhs Num) Num {
	if lhs.IsNaN() || rhs.IsNaN() {
		return NaN()
	}
	up := bignum.Add(bignum.Mul(lhs.up, rhs.down), bignum.Mul(lhs.down, rhs.up))
	down := bignum.Mul(lhs.down, rhs.down)
	return normalize(up, down)
}

// Mul returns lhs*rhs. nan propagates.
func Mul(lhs, rhs Num) Num {
	if lhs.IsNaN() || rhs.IsNaN() {
		return NaN()
	}
	return normalize(bignum.Mul(lhs.up, rhs.up), bignum.Mul(lhs.down, rhs.down))
}

// Sub returns lhs-rhs.
func Sub(lhs, rhs Num) Num { return Add(lhs, rhs.Minus()) }

// Minus returns -n (identity on nan).
func (n Num) Minus() Num {
	if n.IsNaN() {
		return n
	}
	return Num{up: n.up.Minus(), down: n.down}
}

// Flip returns the reciprocal of n (identity on nan; 0 flips to nan).
func (n Num) Flip() Num {
	if n.IsNaN() {
		return n
	}
	return normalize(n.down, n.up)
}

// Equal reports whether two rationals denote the same value. Two nans
// compare equal to each other.
func Equal(a, b Num) bool {
	if a.IsNaN() || b.IsNaN() {
		return a.IsNaN() == b.IsNaN()
	}
	return bignum.Equal(a.up, b.up) && bignum.Equal(a.down, b.down)
}

// Floor returns the integer floor (truncation toward negative infinity).
// Returns zero for nan rather than dividing by zero, so that code paths
// which test IsPos() before flooring (nan's up is 1, so IsPos() is true)
// never panic.
func (n Num) Floor() bignum.Bignum {
	if n.IsNaN() {
		return bignum.Zero()
	}
	q := bignum.Div(n.up, n.down)
	r := bignum.Rem(n.up, n.down)
	if !r.IsZero() && !n.up.IsPos() {
		q = bignum.Sub(q, bignum.One())
	}
	return q
}

// ToInt returns the low 32-bit magnitude of the truncated floor value.
func (n Num) ToInt() int64 { return n.Floor().ToInt64() }

// String renders n as "up/down", or the nan display string.
func (n Num) String() string {
	if n.IsNaN() {
		return nanString
	}
	return fmt.Sprintf("%v/%v", n.up, n.down)
}

// Parts returns n's numerator and denominator rendered as base-10
// strings, or ok=false for nan. internal/emit uses this to serialise a
// residual stack value into a literal FromParts call in generated source.
func (n Num) Parts() (up, down string, ok bool) {
	if n.IsNaN() {
		return "", "", false
	}
	return n.up.String(), n.down.String(), true
}

// FromParts reconstructs the rational described by base-10 decimal
// strings up/down, as produced by Parts.
func FromParts(up, down string) (Num, error) {
	u, err := bignum.FromString(up)
	if err != nil {
		return Num{}, err
	}
	d, err := bignum.FromString(down)
	if err != nil {
		return Num{}, err
	}
	return normalize(u, d), nil
}

// Decimal renders n as a bare decimal integer when it has no fractional
// part (down == 1), falling back to String otherwise. This is the form
// the VM writes to stdout/stderr for a negative value, after negating it; String's
// "up/down" form is for REPL/debug display.
func (n Num) Decimal() string {
	if n.IsNaN() {
		return nanString
	}
	if bignum.Equal(n.down, bignum.One()) {
		return n.up.String()
	}
	return n.String()
}
