package bignum_test

import (
	"testing"

	"github.com/hyeong-run/hyeong/internal/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) bignum.Bignum {
	t.Helper()
	b, err := bignum.FromString(s)
	require.NoError(t, err)
	return b
}

func TestAddSub(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890")
	b := mustParse(t, "987654321098765432109876543210")
	sum := bignum.Add(a, b)
	assert.Equal(t, "1111111110111111111011111111100", sum.String())
	back := bignum.Sub(sum, b)
	assert.True(t, bignum.Equal(a, back))
}

func TestNegativeAdd(t *testing.T) {
	a := mustParse(t, "-5")
	b := mustParse(t, "3")
	assert.Equal(t, "-2", bignum.Add(a, b).String())
	assert.Equal(t, "2", bignum.Add(a.Minus(), b).String())
}

func TestMul(t *testing.T) {
	a := mustParse(t, "99999999999999999999")
	b := mustParse(t, "99999999999999999999")
	got := bignum.Mul(a, b)
	assert.Equal(t, "9999999999999999999800000000000000000001", got.String())
}

func TestDivRem(t *testing.T) {
	a := mustParse(t, "1000000000000000000007")
	b := mustParse(t, "999999999999")
	q := bignum.Div(a, b)
	r := bignum.Rem(a, b)
	recombined := bignum.Add(bignum.Mul(q, b), r)
	assert.True(t, bignum.Equal(a, recombined))
}

func TestGcd(t *testing.T) {
	a := mustParse(t, "270")
	b := mustParse(t, "192")
	assert.Equal(t, "6", bignum.Gcd(a, b).String())
}

func TestGcdZero(t *testing.T) {
	assert.True(t, bignum.Equal(bignum.FromInt64(7), bignum.Gcd(bignum.FromInt64(7), bignum.Zero())))
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, bignum.Cmp(bignum.FromInt64(-1), bignum.FromInt64(1)))
	assert.Equal(t, 0, bignum.Cmp(bignum.Zero(), bignum.FromInt64(0)))
	assert.Equal(t, 1, bignum.Cmp(bignum.FromInt64(5), bignum.FromInt64(4)))
}

func TestBaseConversion(t *testing.T) {
	v := mustParse(t, "255")
	s, err := bignum.ToStringBase(v, 16)
	require.NoError(t, err)
	assert.Equal(t, "FF", s)

	back, err := bignum.FromStringBase("FF", 16)
	require.NoError(t, err)
	assert.True(t, bignum.Equal(v, back))
}

func TestBaseSizeError(t *testing.T) {
	_, err := bignum.ToStringBase(bignum.Zero(), 1)
	require.Error(t, err)
	var bse bignum.BaseSizeError
	assert.ErrorAs(t, err, &bse)
}

func TestParseError(t *testing.T) {
	_, err := bignum.FromStringBase("12Z", 10)
	require.Error(t, err)
	var pe bignum.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestIsZeroIsPos(t *testing.T) {
	assert.True(t, bignum.Zero().IsZero())
	assert.True(t, bignum.Zero().IsPos())
	assert.False(t, bignum.FromInt64(-1).IsPos())
	assert.True(t, bignum.FromInt64(1).IsPos())
}
