package modarith_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
)

func randomBelow(r *rand.Rand, limit *big.Int) *big.Int {
	buf := make([]byte, (limit.BitLen()+7)/8+8)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	v := new(big.Int).SetBytes(buf)
	return v.Mod(v, limit)
}

func TestModularInverseKnownValues(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{3, 7, 5},
		{3, 11, 4},
		{10, 17, 12},
		{17, 3120, 2753},
		{65537, 3120, 2753},
		{3, 59500, 39667},
		{1, 2, 1},
		{8, 7, 1},
	}

	for _, tc := range cases {
		got := modarith.ModularInverse(big.NewInt(tc.a), big.NewInt(tc.m))
		assert.Equalf(t, big.NewInt(tc.want).String(), got.String(), "inverse of %d mod %d", tc.a, tc.m)
	}
}

func TestModularInverseModulusOne(t *testing.T) {
	for _, a := range []int64{0, 1, 2, 65537, -9} {
		got := modarith.ModularInverse(big.NewInt(a), big.NewInt(1))
		require.Equal(t, int64(1), got.Int64(), "a=%d", a)
	}
}

func TestModularInverseCoprimeProperty(t *testing.T) {
	r := rand.New(rand.NewChaCha8([32]byte{1}))
	one := big.NewInt(1)

	checked := 0
	for checked < 200 {
		m := randomBelow(r, new(big.Int).Lsh(one, 96))
		if m.Cmp(one) <= 0 {
			continue
		}
		a := randomBelow(r, m)
		if modarith.GCD(a, m).Cmp(one) != 0 {
			continue
		}

		inv := modarith.ModularInverse(a, m)
		require.GreaterOrEqual(t, inv.Sign(), 0)
		require.Negative(t, inv.Cmp(m), "inverse must be below the modulus")

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, m)
		require.Equalf(t, "1", prod.String(), "a=%s m=%s inv=%s", a, m, inv)

		want := new(big.Int).ModInverse(a, m)
		require.Equal(t, want.String(), inv.String())
		checked++
	}
}

func TestModularInverseNegativeInput(t *testing.T) {
	// -3 ≡ 4 (mod 7), and 4*2 = 8 ≡ 1.
	got := modarith.ModularInverse(big.NewInt(-3), big.NewInt(7))
	assert.Equal(t, int64(2), got.Int64())
}

func TestModularInverseNonCoprimeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = modarith.ModularInverse(big.NewInt(4), big.NewInt(6))
		_ = modarith.ModularInverse(big.NewInt(0), big.NewInt(6))
		_ = modarith.ModularInverse(big.NewInt(5), big.NewInt(0))
	})
}

func TestInverseChecked(t *testing.T) {
	inv, err := modarith.Inverse(big.NewInt(3), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.Int64())

	_, err = modarith.Inverse(big.NewInt(4), big.NewInt(6))
	assert.ErrorIs(t, err, modarith.ErrNotInvertible)

	_, err = modarith.Inverse(big.NewInt(4), big.NewInt(0))
	assert.ErrorIs(t, err, modarith.ErrInvalidModulus)

	inv, err = modarith.Inverse(big.NewInt(12), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.Int64())
}

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{12, 18, 6},
		{-12, 18, 6},
		{65537, 59500, 1},
		{2, 59500, 2},
		{3, 59500, 1},
	}
	for _, tc := range cases {
		got := modarith.GCD(big.NewInt(tc.a), big.NewInt(tc.b))
		assert.Equalf(t, tc.want, got.Int64(), "gcd(%d, %d)", tc.a, tc.b)
	}
}

func TestModPowMatchesExp(t *testing.T) {
	r := rand.New(rand.NewChaCha8([32]byte{2}))
	limit := new(big.Int).Lsh(big.NewInt(1), 128)

	for i := 0; i < 100; i++ {
		base := randomBelow(r, limit)
		exp := randomBelow(r, limit)
		m := randomBelow(r, limit)
		m.Add(m, big.NewInt(2))

		got, err := modarith.ModPow(base, exp, m)
		require.NoError(t, err)
		want := new(big.Int).Exp(base, exp, m)
		require.Equal(t, want.String(), got.String())
	}
}

func TestModPowExponentZero(t *testing.T) {
	for _, m := range []int64{2, 3, 59989, 1 << 40} {
		for _, b := range []int64{0, 1, 7, -5} {
			got, err := modarith.ModPow(big.NewInt(b), big.NewInt(0), big.NewInt(m))
			require.NoError(t, err)
			assert.Equalf(t, int64(1), got.Int64(), "%d^0 mod %d", b, m)
		}
	}
}

func TestModPowEdgeCases(t *testing.T) {
	got, err := modarith.ModPow(big.NewInt(100), big.NewInt(3), big.NewInt(59989))
	require.NoError(t, err)
	assert.Equal(t, int64(1000000%59989), got.Int64())

	got, err = modarith.ModPow(big.NewInt(-2), big.NewInt(3), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Int64(), "(-2)^3 = -8 ≡ 2 (mod 5)")

	got, err = modarith.ModPow(big.NewInt(9), big.NewInt(9), big.NewInt(1))
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	_, err = modarith.ModPow(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, modarith.ErrInvalidModulus)

	_, err = modarith.ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
	assert.ErrorIs(t, err, modarith.ErrNegativeExponent)
}

func TestModPowDoesNotMutateArguments(t *testing.T) {
	base, exp, m := big.NewInt(-11), big.NewInt(13), big.NewInt(97)
	_, err := modarith.ModPow(base, exp, m)
	require.NoError(t, err)
	assert.Equal(t, int64(-11), base.Int64())
	assert.Equal(t, int64(13), exp.Int64())
	assert.Equal(t, int64(97), m.Int64())
}
