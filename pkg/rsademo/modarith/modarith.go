package modarith

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus indicates a modulus that is zero or negative.
	ErrInvalidModulus = errors.New("modarith: modulus must be positive")

	// ErrNegativeExponent indicates ModPow was asked for a negative power.
	ErrNegativeExponent = errors.New("modarith: exponent must be non-negative")

	// ErrNotInvertible indicates gcd(a, m) != 1, so no inverse exists.
	ErrNotInvertible = errors.New("modarith: value is not invertible modulo m")
)

var one = big.NewInt(1)

// ModularInverse returns x in [0, m) with a*x ≡ 1 (mod m), computed with the
// extended Euclidean algorithm. By convention the inverse modulo 1 is 1.
//
// The result is unspecified when gcd(a, m) != 1; the function never panics
// on such input.
func ModularInverse(a, m *big.Int) *big.Int {
	if m.Cmp(one) == 0 {
		return big.NewInt(1)
	}

	r0 := new(big.Int).Set(a)
	if r0.Sign() < 0 && m.Sign() > 0 {
		r0.Mod(r0, m)
	}
	r1 := new(big.Int).Set(m)

	// inv tracks the coefficient of r0, other the coefficient of r1.
	inv := big.NewInt(1)
	other := new(big.Int)

	quo, rem, tmp := new(big.Int), new(big.Int), new(big.Int)
	for r0.Cmp(one) > 0 {
		if r1.Sign() == 0 {
			// gcd(a, m) > 1
			break
		}
		quo.QuoRem(r0, r1, rem)
		inv.Sub(inv, tmp.Mul(quo, other))
		r0.Set(rem)

		r0, r1 = r1, r0
		inv, other = other, inv
	}

	if inv.Sign() < 0 {
		inv.Add(inv, m)
	}
	return inv
}

// Inverse is the checked form of ModularInverse. It returns ErrInvalidModulus
// for m < 1 and ErrNotInvertible when a and m share a factor.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if m.Cmp(one) != 0 && GCD(a, m).Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}
	return ModularInverse(a, m), nil
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

// ModPow computes base^exp mod m by right-to-left square-and-multiply. The
// result lies in [0, m); a negative base is reduced into that range first.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if m.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result, nil
}
