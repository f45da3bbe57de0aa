// Package modarith implements the number-theoretic routines behind textbook
// RSA: the extended Euclidean modular inverse, greatest common divisor and
// square-and-multiply modular exponentiation over math/big integers.
//
// All division is truncated toward zero (big.Int.QuoRem). Negative
// intermediate values are normalized explicitly, so every result that is
// documented to lie in [0, m) does.
//
// # Preconditions
//
// ModularInverse is total but only meaningful when gcd(a, m) = 1. For
// non-coprime inputs the returned value is unspecified; use Inverse when the
// caller cannot guarantee coprimality.
package modarith
