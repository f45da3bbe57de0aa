// Package rsademo implements textbook RSA over a single number.
//
// A KeyGenerator draws two probable primes p and q, forms n = p*q and
// φ(n) = n - p - q + 1, searches upward from a small seed for the first
// public exponent e coprime to φ(n), and derives d as the modular inverse of
// e. EncryptNumber and DecryptNumber are both a single modular
// exponentiation.
//
//	gen := rsademo.NewKeyGenerator(rsademo.DefaultConfig())
//	kp, err := gen.Generate(ctx, 64)
//	if err != nil {
//	    return err
//	}
//	c, err := rsademo.EncryptNumber(big.NewInt(100), kp.Public())
//	m, err := rsademo.DecryptNumber(c, kp) // m == 100
//
// # Limitations
//
// This is a teaching tool, not a cryptosystem:
//
//   - there is no padding, so encryption is deterministic and malleable;
//   - arithmetic is not constant-time;
//   - plaintexts must be below n. Larger values wrap modulo n and decrypt to
//     value mod n. There is no chunking;
//   - p and q are drawn independently and may be equal. The totient formula
//     is then wrong and round trips fail. The generator logs a warning but
//     does not retry;
//   - bit widths below about 8 produce keys that are trivially factored and
//     are rejected below Config.MinBits.
//
// # Work bounds
//
// Prime and exponent searches are bounded by Config.MaxPrimeSteps and
// Config.MaxExponentSteps and report ErrPrimeSearchExhausted or
// ErrCoprimeExponentExhausted when crossed. There is no cancellation: the
// context passed to Generate only scopes log records.
package rsademo
