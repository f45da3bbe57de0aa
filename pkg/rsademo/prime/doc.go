// Package prime draws probable primes of approximately a requested bit
// length.
//
// A Source reads a uniformly random value below 2^bits from its entropy
// reader and walks upward one integer at a time until big.Int.ProbablyPrime
// accepts a candidate. The top bit is deliberately not forced, so the result
// may be shorter than requested; a walk that starts near 2^bits may also end
// one bit longer.
//
// The expected number of steps is about ln(2^bits), but the walk has no
// proven bound. Sources therefore stop after a configurable number of
// candidates and return ErrSearchExhausted instead of looping forever.
//
// # Randomness
//
// The reader is an explicit collaborator. New(nil) uses crypto/rand.Reader;
// tests pass a seeded deterministic reader to make searches reproducible.
// A Source keeps no other state, so it is as safe for concurrent use as its
// reader.
package prime
