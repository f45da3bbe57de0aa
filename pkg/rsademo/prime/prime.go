package prime

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the number of Miller-Rabin rounds run per candidate, on
// top of the Baillie-PSW test ProbablyPrime always performs.
const DefaultRounds = 20

// MaxBits bounds a single draw so a careless caller cannot ask for an
// arbitrarily large allocation.
const MaxBits = 1 << 16

var (
	// ErrSearchExhausted indicates no probable prime was found within the
	// step budget.
	ErrSearchExhausted = errors.New("prime: search exhausted")

	// ErrRandomSource indicates the entropy reader failed.
	ErrRandomSource = errors.New("prime: random source failure")

	// ErrBitLength indicates a bit length above MaxBits.
	ErrBitLength = errors.New("prime: bit length too large")
)

var one = big.NewInt(1)

// Source produces probable primes from an entropy reader.
type Source struct {
	random   io.Reader
	rounds   int
	maxSteps uint64
}

// Option configures a Source.
type Option func(*Source)

// WithRounds sets the number of Miller-Rabin rounds. Negative values are
// ignored.
func WithRounds(n int) Option {
	return func(s *Source) {
		if n >= 0 {
			s.rounds = n
		}
	}
}

// WithMaxSteps caps the number of candidates examined per prime. Zero keeps
// the default, which scales with the bit length.
func WithMaxSteps(n uint64) Option {
	return func(s *Source) {
		s.maxSteps = n
	}
}

// New returns a Source reading from r. A nil reader selects
// crypto/rand.Reader.
func New(r io.Reader, opts ...Option) *Source {
	if r == nil {
		r = rand.Reader
	}
	s := &Source{random: r, rounds: DefaultRounds}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateProbablePrime returns a probable prime near approxBits bits.
// approxBits = 0 is treated as 1.
func (s *Source) GenerateProbablePrime(approxBits uint64) (*big.Int, error) {
	bits := approxBits
	if bits == 0 {
		bits = 1
	}
	if bits > MaxBits {
		return nil, fmt.Errorf("%w: %d > %d", ErrBitLength, bits, MaxBits)
	}

	candidate, err := s.draw(bits)
	if err != nil {
		return nil, err
	}

	limit := s.stepLimit(bits)
	for step := uint64(0); step < limit; step++ {
		if candidate.ProbablyPrime(s.rounds) {
			return candidate, nil
		}
		candidate.Add(candidate, one)
	}
	return nil, fmt.Errorf("%w: no probable prime within %d steps of a %d-bit draw", ErrSearchExhausted, limit, bits)
}

// stepLimit is generous compared to the expected gap of ln(2^bits) ≈ 0.69*bits.
func (s *Source) stepLimit(bits uint64) uint64 {
	if s.maxSteps > 0 {
		return s.maxSteps
	}
	return 64 * (bits + 1)
}

// draw returns a uniform value in [0, 2^bits).
func (s *Source) draw(bits uint64) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	if excess := uint(len(buf))*8 - uint(bits); excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	return new(big.Int).SetBytes(buf), nil
}
