package rsademo

import (
	"io"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

const (
	// DefaultMinBits is the smallest prime width Generate accepts by default.
	DefaultMinBits = 4

	// DefaultMaxExponentSteps bounds the public exponent search.
	DefaultMaxExponentSteps = 1 << 20
)

// Config holds the knobs of a KeyGenerator. The zero value is usable: every
// zero field falls back to the documented default, except MinBits where zero
// disables the floor.
type Config struct {
	// MinBits rejects Generate calls with a smaller bit width.
	MinBits uint64

	// PrimalityRounds is the Miller-Rabin round count per candidate. Zero
	// selects prime.DefaultRounds.
	PrimalityRounds int

	// MaxPrimeSteps caps the upward walk per prime. Zero lets the prime
	// package derive a cap from the bit width.
	MaxPrimeSteps uint64

	// MaxExponentSteps caps the number of exponent candidates. Zero selects
	// DefaultMaxExponentSteps.
	MaxExponentSteps uint64

	// Rand is the entropy source for prime draws. Nil selects
	// crypto/rand.Reader. A deterministic reader makes generation
	// reproducible.
	Rand io.Reader

	// Logger receives progress records. Nil selects slog.Default().
	Logger logging.Logger
}

// DefaultConfig returns the configuration used by the demo command.
func DefaultConfig() Config {
	return Config{
		MinBits:          DefaultMinBits,
		PrimalityRounds:  prime.DefaultRounds,
		MaxExponentSteps: DefaultMaxExponentSteps,
	}
}

func (c Config) withDefaults() Config {
	if c.PrimalityRounds <= 0 {
		c.PrimalityRounds = prime.DefaultRounds
	}
	if c.MaxExponentSteps == 0 {
		c.MaxExponentSteps = DefaultMaxExponentSteps
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	return c
}
