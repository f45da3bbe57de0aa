package rsademo

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

var (
	// ErrInvalidParameter indicates a bit width below the configured floor,
	// a non-prime factor, a negative plaintext or an unset key.
	ErrInvalidParameter = errors.New("rsademo: invalid parameter")

	// ErrCoprimeExponentExhausted indicates no exponent coprime to φ(n) was
	// found within Config.MaxExponentSteps candidates.
	ErrCoprimeExponentExhausted = errors.New("rsademo: coprime exponent search exhausted")

	// ErrInconsistentKey indicates a key pair that does not satisfy
	// e*d ≡ 1 (mod φ(n)) for the supplied factors.
	ErrInconsistentKey = errors.New("rsademo: inconsistent key pair")

	// ErrPrimeSearchExhausted indicates the prime walk hit its step cap.
	ErrPrimeSearchExhausted = prime.ErrSearchExhausted

	// ErrRandomSource indicates the entropy reader failed.
	ErrRandomSource = prime.ErrRandomSource

	// ErrInvalidModulus indicates a zero or negative modulus.
	ErrInvalidModulus = modarith.ErrInvalidModulus
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsademo.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error. Use %w in format to keep sentinels reachable
// through errors.Is.
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
