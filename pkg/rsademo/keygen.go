package rsademo

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

const (
	// SmallExponentSeed starts the exponent search for widths below
	// SmallWidthThreshold.
	SmallExponentSeed = 2

	// ConventionalExponentSeed starts the exponent search otherwise.
	ConventionalExponentSeed = 65537

	// SmallWidthThreshold is the bit width at which the search switches to
	// ConventionalExponentSeed.
	SmallWidthThreshold = 24
)

var bigOne = big.NewInt(1)

// KeyGenerator derives key pairs from freshly drawn primes. It holds only
// its configuration and entropy reader, so concurrent Generate calls are
// safe whenever the reader is.
type KeyGenerator struct {
	cfg    Config
	primes *prime.Source
	logger logging.Logger
}

// NewKeyGenerator returns a generator for cfg. Zero fields take their
// defaults; see Config.
func NewKeyGenerator(cfg Config) *KeyGenerator {
	cfg = cfg.withDefaults()
	return &KeyGenerator{
		cfg: cfg,
		primes: prime.New(cfg.Rand,
			prime.WithRounds(cfg.PrimalityRounds),
			prime.WithMaxSteps(cfg.MaxPrimeSteps),
		),
		logger: cfg.Logger.With("component", "rsademo.keygen"),
	}
}

// Generate draws two probable primes of about approxBits bits each and
// derives a key pair from them. Widths below Config.MinBits fail with
// ErrInvalidParameter.
//
// The primes are drawn independently and are not required to differ.
func (g *KeyGenerator) Generate(ctx context.Context, approxBits uint64) (*KeyPair, error) {
	const op = "Generate"
	if approxBits < g.cfg.MinBits {
		return nil, errorf(op, "%w: bit width %d is below the minimum of %d", ErrInvalidParameter, approxBits, g.cfg.MinBits)
	}

	g.logger.Debug(ctx, "drawing primes", "bits", approxBits)
	p, err := g.primes.GenerateProbablePrime(approxBits)
	if err != nil {
		return nil, errorf(op, "draw p: %w", err)
	}
	q, err := g.primes.GenerateProbablePrime(approxBits)
	if err != nil {
		return nil, errorf(op, "draw q: %w", err)
	}
	if p.Cmp(q) == 0 {
		g.logger.Warn(ctx, "p equals q; totient formula does not hold for this key", "bits", approxBits)
	}

	return g.derive(ctx, op, p, q, approxBits)
}

// FromPrimes derives a key pair from caller-chosen primes, running the same
// totient, exponent and inverse steps as Generate. approxBits selects the
// exponent seed. Values that fail the primality test are rejected with
// ErrInvalidParameter.
func (g *KeyGenerator) FromPrimes(ctx context.Context, p, q *big.Int, approxBits uint64) (*KeyPair, error) {
	const op = "FromPrimes"
	for _, f := range []*big.Int{p, q} {
		if f == nil || !f.ProbablyPrime(g.cfg.PrimalityRounds) {
			return nil, errorf(op, "%w: factor is not a probable prime", ErrInvalidParameter)
		}
	}
	return g.derive(ctx, op, new(big.Int).Set(p), new(big.Int).Set(q), approxBits)
}

func (g *KeyGenerator) derive(ctx context.Context, op string, p, q *big.Int, approxBits uint64) (*KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	phi := totient(n, p, q)

	e, tried, err := coprimeExponent(phi, exponentSeed(approxBits), g.cfg.MaxExponentSteps)
	if err != nil {
		return nil, wrap(op, err)
	}
	d := modarith.ModularInverse(e, phi)

	g.logger.Debug(ctx, "key pair derived",
		"modulus_bits", n.BitLen(),
		"e", e.String(),
		"exponent_candidates", tried,
		logging.Redacted("d"),
	)

	return &KeyPair{
		public:  PublicKey{e: e, n: n},
		private: PrivateKey{d: d},
	}, nil
}

// totient returns n - p - q + 1, which equals (p-1)(q-1) for n = p*q.
func totient(n, p, q *big.Int) *big.Int {
	phi := new(big.Int).Sub(n, p)
	phi.Sub(phi, q)
	return phi.Add(phi, bigOne)
}

func exponentSeed(approxBits uint64) int64 {
	if approxBits < SmallWidthThreshold {
		return SmallExponentSeed
	}
	return ConventionalExponentSeed
}

// coprimeExponent returns the first e >= seed with gcd(e, phi) = 1 and the
// number of candidates examined.
func coprimeExponent(phi *big.Int, seed int64, maxSteps uint64) (*big.Int, uint64, error) {
	e := big.NewInt(seed)
	for step := uint64(1); step <= maxSteps; step++ {
		if modarith.GCD(e, phi).Cmp(bigOne) == 0 {
			return e, step, nil
		}
		e.Add(e, bigOne)
	}
	return nil, maxSteps, fmt.Errorf("%w: no e in [%d, %s) is coprime to φ(n)", ErrCoprimeExponentExhausted, seed, e)
}
