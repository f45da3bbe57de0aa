package rsademo

import (
	"log/slog"
	"math/big"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
)

// PublicKey is the encryption half of a key pair. Accessors return copies;
// a PublicKey cannot be modified after construction.
type PublicKey struct {
	e *big.Int
	n *big.Int
}

// NewPublicKey builds a PublicKey from an exponent and modulus. The values
// are copied.
func NewPublicKey(e, n *big.Int) PublicKey {
	return PublicKey{e: new(big.Int).Set(e), n: new(big.Int).Set(n)}
}

// E returns the public exponent.
func (k PublicKey) E() *big.Int { return copyInt(k.e) }

// N returns the modulus.
func (k PublicKey) N() *big.Int { return copyInt(k.n) }

func (k PublicKey) valid() bool {
	return k.e != nil && k.n != nil && k.n.Sign() > 0
}

// PrivateKey holds only the decryption exponent. Decryption also needs the
// modulus, which lives in the paired PublicKey.
type PrivateKey struct {
	d *big.Int
}

// NewPrivateKey builds a PrivateKey from a decryption exponent. The value is
// copied.
func NewPrivateKey(d *big.Int) PrivateKey {
	return PrivateKey{d: new(big.Int).Set(d)}
}

// D returns the private exponent.
func (k PrivateKey) D() *big.Int { return copyInt(k.d) }

// String never prints the exponent.
func (k PrivateKey) String() string { return logging.Placeholder() }

// LogValue keeps the exponent out of structured logs.
func (k PrivateKey) LogValue() slog.Value { return slog.StringValue(logging.Placeholder()) }

// KeyPair owns one PublicKey and one PrivateKey produced together.
type KeyPair struct {
	public  PublicKey
	private PrivateKey
}

// NewKeyPair assembles a key pair from existing halves without checking
// them; see Validate.
func NewKeyPair(public PublicKey, private PrivateKey) *KeyPair {
	return &KeyPair{public: public, private: private}
}

// Public returns the public half.
func (kp *KeyPair) Public() PublicKey { return kp.public }

// Private returns the private half.
func (kp *KeyPair) Private() PrivateKey { return kp.private }

// Validate checks the pair against known factors: p and q must differ, n
// must equal p*q, gcd(e, φ(n)) must be 1 and e*d must be 1 modulo φ(n).
func (kp *KeyPair) Validate(p, q *big.Int) error {
	const op = "KeyPair.Validate"
	if kp == nil || !kp.public.valid() || kp.private.d == nil {
		return errorf(op, "%w: key pair is not initialized", ErrInvalidParameter)
	}
	if p == nil || q == nil {
		return errorf(op, "%w: missing factor", ErrInvalidParameter)
	}
	if p.Cmp(q) == 0 {
		return errorf(op, "%w: repeated prime factor", ErrInconsistentKey)
	}
	if new(big.Int).Mul(p, q).Cmp(kp.public.n) != 0 {
		return errorf(op, "%w: modulus is not p*q", ErrInconsistentKey)
	}
	phi := totient(kp.public.n, p, q)
	if phi.Sign() <= 0 {
		return errorf(op, "%w: factors must exceed 1", ErrInvalidParameter)
	}
	if modarith.GCD(kp.public.e, phi).Cmp(bigOne) != 0 {
		return errorf(op, "%w: e shares a factor with φ(n)", ErrInconsistentKey)
	}
	ed := new(big.Int).Mul(kp.public.e, kp.private.d)
	if ed.Mod(ed, phi).Cmp(bigOne) != 0 {
		return errorf(op, "%w: e*d is not 1 modulo φ(n)", ErrInconsistentKey)
	}
	return nil
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
