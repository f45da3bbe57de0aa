package rsademo

import (
	"math/big"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
)

// EncryptNumber returns value^e mod n.
//
// value must be below n. Larger values are not rejected: they wrap modulo n
// and decrypt to value mod n.
func EncryptNumber(value *big.Int, pub PublicKey) (*big.Int, error) {
	const op = "EncryptNumber"
	if !pub.valid() {
		return nil, errorf(op, "%w: public key is not initialized", ErrInvalidParameter)
	}
	if value.Sign() < 0 {
		return nil, errorf(op, "%w: plaintext must be non-negative", ErrInvalidParameter)
	}
	c, err := modarith.ModPow(value, pub.e, pub.n)
	return c, wrap(op, err)
}

// DecryptNumber returns ciphertext^d mod n, taking d from the private half
// and n from the public half of kp.
func DecryptNumber(ciphertext *big.Int, kp *KeyPair) (*big.Int, error) {
	const op = "DecryptNumber"
	if kp == nil || !kp.public.valid() || kp.private.d == nil {
		return nil, errorf(op, "%w: key pair is not initialized", ErrInvalidParameter)
	}
	m, err := modarith.ModPow(ciphertext, kp.private.d, kp.public.n)
	return m, wrap(op, err)
}
