package crypto

import (
	"fmt"

	"github.com/Klingon-tech/evm-walletgen/pkg/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKeySize is the length of a serialized secp256k1 private key.
const PrivateKeySize = 32

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
// The scalar must be in [1, n-1].
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("private key out of range")
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PublicKeyUncompressed returns the 65-byte public key (0x04 || X || Y).
func (pk *PrivateKey) PublicKeyUncompressed() []byte {
	return pk.key.PubKey().SerializeUncompressed()
}

// Address returns the EVM address controlled by this key.
func (pk *PrivateKey) Address() types.Address {
	return AddressFromPubKey(pk.PublicKeyUncompressed())
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}
