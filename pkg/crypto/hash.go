// Package crypto provides the hashing and secp256k1 primitives used to
// derive EVM accounts.
package crypto

import (
	"github.com/Klingon-tech/evm-walletgen/pkg/types"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Hash computes a BLAKE3-256 hash of the input data.
// Used for fingerprints that must not reveal the hashed secret.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// Keccak256 computes the legacy (pre-NIST padding) Keccak-256 hash used by
// the EVM.
func Keccak256(data ...[]byte) types.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out types.Hash
	h.Sum(out[:0])
	return out
}

// AddressFromPubKey derives an address from a 65-byte uncompressed public key.
// Address = Keccak256(pubkey[1:])[12:].
func AddressFromPubKey(pubKey []byte) types.Address {
	if len(pubKey) == 65 && pubKey[0] == 0x04 {
		pubKey = pubKey[1:]
	}
	h := Keccak256(pubKey)
	var addr types.Address
	copy(addr[:], h[types.HashSize-types.AddressSize:])
	return addr
}
