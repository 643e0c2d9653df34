// Package types defines the primitive value types shared by the generator.
package types

import "encoding/hex"

// HashSize is the length of a keccak-256 digest in bytes.
const HashSize = 32

// Hash is a keccak-256 digest.
type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
