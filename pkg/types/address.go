package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address represents a 160-bit EVM account address
// (the last 20 bytes of keccak-256 over the uncompressed public key).
type Address [AddressSize]byte

// String returns the EIP-55 checksummed form, same as Hex.
func (a Address) String() string {
	return a.Hex()
}

// Hex returns the "0x"-prefixed address in EIP-55 mixed-case checksum form.
// Letter i is upper-cased when nibble i of keccak-256(lowercase hex) is >= 8.
func (a Address) Hex() string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := make([]byte, 2+len(lower))
	copy(out, "0x")
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c -= 'a' - 'A'
			}
		}
		out[2+i] = c
	}
	return string(out)
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// ParseAddress parses a 40-char hex address with an optional "0x" prefix.
// All-lowercase and all-uppercase inputs are accepted as-is; mixed-case
// input must carry a valid EIP-55 checksum.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, fmt.Errorf("empty address")
	}
	body := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	a, err := HexToAddress(body)
	if err != nil {
		return Address{}, err
	}
	if isMixedCase(body) && a.Hex()[2:] != body {
		return Address{}, fmt.Errorf("invalid address checksum: %s", s)
	}
	return a, nil
}

// HexToAddress converts a raw hex string to an Address, ignoring case.
// Returns an error if the string is not exactly 40 hex characters.
// For user-facing input that may have a prefix, use ParseAddress instead.
func HexToAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
