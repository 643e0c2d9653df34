package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// ErrInvalidMnemonic is returned for phrases that are not a 12- or 24-word
// English BIP-39 mnemonic with a valid checksum.
var ErrInvalidMnemonic = errors.New("invalid BIP-39 mnemonic")

// SeedFromMnemonic derives the 512-bit BIP-39 seed (PBKDF2-SHA512) for a
// mnemonic and optional passphrase. Whitespace is normalized first; the
// word count, wordlist membership and checksum are checked once, by bip39.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = NormalizeMnemonic(mnemonic)
	if n := len(strings.Fields(mnemonic)); n != Words12 && n != Words24 {
		return nil, fmt.Errorf("%w: %d words, want %d or %d", ErrInvalidMnemonic, n, Words12, Words24)
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
