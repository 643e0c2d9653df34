// Package wallet generates BIP-39 mnemonics and derives EVM accounts from them.
package wallet

import (
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Supported mnemonic lengths and the entropy size behind each.
const (
	Words12 = 12
	Words24 = 24

	// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
	MnemonicEntropyBits = 256
)

// EntropyBits returns the entropy size for a mnemonic of the given length.
func EntropyBits(words int) (int, error) {
	switch words {
	case Words12:
		return 128, nil
	case Words24:
		return MnemonicEntropyBits, nil
	default:
		return 0, fmt.Errorf("unsupported mnemonic length %d (want %d or %d)", words, Words12, Words24)
	}
}

// ReadEntropy draws exactly bits/8 bytes from src. A short read is an error;
// callers must not fall back to another source.
func ReadEntropy(src io.Reader, bits int) ([]byte, error) {
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(src, entropy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return entropy, nil
}

// MnemonicFromEntropy encodes raw entropy as an English BIP-39 mnemonic.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NormalizeMnemonic collapses whitespace so a mnemonic read back from a log
// line compares equal to the generated one.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
