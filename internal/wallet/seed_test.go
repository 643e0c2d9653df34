package wallet

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSeedFromMnemonic_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       string
	}{
		{
			name: "empty passphrase",
			want: "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
		{
			name:       "TREZOR",
			passphrase: "TREZOR",
			want:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := SeedFromMnemonic(abandonAbout, tt.passphrase)
			if err != nil {
				t.Fatalf("SeedFromMnemonic() error: %v", err)
			}
			if len(seed) != SeedSize {
				t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
			}
			if got := hex.EncodeToString(seed); got != tt.want {
				t.Errorf("seed = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSeedFromMnemonic_NormalizesWhitespace(t *testing.T) {
	want, err := SeedFromMnemonic(abandonAbout, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	messy := "  " + strings.ReplaceAll(abandonAbout, " ", " \t ") + "\n"
	got, err := SeedFromMnemonic(messy, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic(messy) error: %v", err)
	}
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Error("extra whitespace should not change the seed")
	}
}

func TestSeedFromMnemonic_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
	}{
		{"empty", ""},
		{"not words", "not valid words here"},
		{"bad checksum", badChecksumPhrase},
		{"unknown word", strings.Replace(abandonAbout, "about", "aboot", 1)},
		// Valid BIP-39, but only 12 and 24 words are ever written.
		{"eighteen words", strings.Repeat("abandon ", 17) + "agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := SeedFromMnemonic(tt.mnemonic, "")
			if !errors.Is(err, ErrInvalidMnemonic) {
				t.Fatalf("SeedFromMnemonic() error = %v, want ErrInvalidMnemonic", err)
			}
			if seed != nil {
				t.Error("no seed should be returned for an invalid mnemonic")
			}
		})
	}
}
