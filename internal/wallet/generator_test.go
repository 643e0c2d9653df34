package wallet

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// BIP-39 vector for entropy 0x7f x 16 and its m/44'/60'/0'/0/0 account.
const (
	legalWinner        = "legal winner thank year wave sausage worth useful legal winner thank yellow"
	legalWinnerKey     = "0x33fa40f84e854b941c2b0436dd4a256e1df1cb41b9c1c0ccc8446408c19b8bf9"
	legalWinnerAddress = "0x58A57ed9d8d624cBD12e2C467D34787555bB1b25"
)

// badChecksumPhrase uses only wordlist words but fails the BIP-39 checksum.
const badChecksumPhrase = "legal winner thank year wave sausage worry fiction envelope diet crunch arena"

func mustFromMnemonic(t *testing.T, g *Generator, mnemonic string) *Wallet {
	t.Helper()
	w, err := g.FromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}
	return w
}

func mustGenerate(t *testing.T, g *Generator) *Wallet {
	t.Helper()
	w, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return w
}

// errReader fails every read, standing in for an unavailable entropy device.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("device not configured")
}

func TestFromMnemonic_KnownVector(t *testing.T) {
	g := New()
	w, err := g.FromMnemonic(legalWinner)
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}

	if got := w.AddressHex(); got != legalWinnerAddress {
		t.Errorf("address = %s, want %s", got, legalWinnerAddress)
	}
	if got := w.PrivateKeyHex(); got != legalWinnerKey {
		t.Errorf("private key = %s, want %s", got, legalWinnerKey)
	}
	if w.Mnemonic != legalWinner {
		t.Errorf("mnemonic = %q, want %q", w.Mnemonic, legalWinner)
	}
}

func TestFromMnemonic_Deterministic(t *testing.T) {
	g := New()
	w1, err := g.FromMnemonic(legalWinner)
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}
	w2, err := g.FromMnemonic(legalWinner)
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}

	if w1.PrivateKey != w2.PrivateKey {
		t.Error("same mnemonic should produce same private key")
	}
	if w1.Address != w2.Address {
		t.Error("same mnemonic should produce same address")
	}
}

func TestFromMnemonic_PathAndPassphraseChangeResult(t *testing.T) {
	base := mustFromMnemonic(t, New(), legalWinner)
	other := mustFromMnemonic(t, New(WithPath(0, 1)), legalWinner)
	salted := mustFromMnemonic(t, New(WithPassphrase("TREZOR")), legalWinner)

	if base.Address == other.Address {
		t.Error("different address index should give a different address")
	}
	if base.Address == salted.Address {
		t.Error("passphrase should change the derived address")
	}
}

func TestFromMnemonic_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
	}{
		{"empty", ""},
		{"bad checksum", badChecksumPhrase},
		{"not words", "not a valid mnemonic phrase at all"},
		{"fifteen words", strings.Repeat("abandon ", 14) + "able"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New().FromMnemonic(tt.mnemonic)
			if !errors.Is(err, ErrInvalidMnemonic) {
				t.Fatalf("FromMnemonic() error = %v, want ErrInvalidMnemonic", err)
			}
			if w != nil {
				t.Error("no wallet should be returned for an invalid mnemonic")
			}
		})
	}
}

func TestFromMnemonic_NormalizesWhitespace(t *testing.T) {
	w := mustFromMnemonic(t, New(), "  "+strings.ReplaceAll(legalWinner, " ", "\t")+"\n")
	if w.Mnemonic != legalWinner {
		t.Errorf("mnemonic = %q, want %q", w.Mnemonic, legalWinner)
	}
	if w.AddressHex() != legalWinnerAddress {
		t.Errorf("address = %s, want %s", w.AddressHex(), legalWinnerAddress)
	}
}

func TestGenerate_Format(t *testing.T) {
	for _, words := range []int{Words12, Words24} {
		g := New(WithWordCount(words))
		w, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}

		fields := strings.Fields(w.Mnemonic)
		if len(fields) != words {
			t.Fatalf("word count = %d, want %d", len(fields), words)
		}
		for _, word := range fields {
			if _, ok := bip39.GetWordIndex(word); !ok {
				t.Errorf("word %q not in BIP-39 wordlist", word)
			}
		}
		if !bip39.IsMnemonicValid(w.Mnemonic) {
			t.Error("generated mnemonic should pass the BIP-39 checksum")
		}

		if !strings.HasPrefix(w.PrivateKeyHex(), "0x") || len(w.PrivateKeyHex()) != 66 {
			t.Errorf("private key hex = %q, want 0x + 64 chars", w.PrivateKeyHex())
		}
		if len(w.AddressHex()) != 42 {
			t.Errorf("address hex = %q, want 42 chars", w.AddressHex())
		}
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	g := New()
	w, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	again, err := g.FromMnemonic(w.Mnemonic)
	if err != nil {
		t.Fatalf("FromMnemonic() error: %v", err)
	}
	if again.PrivateKey != w.PrivateKey || again.Address != w.Address {
		t.Error("re-deriving from the generated mnemonic should reproduce the wallet")
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := New()
	w1 := mustGenerate(t, g)
	w2 := mustGenerate(t, g)
	if w1.Mnemonic == w2.Mnemonic {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestGenerate_FixedEntropy(t *testing.T) {
	g := New(WithEntropy(bytes.NewReader(bytes.Repeat([]byte{0x7f}, 16))))
	w, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if w.Mnemonic != legalWinner {
		t.Errorf("mnemonic = %q, want %q", w.Mnemonic, legalWinner)
	}
	if w.AddressHex() != legalWinnerAddress {
		t.Errorf("address = %s, want %s", w.AddressHex(), legalWinnerAddress)
	}
}

func TestGenerate_EntropyFailure(t *testing.T) {
	tests := []struct {
		name string
		src  io.Reader
	}{
		{"read error", errReader{}},
		{"exhausted", bytes.NewReader(make([]byte, 8))},
		{"empty", bytes.NewReader(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(WithEntropy(tt.src)).Generate()
			if !errors.Is(err, ErrEntropy) {
				t.Fatalf("Generate() error = %v, want ErrEntropy", err)
			}
			if w != nil {
				t.Error("no wallet should be returned on entropy failure")
			}
		})
	}
}

func TestGenerate_UnsupportedWordCount(t *testing.T) {
	if _, err := New(WithWordCount(18)).Generate(); err == nil {
		t.Error("expected error for unsupported word count")
	}
}

func TestGenerate_MatchesGoEthereum(t *testing.T) {
	g := New(WithWordCount(Words24))
	for i := 0; i < 5; i++ {
		w, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		key, err := gethcrypto.ToECDSA(w.PrivateKey[:])
		if err != nil {
			t.Fatalf("ToECDSA() error: %v", err)
		}
		want := gethcrypto.PubkeyToAddress(key.PublicKey).Hex()
		if w.AddressHex() != want {
			t.Errorf("address = %s, go-ethereum derives %s", w.AddressHex(), want)
		}
	}
}

func TestWallet_Zero(t *testing.T) {
	w := mustFromMnemonic(t, New(), legalWinner)
	w.Zero()
	if w.PrivateKey != [32]byte{} || w.Mnemonic != "" {
		t.Error("Zero() should clear key and mnemonic")
	}
}

func TestGenerator_Path(t *testing.T) {
	if got := New().Path(); got != "m/44'/60'/0'/0/0" {
		t.Errorf("Path() = %s", got)
	}
	if got := New(WithPath(1, 5)).Path(); got != "m/44'/60'/1'/0/5" {
		t.Errorf("Path() = %s", got)
	}
}
