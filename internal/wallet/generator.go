package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/pkg/crypto"
	"github.com/Klingon-tech/evm-walletgen/pkg/types"
)

// ErrEntropy is returned when the entropy source fails or runs dry.
// Generation must stop; a substitute source is never used.
var ErrEntropy = errors.New("entropy source unavailable")

// Wallet is a freshly generated EVM account. It lives only until it has been
// persisted.
type Wallet struct {
	Mnemonic   string
	PrivateKey [crypto.PrivateKeySize]byte
	Address    types.Address
}

// PrivateKeyHex returns the key as "0x" + 64 lowercase hex characters.
func (w *Wallet) PrivateKeyHex() string {
	return "0x" + hex.EncodeToString(w.PrivateKey[:])
}

// AddressHex returns the EIP-55 checksummed address.
func (w *Wallet) AddressHex() string {
	return w.Address.Hex()
}

// Zero clears the secret fields.
func (w *Wallet) Zero() {
	clear(w.PrivateKey[:])
	w.Mnemonic = ""
}

// Generator creates wallets from an entropy source at a fixed derivation path.
type Generator struct {
	entropy    io.Reader
	words      int
	passphrase string
	account    uint32
	index      uint32
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy replaces crypto/rand.Reader as the entropy source.
// Intended for tests; production code keeps the default.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithWordCount selects 12- or 24-word mnemonics.
func WithWordCount(words int) Option {
	return func(g *Generator) { g.words = words }
}

// WithPassphrase sets the optional BIP-39 passphrase (default empty).
func WithPassphrase(passphrase string) Option {
	return func(g *Generator) { g.passphrase = passphrase }
}

// WithPath sets the account and address index of m/44'/60'/account'/0/index.
func WithPath(account, index uint32) Option {
	return func(g *Generator) {
		g.account = account
		g.index = index
	}
}

// New returns a Generator producing 12-word mnemonics at m/44'/60'/0'/0/0.
func New(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		words:   Words12,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the derivation path used by this generator.
func (g *Generator) Path() string {
	return Path(g.account, ChangeExternal, g.index)
}

// Generate draws fresh entropy and derives a new wallet from it.
func (g *Generator) Generate() (*Wallet, error) {
	bits, err := EntropyBits(g.words)
	if err != nil {
		return nil, err
	}
	entropy, err := ReadEntropy(g.entropy, bits)
	if err != nil {
		log.Wallet.Error().Err(err).Msg("entropy source failed")
		return nil, err
	}
	defer clear(entropy)

	mnemonic, err := MnemonicFromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	return g.FromMnemonic(mnemonic)
}

// FromMnemonic deterministically derives the wallet for mnemonic.
// The same mnemonic, passphrase and path always yield the same key and address.
// Phrases failing BIP-39 validation return ErrInvalidMnemonic.
func (g *Generator) FromMnemonic(mnemonic string) (*Wallet, error) {
	mnemonic = NormalizeMnemonic(mnemonic)
	seed, err := SeedFromMnemonic(mnemonic, g.passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	child, err := master.DeriveAddress(g.account, ChangeExternal, g.index)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", g.Path(), err)
	}

	priv, err := child.PrivateKey()
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	w := &Wallet{
		Mnemonic: mnemonic,
		Address:  priv.Address(),
	}
	copy(w.PrivateKey[:], priv.Serialize())
	return w, nil
}
