// Package guard rejects private keys that an earlier run already issued.
//
// Keys are indexed by their BLAKE3 fingerprint so the index itself never
// holds a usable secret. At realistic batch sizes a hit means the entropy
// source is broken, so callers treat ErrCollision as fatal.
package guard

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/storage"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
	"github.com/Klingon-tech/evm-walletgen/pkg/crypto"
	"github.com/Klingon-tech/evm-walletgen/pkg/types"
)

// ErrCollision is returned when a wallet's private key is already indexed.
var ErrCollision = errors.New("private key already issued")

var fingerprintPrefix = []byte("fp/")

// Guard tracks fingerprints of issued private keys.
type Guard struct {
	db storage.DB
}

// New creates a guard over db. The guard does not own db.
func New(db storage.DB) *Guard {
	return &Guard{db: storage.NewPrefixDB(db, fingerprintPrefix)}
}

// Fingerprint returns the index key for w.
func Fingerprint(w *wallet.Wallet) types.Hash {
	return crypto.Hash(w.PrivateKey[:])
}

// Check returns ErrCollision if w's key was recorded before.
func (g *Guard) Check(w *wallet.Wallet) error {
	fp := Fingerprint(w)
	seen, err := g.db.Has(fp[:])
	if err != nil {
		return fmt.Errorf("guard lookup: %w", err)
	}
	if !seen {
		return nil
	}

	prev, err := g.db.Get(fp[:])
	if err == nil && len(prev) == types.AddressSize {
		var addr types.Address
		copy(addr[:], prev)
		log.Guard.Error().Str("address", addr.Hex()).Msg("private key collision")
		return fmt.Errorf("%w: address %s", ErrCollision, addr.Hex())
	}
	return ErrCollision
}

// Record indexes w's key. Call only after the wallet has been persisted.
func (g *Guard) Record(w *wallet.Wallet) error {
	fp := Fingerprint(w)
	if err := g.db.Put(fp[:], w.Address.Bytes()); err != nil {
		return fmt.Errorf("guard record: %w", err)
	}
	return nil
}

// Len returns the number of recorded keys.
func (g *Guard) Len() (int, error) {
	n := 0
	err := g.db.ForEach(nil, func(_, _ []byte) error {
		n++
		return nil
	})
	return n, err
}
