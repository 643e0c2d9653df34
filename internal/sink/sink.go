package sink

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
)

// Kind identifies one of the three artifact logs.
type Kind int

const (
	Mnemonic Kind = iota
	PrivateKey
	Address
)

// Kinds lists the artifacts in the order they are written for each wallet.
var Kinds = []Kind{Mnemonic, PrivateKey, Address}

func (k Kind) String() string {
	switch k {
	case Mnemonic:
		return "mnemonic"
	case PrivateKey:
		return "private key"
	case Address:
		return "address"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Paths holds the destination file of each artifact log.
type Paths struct {
	Mnemonic   string
	PrivateKey string
	Address    string
}

// Get returns the path configured for kind.
func (p Paths) Get(kind Kind) string {
	switch kind {
	case Mnemonic:
		return p.Mnemonic
	case PrivateKey:
		return p.PrivateKey
	case Address:
		return p.Address
	}
	return ""
}

// Abs resolves every path against the working directory.
func (p Paths) Abs() (Paths, error) {
	var out Paths
	var err error
	if out.Mnemonic, err = filepath.Abs(p.Mnemonic); err != nil {
		return Paths{}, err
	}
	if out.PrivateKey, err = filepath.Abs(p.PrivateKey); err != nil {
		return Paths{}, err
	}
	if out.Address, err = filepath.Abs(p.Address); err != nil {
		return Paths{}, err
	}
	return out, nil
}

// WriteError reports which artifact could not be persisted.
type WriteError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s log %s: %v", e.Kind, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Sink appends wallet artifacts to their logs. It is safe for concurrent use;
// the three lines of one wallet are never interleaved with another's.
type Sink struct {
	paths Paths
	mu    sync.Mutex
}

// New creates a sink writing to paths.
func New(paths Paths) *Sink {
	return &Sink{paths: paths}
}

// Paths returns the configured destinations.
func (s *Sink) Paths() Paths {
	return s.paths
}

// Append writes a single record to the log of the given kind.
func (s *Sink) Append(kind Kind, record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(kind, record)
}

func (s *Sink) append(kind Kind, record string) error {
	path := s.paths.Get(kind)
	if err := Append(path, record); err != nil {
		return &WriteError{Kind: kind, Path: path, Err: err}
	}
	log.Sink.Debug().Str("kind", kind.String()).Str("path", path).Msg("record appended")
	return nil
}

// WriteWallet appends the mnemonic, private key and address of w, in that
// order. It stops at the first failure.
func (s *Sink) WriteWallet(w *wallet.Wallet) error {
	records := [...]string{
		Mnemonic:   w.Mnemonic,
		PrivateKey: w.PrivateKeyHex(),
		Address:    w.AddressHex(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range Kinds {
		if err := s.append(kind, records[kind]); err != nil {
			return err
		}
	}
	return nil
}
