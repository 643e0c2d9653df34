package config

import (
	"fmt"
	"path/filepath"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/sink"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
)

// maxPathElement is the largest account or index below the hardened range.
const maxPathElement = 1<<31 - 1

// Validate checks config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	names := map[sink.Kind]string{
		sink.Mnemonic:   cfg.Output.Mnemonic,
		sink.PrivateKey: cfg.Output.PrivateKey,
		sink.Address:    cfg.Output.Address,
	}
	for _, kind := range sink.Kinds {
		if names[kind] == "" {
			return fmt.Errorf("%s file name must not be empty", kind)
		}
	}
	paths := cfg.OutputPaths()
	seen := make(map[string]sink.Kind, len(sink.Kinds))
	for _, kind := range sink.Kinds {
		p := filepath.Clean(paths.Get(kind))
		if other, ok := seen[p]; ok {
			return fmt.Errorf("%s and %s logs both point at %s", other, kind, p)
		}
		seen[p] = kind
	}

	if _, err := wallet.EntropyBits(cfg.Wallet.Words); err != nil {
		return fmt.Errorf("wallet.words: %w", err)
	}
	if cfg.Wallet.Account > maxPathElement {
		return fmt.Errorf("wallet.account must be in range [0, %d]", maxPathElement)
	}
	if cfg.Wallet.Index > maxPathElement {
		return fmt.Errorf("wallet.index must be in range [0, %d]", maxPathElement)
	}

	if cfg.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}

	return nil
}
