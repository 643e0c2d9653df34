// Package config handles evmgen configuration.
//
// Settings come from, in increasing precedence: built-in defaults, the
// evmgen.conf file, EVMGEN_* environment variables and command-line flags.
package config

import (
	"path/filepath"

	"github.com/Klingon-tech/evm-walletgen/internal/sink"
)

// DefaultConfigFile is looked up in the working directory when --config is
// not given. A missing file is not an error.
const DefaultConfigFile = "evmgen.conf"

// Config holds the settings of one evmgen invocation.
type Config struct {
	// Output logs
	Output OutputConfig

	// Derivation
	Wallet WalletConfig

	// Cross-run collision detection
	Guard GuardConfig

	// Logging
	Log LogConfig

	// Number of wallets; 0 means ask on stdin.
	Count int `conf:"count"`
}

// OutputConfig names the three append-only logs.
type OutputConfig struct {
	Dir        string `conf:"output.dir"`
	Mnemonic   string `conf:"output.mnemonic"`
	PrivateKey string `conf:"output.privatekey"`
	Address    string `conf:"output.address"`
}

// WalletConfig controls mnemonic size and the derivation path
// m/44'/60'/Account'/0/Index.
type WalletConfig struct {
	Words      int    `conf:"wallet.words"`
	Passphrase string `conf:"wallet.passphrase"` // BIP-39 passphrase; empty by default
	Account    uint32 `conf:"wallet.account"`
	Index      uint32 `conf:"wallet.index"`
}

// GuardConfig holds collision guard settings.
type GuardConfig struct {
	Enabled bool   `conf:"guard.enabled"`
	Dir     string `conf:"guard.dir"` // default: <output.dir>/.evmgen-guard
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// OutputPaths resolves the three log files against Output.Dir.
// Absolute file names are used as given.
func (c *Config) OutputPaths() sink.Paths {
	return sink.Paths{
		Mnemonic:   c.outputPath(c.Output.Mnemonic),
		PrivateKey: c.outputPath(c.Output.PrivateKey),
		Address:    c.outputPath(c.Output.Address),
	}
}

func (c *Config) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// GuardDir returns the collision index directory.
func (c *Config) GuardDir() string {
	if c.Guard.Dir != "" {
		return c.Guard.Dir
	}
	return filepath.Join(c.Output.Dir, ".evmgen-guard")
}
