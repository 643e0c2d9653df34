package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Commands accepted as the first argument.
const (
	CommandGenerate = "generate"
	CommandVerify   = "verify"
	CommandInit     = "init"
	CommandVersion  = "version"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Command string
	Help    bool
	Version bool

	Config string

	// Output
	OutDir         string
	MnemonicFile   string
	PrivateKeyFile string
	AddressFile    string

	// Wallet
	Count   int
	Words   int
	Account int64
	Index   int64

	// Guard
	Guard    bool
	GuardDir string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags whose zero value is meaningful.
	SetCount   bool
	SetAccount bool
	SetIndex   bool
	SetGuard   bool
	SetLogJSON bool
}

// ParseFlags parses command-line arguments (without the program name).
// A leading non-flag argument selects the command; the default is generate.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{Command: CommandGenerate}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case CommandGenerate, CommandVerify, CommandInit, CommandVersion:
			f.Command = args[0]
			args = args[1:]
		default:
			return nil, fmt.Errorf("unknown command %q", args[0])
		}
	}

	fs := flag.NewFlagSet("evmgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Output
	fs.StringVar(&f.OutDir, "out-dir", "", "Directory holding the output logs")
	fs.StringVar(&f.MnemonicFile, "mnemonic-file", "", "Mnemonic log file name")
	fs.StringVar(&f.PrivateKeyFile, "pk-file", "", "Private key log file name")
	fs.StringVar(&f.AddressFile, "address-file", "", "Address log file name")

	// Wallet
	fs.IntVar(&f.Count, "count", 0, "Number of wallets to create")
	fs.IntVar(&f.Count, "n", 0, "Number of wallets (shorthand)")
	fs.IntVar(&f.Words, "words", 0, "Mnemonic length: 12 or 24")
	fs.Int64Var(&f.Account, "account", 0, "BIP-44 account")
	fs.Int64Var(&f.Index, "index", 0, "BIP-44 address index")

	// Guard
	fs.BoolVar(&f.Guard, "guard", false, "Refuse private keys seen in earlier guarded runs")
	fs.StringVar(&f.GuardDir, "guard-dir", "", "Collision guard database directory")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetCount = isFlagSet(fs, "count") || isFlagSet(fs, "n")
	f.SetAccount = isFlagSet(fs, "account")
	f.SetIndex = isFlagSet(fs, "index")
	f.SetGuard = isFlagSet(fs, "guard")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	f.Args = fs.Args()
	for _, arg := range f.Args {
		if strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("flag %q was not parsed (positional argument stopped parsing)", arg)
		}
	}
	if len(f.Args) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", f.Args[0])
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) error {
	// Output
	if f.OutDir != "" {
		cfg.Output.Dir = f.OutDir
	}
	if f.MnemonicFile != "" {
		cfg.Output.Mnemonic = f.MnemonicFile
	}
	if f.PrivateKeyFile != "" {
		cfg.Output.PrivateKey = f.PrivateKeyFile
	}
	if f.AddressFile != "" {
		cfg.Output.Address = f.AddressFile
	}

	// Wallet
	if f.SetCount {
		cfg.Count = f.Count
	}
	if f.Words != 0 {
		cfg.Wallet.Words = f.Words
	}
	if f.SetAccount {
		if f.Account < 0 || f.Account > maxPathElement {
			return fmt.Errorf("--account must be in range [0, %d]", maxPathElement)
		}
		cfg.Wallet.Account = uint32(f.Account)
	}
	if f.SetIndex {
		if f.Index < 0 || f.Index > maxPathElement {
			return fmt.Errorf("--index must be in range [0, %d]", maxPathElement)
		}
		cfg.Wallet.Index = uint32(f.Index)
	}

	// Guard
	if f.SetGuard {
		cfg.Guard.Enabled = f.Guard
	}
	if f.GuardDir != "" {
		cfg.Guard.Dir = f.GuardDir
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
	return nil
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	usage := `evmgen - bulk EVM wallet generator

Creates BIP-39 mnemonics, derives m/44'/60'/0'/0/0 for each, and appends the
mnemonic, private key and address to three aligned log files.

Usage:
  evmgen [options]            Generate wallets (asks for a count if none given)
  evmgen verify [options]     Re-derive every logged mnemonic and check the logs
  evmgen init [options]       Write a default evmgen.conf
  evmgen version              Show version information

Options:
  --help, -h        Show this help message
  --config, -c      Config file path (default: ./evmgen.conf)
  --count, -n       Number of wallets to create (default: ask on stdin)

Output Options:
  --out-dir         Directory holding the logs (default: .)
  --mnemonic-file   Mnemonic log (default: mnec.txt)
  --pk-file         Private key log (default: pk.txt)
  --address-file    Address log (default: addr.txt)

Wallet Options:
  --words           Mnemonic length: 12 (default) or 24
  --account         BIP-44 account (default: 0)
  --index           BIP-44 address index (default: 0)
                    The BIP-39 passphrase is read from EVMGEN_PASSPHRASE or
                    wallet.passphrase in the config file only.

Guard Options:
  --guard           Refuse private keys seen in earlier guarded runs
  --guard-dir       Guard database (default: <out-dir>/.evmgen-guard)

Logging Options:
  --log-level       Log level: debug, info, warn, error (default: info)
  --log-file        Log file path (default: stderr)
  --log-json        Output logs as JSON

Environment:
  Every config key has an EVMGEN_* counterpart, e.g. EVMGEN_COUNT,
  EVMGEN_OUTPUT_DIR, EVMGEN_WORDS, EVMGEN_GUARD, EVMGEN_LOG_LEVEL.
  A .env file in the working directory is read first; variables already
  set in the environment take precedence over it.

Examples:
  # Create 10 wallets in the current directory
  evmgen --count=10

  # 24-word mnemonics into ./vault with the collision guard on
  evmgen -n 100 --words=24 --out-dir=./vault --guard

  # Check an existing set of logs
  evmgen verify --out-dir=./vault

Note:
  The logs hold unencrypted secrets. They are created with mode 0600 and
  are never truncated. The output directory must already exist.
`
	fmt.Fprint(w, usage)
}

// Load builds the configuration for args with the following precedence:
// 1. Default values
// 2. Config file
// 3. EVMGEN_* environment variables (optionally from ./.env)
// 4. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()

	fileValues, err := LoadFile(flags.ConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, nil, err
	}

	if err := ApplyFlags(cfg, flags); err != nil {
		return nil, nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}

// ConfigPath returns the config file the flags point at.
func (f *Flags) ConfigPath() string {
	if f.Config != "" {
		return f.Config
	}
	return DefaultConfigFile
}

// OutputDirExists reports whether the configured output directory exists.
func OutputDirExists(cfg *Config) bool {
	info, err := os.Stat(cfg.Output.Dir)
	return err == nil && info.IsDir()
}
