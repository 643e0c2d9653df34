package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields no values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key. The environment layer uses the
// same keys.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Output
	case "output.dir":
		cfg.Output.Dir = value
	case "output.mnemonic":
		cfg.Output.Mnemonic = value
	case "output.privatekey":
		cfg.Output.PrivateKey = value
	case "output.address":
		cfg.Output.Address = value

	// Wallet
	case "wallet.words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Words = n
	case "wallet.passphrase":
		cfg.Wallet.Passphrase = value
	case "wallet.account":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Wallet.Account = uint32(n)
	case "wallet.index":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Wallet.Index = uint32(n)

	// Guard
	case "guard.enabled", "guard":
		cfg.Guard.Enabled = parseBool(value)
	case "guard.dir":
		cfg.Guard.Dir = value

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	case "count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Count = n

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
// An existing file is never overwritten.
func WriteDefaultConfig(path string) error {
	content := `# evmgen configuration
#
# Precedence: defaults < this file < EVMGEN_* environment < flags.

# ============================================================================
# Output logs (append-only, one record per line)
# ============================================================================

output.dir = .
output.mnemonic = mnec.txt
output.privatekey = pk.txt
output.address = addr.txt

# ============================================================================
# Derivation: m/44'/60'/<account>'/0/<index>
# ============================================================================

# Mnemonic length: 12 or 24
wallet.words = 12
wallet.account = 0
wallet.index = 0

# BIP-39 passphrase. Prefer EVMGEN_PASSPHRASE over storing it here.
# wallet.passphrase =

# ============================================================================
# Collision guard
# ============================================================================

# Refuse to write a private key seen in any earlier guarded run.
guard.enabled = false
# guard.dir = ./.evmgen-guard

# ============================================================================
# Logging (stderr unless log.file is set)
# ============================================================================

log.level = info
# log.file =
log.json = false

# Wallets per run. 0 asks interactively.
# count = 0
`
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
