package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "EVMGEN"

// DotEnvFile is loaded from the working directory before the environment is
// read. Variables already set in the environment win.
const DotEnvFile = ".env"

// LoadDotEnv loads variables from a dotenv file. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// envValues mirrors the file keys as EVMGEN_* variables. Values stay strings
// so both layers share setConfigValue; an unset variable is empty and skipped.
type envValues struct {
	OutputDir        string `envconfig:"OUTPUT_DIR"`
	OutputMnemonic   string `envconfig:"OUTPUT_MNEMONIC"`
	OutputPrivateKey string `envconfig:"OUTPUT_PRIVATEKEY"`
	OutputAddress    string `envconfig:"OUTPUT_ADDRESS"`

	Words      string `envconfig:"WORDS"`
	Passphrase string `envconfig:"PASSPHRASE"`
	Account    string `envconfig:"ACCOUNT"`
	Index      string `envconfig:"INDEX"`

	Guard    string `envconfig:"GUARD"`
	GuardDir string `envconfig:"GUARD_DIR"`

	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFile  string `envconfig:"LOG_FILE"`
	LogJSON  string `envconfig:"LOG_JSON"`

	Count string `envconfig:"COUNT"`
}

type envSetting struct {
	key   string // config file key
	name  string // variable name without prefix
	value string
}

func (e *envValues) settings() []envSetting {
	return []envSetting{
		{"output.dir", "OUTPUT_DIR", e.OutputDir},
		{"output.mnemonic", "OUTPUT_MNEMONIC", e.OutputMnemonic},
		{"output.privatekey", "OUTPUT_PRIVATEKEY", e.OutputPrivateKey},
		{"output.address", "OUTPUT_ADDRESS", e.OutputAddress},
		{"wallet.words", "WORDS", e.Words},
		{"wallet.passphrase", "PASSPHRASE", e.Passphrase},
		{"wallet.account", "ACCOUNT", e.Account},
		{"wallet.index", "INDEX", e.Index},
		{"guard.enabled", "GUARD", e.Guard},
		{"guard.dir", "GUARD_DIR", e.GuardDir},
		{"log.level", "LOG_LEVEL", e.LogLevel},
		{"log.file", "LOG_FILE", e.LogFile},
		{"log.json", "LOG_JSON", e.LogJSON},
		{"count", "COUNT", e.Count},
	}
}

// ApplyEnv applies EVMGEN_* environment variables to cfg.
func ApplyEnv(cfg *Config) error {
	var env envValues
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	for _, s := range env.settings() {
		if s.value == "" {
			continue
		}
		if err := setConfigValue(cfg, s.key, s.value); err != nil {
			return fmt.Errorf("%s_%s: %w", EnvPrefix, s.name, err)
		}
	}
	return nil
}
