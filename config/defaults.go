package config

import "github.com/Klingon-tech/evm-walletgen/internal/wallet"

// Default returns the default configuration: 12-word mnemonics at
// m/44'/60'/0'/0/0 written to mnec.txt, pk.txt and addr.txt in the working
// directory.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:        ".",
			Mnemonic:   "mnec.txt",
			PrivateKey: "pk.txt",
			Address:    "addr.txt",
		},
		Wallet: WalletConfig{
			Words: wallet.Words12,
		},
		Guard: GuardConfig{
			Enabled: false,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
