package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/evm-walletgen/config"
	"github.com/Klingon-tech/evm-walletgen/internal/batch"
	"github.com/Klingon-tech/evm-walletgen/internal/sink"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
)

func cmdVerify(cfg *config.Config, stdout io.Writer) error {
	paths, err := cfg.OutputPaths().Abs()
	if err != nil {
		return err
	}
	gen := wallet.New(
		wallet.WithPassphrase(cfg.Wallet.Passphrase),
		wallet.WithPath(cfg.Wallet.Account, cfg.Wallet.Index),
	)

	rep, err := batch.Verify(paths, gen)
	if err != nil && !errors.Is(err, batch.ErrMisaligned) {
		return err
	}

	for _, kind := range sink.Kinds {
		fmt.Fprintf(stdout, "  %-12s %6d lines  %s\n", kind, rep.Counts[kind], paths.Get(kind))
	}
	for _, m := range rep.Mismatches {
		fmt.Fprintf(stdout, "  %s\n", m)
	}
	fmt.Fprintf(stdout, "Checked %d line(s), %d mismatch(es).\n", rep.Checked, len(rep.Mismatches))

	if err != nil {
		return err
	}
	if !rep.OK() {
		return fmt.Errorf("logs are inconsistent")
	}
	return nil
}
