package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Klingon-tech/evm-walletgen/config"
	"github.com/Klingon-tech/evm-walletgen/internal/batch"
	"github.com/Klingon-tech/evm-walletgen/internal/guard"
	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/prompt"
	"github.com/Klingon-tech/evm-walletgen/internal/sink"
	"github.com/Klingon-tech/evm-walletgen/internal/storage"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
	"golang.org/x/term"
)

func cmdGenerate(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	// The sink never creates directories; fail before asking for a count.
	if !config.OutputDirExists(cfg) {
		return fmt.Errorf("output directory %s does not exist", cfg.Output.Dir)
	}
	paths, err := cfg.OutputPaths().Abs()
	if err != nil {
		return err
	}

	count := cfg.Count
	if count == 0 {
		if isTerminal(stdin) {
			fmt.Fprintln(stdout, "evmgen - bulk EVM wallet generator")
		}
		count, err = prompt.ReadCount(ctx, stdin, stdout)
		if errors.Is(err, prompt.ErrNoInput) && !isTerminal(stdin) {
			return fmt.Errorf("%w (use --count when stdin is not a terminal)", err)
		}
		if err != nil {
			return err
		}
	}

	gen := wallet.New(
		wallet.WithWordCount(cfg.Wallet.Words),
		wallet.WithPassphrase(cfg.Wallet.Passphrase),
		wallet.WithPath(cfg.Wallet.Account, cfg.Wallet.Index),
	)
	runner := &batch.Runner{Generator: gen, Writer: sink.New(paths)}

	if cfg.Guard.Enabled {
		db, err := storage.NewBadger(cfg.GuardDir())
		if err != nil {
			return fmt.Errorf("open collision guard: %w", err)
		}
		defer db.Close()
		g := guard.New(db)
		if n, err := g.Len(); err == nil {
			log.Guard.Info().Int("known_keys", n).Str("dir", cfg.GuardDir()).Msg("collision guard enabled")
		}
		runner.Guard = g
	}

	runLog := log.WithRun(time.Now().UTC().Format("20060102T150405"))
	runLog.Info().
		Int("count", count).
		Str("path", gen.Path()).
		Int("words", cfg.Wallet.Words).
		Msg("generating wallets")

	fmt.Fprintf(stdout, "Creating %d wallet(s) at %s...\n", count, gen.Path())
	sum, err := runner.Run(ctx, count, func(seq int, w *wallet.Wallet) {
		fmt.Fprintf(stdout, "Wallet %d created: %s\n", seq, w.AddressHex())
	})
	printSummary(stdout, sum, paths)

	if kind, ok := batch.FailedArtifact(err); ok {
		return fmt.Errorf("%w; the %s log may hold one line more than the others, run evmgen verify", err, kind)
	}
	return err
}

func printSummary(w io.Writer, sum batch.Summary, paths sink.Paths) {
	fmt.Fprintln(w)
	if sum.Written == sum.Requested {
		fmt.Fprintf(w, "Done. %d new wallet(s) created.\n", sum.Written)
	} else {
		fmt.Fprintf(w, "Stopped. %d of %d wallet(s) created.\n", sum.Written, sum.Requested)
	}
	fmt.Fprintf(w, "  Mnemonics:    %s\n", paths.Mnemonic)
	fmt.Fprintf(w, "  Private keys: %s\n", paths.PrivateKey)
	fmt.Fprintf(w, "  Addresses:    %s\n", paths.Address)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
