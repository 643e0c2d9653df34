// evmgen creates EVM wallets in bulk.
//
// Usage:
//
//	evmgen [--count=N]   Generate wallets into mnec.txt, pk.txt and addr.txt
//	evmgen verify        Re-derive every logged mnemonic and check the logs
//	evmgen init          Write a default evmgen.conf
//	evmgen --help        Show help
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Klingon-tech/evm-walletgen/config"
	"github.com/Klingon-tech/evm-walletgen/internal/log"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes one evmgen invocation and returns the process exit code.
// Progress and results go to stdout; errors and logs go to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	flags, err := config.ParseFlags(args)
	if err != nil {
		return fail(err)
	}
	if flags.Help {
		config.PrintUsage(stdout)
		return exitOK
	}
	if flags.Version || flags.Command == config.CommandVersion {
		fmt.Fprintf(stdout, "evmgen version %s\n", version)
		return exitOK
	}
	if flags.Command == config.CommandInit {
		if err := config.WriteDefaultConfig(flags.ConfigPath()); err != nil {
			return fail(fmt.Errorf("writing config: %w", err))
		}
		fmt.Fprintf(stdout, "Wrote %s\n", flags.ConfigPath())
		return exitOK
	}

	cfg, _, err := config.Load(args)
	if err != nil {
		return fail(err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fail(fmt.Errorf("init logging: %w", err))
	}

	switch flags.Command {
	case config.CommandVerify:
		err = cmdVerify(cfg, stdout)
	default:
		err = cmdGenerate(ctx, cfg, stdin, stdout)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Interrupted")
		return exitInterrupted
	default:
		return fail(err)
	}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitError
}
