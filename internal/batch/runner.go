// Package batch drives bulk wallet generation and audits the resulting logs.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/sink"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
)

// Generator produces wallets. *wallet.Generator satisfies it.
type Generator interface {
	Generate() (*wallet.Wallet, error)
}

// Writer persists a wallet's three artifacts. *sink.Sink satisfies it.
type Writer interface {
	WriteWallet(w *wallet.Wallet) error
}

// Guard rejects previously issued keys. *guard.Guard satisfies it.
type Guard interface {
	Check(w *wallet.Wallet) error
	Record(w *wallet.Wallet) error
}

// Progress is called after each wallet has been fully persisted.
// seq is 1-based. The callback must not retain w.
type Progress func(seq int, w *wallet.Wallet)

// Summary describes a finished or aborted run.
type Summary struct {
	Requested int
	Written   int
}

// Runner generates wallets and hands them to a Writer one at a time.
type Runner struct {
	Generator Generator
	Writer    Writer
	Guard     Guard // optional
}

// Run generates n wallets. The context is checked between wallets only, so
// a cancellation never leaves a wallet half written. Run stops at the first
// error; Summary.Written counts wallets whose three artifacts were all
// appended.
func (r *Runner) Run(ctx context.Context, n int, progress Progress) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("wallet count must be positive, got %d", n)
	}
	defer log.Benchmark("batch")()

	sum := Summary{Requested: n}
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			log.Batch.Warn().Int("written", sum.Written).Int("requested", n).Msg("run interrupted")
			return sum, err
		}
		if err := r.one(i, progress); err != nil {
			log.Batch.Error().Err(err).Int("seq", i).Msg("run stopped")
			return sum, err
		}
		sum.Written++
	}
	log.Batch.Info().Int("written", sum.Written).Msg("run complete")
	return sum, nil
}

func (r *Runner) one(seq int, progress Progress) error {
	w, err := r.Generator.Generate()
	if err != nil {
		return fmt.Errorf("wallet %d: %w", seq, err)
	}
	defer w.Zero()

	if r.Guard != nil {
		if err := r.Guard.Check(w); err != nil {
			return fmt.Errorf("wallet %d: %w", seq, err)
		}
	}
	if err := r.Writer.WriteWallet(w); err != nil {
		return fmt.Errorf("wallet %d: %w", seq, err)
	}
	if r.Guard != nil {
		if err := r.Guard.Record(w); err != nil {
			return fmt.Errorf("wallet %d: %w", seq, err)
		}
	}

	log.Batch.Debug().Int("seq", seq).Str("address", w.AddressHex()).Msg("wallet written")
	if progress != nil {
		progress(seq, w)
	}
	return nil
}

// FailedArtifact returns the artifact named by a sink write failure in err.
func FailedArtifact(err error) (sink.Kind, bool) {
	var werr *sink.WriteError
	if errors.As(err, &werr) {
		return werr.Kind, true
	}
	return 0, false
}
