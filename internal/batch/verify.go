package batch

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/evm-walletgen/internal/log"
	"github.com/Klingon-tech/evm-walletgen/internal/sink"
	"github.com/Klingon-tech/evm-walletgen/internal/wallet"
	"github.com/Klingon-tech/evm-walletgen/pkg/types"
)

// ErrMisaligned is returned when the three logs hold different line counts.
var ErrMisaligned = errors.New("log files have different line counts")

// Deriver re-derives a wallet from its mnemonic. *wallet.Generator satisfies it.
type Deriver interface {
	FromMnemonic(mnemonic string) (*wallet.Wallet, error)
}

// Mismatch describes one line whose artifacts do not belong together.
// It never carries the secret values themselves.
type Mismatch struct {
	Line   int
	Kind   sink.Kind
	Reason string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: %s: %s", m.Line, m.Kind, m.Reason)
}

// Report is the outcome of a log audit.
type Report struct {
	Counts     [3]int // lines per log, indexed by sink.Kind
	Checked    int
	Mismatches []Mismatch
}

// OK reports whether every line was consistent and the logs are aligned.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0 && r.Counts[0] == r.Counts[1] && r.Counts[1] == r.Counts[2]
}

// Verify re-derives every mnemonic line and checks the private key and
// address on the same line of the other two logs. Lines beyond the shortest
// log are not checked and yield ErrMisaligned. Inconsistent lines are listed
// in the report; they are not an error.
func Verify(paths sink.Paths, d Deriver) (Report, error) {
	var rep Report
	var logs [3][]string
	for _, kind := range sink.Kinds {
		lines, err := readLines(paths.Get(kind))
		if err != nil {
			return rep, fmt.Errorf("read %s log: %w", kind, err)
		}
		logs[kind] = lines
		rep.Counts[kind] = len(lines)
	}

	n := min(rep.Counts[0], rep.Counts[1], rep.Counts[2])
	for i := 0; i < n; i++ {
		rep.Checked++
		rep.Mismatches = append(rep.Mismatches,
			checkLine(i+1, logs[sink.Mnemonic][i], logs[sink.PrivateKey][i], logs[sink.Address][i], d)...)
	}

	for _, m := range rep.Mismatches {
		log.Batch.Warn().Int("line", m.Line).Str("kind", m.Kind.String()).Msg(m.Reason)
	}
	if rep.Counts[0] != rep.Counts[1] || rep.Counts[1] != rep.Counts[2] {
		return rep, fmt.Errorf("%w: mnemonic=%d private_key=%d address=%d",
			ErrMisaligned, rep.Counts[0], rep.Counts[1], rep.Counts[2])
	}
	return rep, nil
}

func checkLine(line int, mnemonic, key, addr string, d Deriver) []Mismatch {
	w, err := d.FromMnemonic(mnemonic)
	switch {
	case errors.Is(err, wallet.ErrInvalidMnemonic):
		return []Mismatch{{Line: line, Kind: sink.Mnemonic, Reason: "not a valid BIP-39 mnemonic"}}
	case err != nil:
		return []Mismatch{{Line: line, Kind: sink.Mnemonic, Reason: "derive: " + err.Error()}}
	}
	defer w.Zero()

	var out []Mismatch
	if normalizeHex(key) != normalizeHex(w.PrivateKeyHex()) {
		out = append(out, Mismatch{Line: line, Kind: sink.PrivateKey, Reason: "does not match the mnemonic"})
	}
	parsed, err := types.ParseAddress(strings.TrimSpace(addr))
	switch {
	case err != nil:
		out = append(out, Mismatch{Line: line, Kind: sink.Address, Reason: err.Error()})
	case parsed != w.Address:
		out = append(out, Mismatch{Line: line, Kind: sink.Address, Reason: "does not match the mnemonic"})
	}
	return out
}

func normalizeHex(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "0x")
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
