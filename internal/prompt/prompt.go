// Package prompt asks the operator how many wallets to generate.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Question is printed before every read.
const Question = "How many wallets do you want to create? "

// Reason classifies a count answer.
type Reason int

const (
	OK Reason = iota
	Empty
	NotANumber
	NotPositive
)

// Message is the hint shown to the operator before asking again.
func (r Reason) Message() string {
	switch r {
	case OK:
		return ""
	case Empty:
		return "Please enter a number."
	case NotANumber:
		return "Invalid input. Enter a whole number."
	case NotPositive:
		return "The number must be greater than zero."
	default:
		return "Invalid input."
	}
}

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case Empty:
		return "empty"
	case NotANumber:
		return "not a number"
	case NotPositive:
		return "not positive"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Result is the outcome of validating one answer.
type Result struct {
	Count  int
	Reason Reason
}

// Valid reports whether the answer can be used.
func (r Result) Valid() bool {
	return r.Reason == OK
}

// ErrNoInput is returned when input ends before a valid count was read.
var ErrNoInput = errors.New("input closed before a valid count was entered")

// ParseCount validates a single answer. Surrounding whitespace is ignored.
func ParseCount(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{Reason: Empty}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Result{Reason: NotANumber}
	}
	if n <= 0 {
		return Result{Reason: NotPositive}
	}
	return Result{Count: n, Reason: OK}
}

// ReadCount asks Question on out and reads answers from in until one is
// valid. Invalid answers are reported on out and asked again; they are never
// an error. It fails only when in is exhausted or ctx is cancelled.
//
// Reads happen on a separate goroutine so cancellation is not held up by a
// blocking in. After ReadCount returns, that goroutine stays blocked in Read
// until in yields more data or is closed, and any input it buffered past the
// accepted line is discarded. Do not reuse in afterwards.
func ReadCount(ctx context.Context, in io.Reader, out io.Writer) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, Question)

		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return 0, ctx.Err()
		case err := <-done:
			fmt.Fprintln(out)
			if err != nil {
				return 0, fmt.Errorf("read count: %w", err)
			}
			return 0, ErrNoInput
		case line := <-lines:
			res := ParseCount(line)
			if res.Valid() {
				return res.Count, nil
			}
			fmt.Fprintln(out, res.Reason.Message())
		}
	}
}
