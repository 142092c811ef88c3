package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StaticPrompter answers every question with Answer, for non-interactive runs.
type StaticPrompter struct {
	Answer bool
}

func (p StaticPrompter) Confirm(context.Context, string) (bool, error) {
	return p.Answer, nil
}

// TerminalPrompter asks on out and reads one line from in. Only "y" and "yes" count
// as agreement. End of input or a cancelled context yields ErrCancelled.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

type lineResult struct {
	line string
	err  error
}

func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "\n%s (y/n): ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	lines := make(chan lineResult, 1)
	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		lines <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	case res := <-lines:
		if res.err != nil && res.line == "" {
			if errors.Is(res.err, io.EOF) {
				return false, ErrCancelled
			}
			return false, fmt.Errorf("failed to read answer: %w", res.err)
		}

		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y" || answer == "yes", nil
	}
}
