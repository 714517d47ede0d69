package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/bigsaddev/smorth/internal/histstore"
	"github.com/bigsaddev/smorth/internal/logio"
)

const (
	replBanner = "Smorth | Stack Language\nType 'bye' to exit."
	replExit   = "bye"

	// shown instead of the configured prompt while a definition is open
	continuePrompt = "... "
)

// lineReader is the part of liner.State used by the REPL.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	in      *Interp
	lines   lineReader
	out     io.Writer
	log     *logio.Logger
	hist    *histstore.Store
	prompt  string
	timeout time.Duration
}

// loadHistory feeds up to n recent lines from hist to the line reader, and
// keeps hist to record new lines into.
func (r *repl) loadHistory(hist *histstore.Store, n int) error {
	r.hist = hist
	cmds, err := hist.Recent(n)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		r.lines.AppendHistory(cmd.Text)
	}
	return nil
}

// run reads and evaluates lines until "bye" or end of input. Each line is
// evaluated against the same interpreter; an error is printed, and the stack
// listing follows every line that succeeds.
func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, replBanner)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := r.prompt
		if r.in.Compiling() {
			prompt = continuePrompt
		}
		line, err := r.lines.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == replExit {
			return nil
		}
		if line == "" {
			continue
		}
		r.record(line)

		if err := r.eval(ctx, line); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}
		if err := r.in.ShowStack(r.out); err != nil {
			return err
		}
	}
}

func (r *repl) eval(ctx context.Context, line string) error {
	if r.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.in.EvalContext(ctx, line)
}

func (r *repl) record(line string) {
	r.lines.AppendHistory(line)
	if r.hist == nil {
		return
	}
	if _, err := r.hist.AddCmd(line); err != nil {
		r.log.Printf("WARN", "history disabled: %v", err)
		r.hist = nil
	}
}
