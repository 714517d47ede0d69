package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bigsaddev/smorth/internal/panicerr"
)

// New creates an Interp with the builtin words and the prelude defined;
// options are applied after the defaults.
func New(opts ...InterpOption) *Interp {
	var in Interp
	in.init()
	InterpOptions(defaultOptions, InterpOptions(opts...)).apply(&in)
	if in.prelude {
		if err := in.Eval(preludeSource); err != nil {
			panic(fmt.Sprintf("smorth: invalid prelude: %v", err))
		}
	}
	return &in
}

// Eval evaluates one buffer of source text, see EvalContext.
func (in *Interp) Eval(text string) error {
	return in.EvalContext(context.Background(), text)
}

// EvalContext tokenizes text, and evaluates its tokens left to right,
// stopping at the first error. Effects of tokens evaluated before an error
// are kept. A definition left open at the end of text continues into the
// next call. The context is checked between top level tokens.
//
// Output is flushed before returning; a panic raised by a native word is
// returned as an error.
func (in *Interp) EvalContext(ctx context.Context, text string) error {
	err := panicerr.Recover("smorth", func() error {
		return in.eval(ctx, Tokenize(text))
	})
	if ferr := in.flush(); err == nil {
		err = ferr
	}
	return err
}

// EvalSource is like EvalContext, but names the source in trace logging and
// in any returned error.
func (in *Interp) EvalSource(ctx context.Context, name, text string) error {
	defer in.withLogPrefix(name + ": ")()
	if err := in.EvalContext(ctx, text); err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	return nil
}

// Compiling returns true if a word definition is in progress.
func (in *Interp) Compiling() bool { return in.compiling }

// ShowStack writes the stack listing, like `Stack: [1, "a"]`, and a line feed.
func (in *Interp) ShowStack(w io.Writer) error {
	_, err := fmt.Fprintln(w, FormatStack(in.stack))
	return err
}

func WithOutput(w io.Writer) InterpOption { return withOutput(w) }
func WithTee(w io.Writer) InterpOption    { return withTee(w) }
func WithMaxDepth(limit int) InterpOption { return maxDepthOption(limit) }
func WithPrelude(load bool) InterpOption  { return preludeOption(load) }

func WithWords(defs ...Definition) InterpOption { return wordsOption(defs) }

func WithLogf(logfn func(mess string, args ...interface{})) InterpOption { return withLogfn(logfn) }
