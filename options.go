package main

import (
	"io"

	"github.com/bigsaddev/smorth/internal/flushio"
)

// InterpOption customizes an Interp under construction by New.
type InterpOption interface{ apply(in *Interp) }

// DefaultMaxDepth bounds user word nesting unless overridden by WithMaxDepth.
const DefaultMaxDepth = 10000

var defaultOptions = InterpOptions(
	withOutput(io.Discard),
	maxDepthOption(DefaultMaxDepth),
	builtinsOption{},
	preludeOption(true),
)

// InterpOptions combines any number of options into one, applied in order.
func InterpOptions(opts ...InterpOption) InterpOption {
	var all interpOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case interpOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type interpOptions []InterpOption

func (opts interpOptions) apply(in *Interp) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type maxDepthOption int
type preludeOption bool
type wordsOption []Definition
type builtinsOption struct{}

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (o outputOption) apply(in *Interp) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interp) {
	in.out = flushio.Tee(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (limit maxDepthOption) apply(in *Interp) {
	in.maxDepth = int(limit)
}

func (words wordsOption) apply(in *Interp) {
	for _, def := range words {
		in.Define(def.Name, def.Word)
	}
}

func (builtinsOption) apply(in *Interp) {
	for _, words := range builtinWords {
		wordsOption(words).apply(in)
	}
}

func (load preludeOption) apply(in *Interp) {
	in.prelude = bool(load)
}
