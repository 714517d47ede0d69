package main

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Interp evaluates smorth source text. It owns the value stack, the
// dictionary of words, the variable store, and the state of any word
// definition in progress. An Interp is not safe for concurrent use.
type Interp struct {
	ioCore
	logging

	stack []Value
	dict  map[string]Word
	vars  map[string]Value

	// definition in progress, between ":" and ";"
	compiling bool
	defName   string
	defBody   []string

	word     string // innermost executing word, for diagnostics
	depth    int    // user word nesting
	maxDepth int

	prelude bool
}

// Word is a dictionary entry: either a Native operation or a UserWord body.
type Word interface {
	Exec(in *Interp) error
}

// Native is a word implemented in Go.
type Native func(in *Interp) error

// Exec calls the native operation.
func (fn Native) Exec(in *Interp) error { return fn(in) }

// UserWord is a word defined by a ": name ... ;" construct; its body is
// replayed token by token each time the word is called.
type UserWord []string

// Exec evaluates each token of the body in order, stopping at the first
// error. Tokens are resolved when executed, not when defined.
func (body UserWord) Exec(in *Interp) error {
	in.depth++
	defer func() { in.depth-- }()
	if in.maxDepth > 0 && in.depth > in.maxDepth {
		return &Error{
			Kind:   ErrDepthExceeded,
			Word:   in.word,
			Reason: in.word + " nested deeper than " + strconv.Itoa(in.maxDepth),
		}
	}
	for _, token := range body {
		if err := in.evalToken(token); err != nil {
			return err
		}
	}
	return nil
}

// Definition names a word for registration into the dictionary.
type Definition struct {
	Name string
	Word Word
}

func (in *Interp) init() {
	if in.dict == nil {
		in.dict = make(map[string]Word)
	}
	if in.vars == nil {
		in.vars = make(map[string]Value)
	}
}

// Define binds name to word, replacing any prior binding, builtin or not.
func (in *Interp) Define(name string, word Word) {
	in.init()
	in.dict[name] = word
}

// Lookup returns the word bound to name.
func (in *Interp) Lookup(name string) (Word, bool) {
	word, ok := in.dict[name]
	return word, ok
}

// Var returns the value bound to the named variable.
func (in *Interp) Var(name string) (Value, bool) {
	val, ok := in.vars[name]
	return val, ok
}

func (in *Interp) eval(ctx context.Context, tokens []string) error {
	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.step(token); err != nil {
			in.logf("#", "%v: %v", token, err)
			return err
		}
	}
	return nil
}

// step handles one top level token: definition delimiters and capture while
// compiling, and evalToken otherwise.
func (in *Interp) step(token string) error {
	switch {
	case token == ":":
		if in.compiling {
			name := in.defName
			in.resetDefinition()
			return definitionError("already defining %q", name)
		}
		in.compiling = true
		in.defName = ""
		in.defBody = nil
		return nil

	case token == ";":
		if !in.compiling {
			return definitionError("; without :")
		}
		name, body := in.defName, in.defBody
		in.resetDefinition()
		if name == "" {
			return definitionError("no word name specified")
		}
		in.logf(";", "define %v as %v", name, strings.Join(body, " "))
		in.Define(name, UserWord(body))
		return nil

	case in.compiling:
		if in.defName == "" {
			in.defName = token
			in.logf(":", "begin %v", token)
		} else {
			in.defBody = append(in.defBody, token)
		}
		return nil

	default:
		return in.evalToken(token)
	}
}

func (in *Interp) resetDefinition() {
	in.compiling = false
	in.defName = ""
	in.defBody = nil
}

// evalToken executes one token outside of compile mode. Classification order
// matters: literals and variable operators shadow dictionary words, and a
// float literal must contain a decimal point, so "1e3" is not a number.
func (in *Interp) evalToken(token string) error {
	in.logf(">", "%*s%v", 2*in.depth, "", token)

	if s := strings.TrimPrefix(token, strPrefix); len(s) < len(token) {
		in.Push(Str(s))
		return nil
	}

	if name := strings.TrimSuffix(token, "!"); len(token) > 1 && len(name) < len(token) {
		val, err := in.Pop()
		if err != nil {
			return &Error{Kind: ErrStackUnderflow, Word: token}
		}
		in.logf("!", "%v <- %v", name, Repr(val))
		in.vars[name] = val
		return nil
	}

	if name := strings.TrimSuffix(token, "@"); len(token) > 1 && len(name) < len(token) {
		val, defined := in.vars[name]
		if !defined {
			return &Error{Kind: ErrUndefinedVariable, Token: name}
		}
		in.logf("@", "%v -> %v", name, Repr(val))
		in.Push(val)
		return nil
	}

	if strings.Contains(token, ".") {
		if f, ok := parseFloat(token); ok {
			in.Push(Float(f))
			return nil
		}
	}

	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		in.Push(Int(n))
		return nil
	}

	if word, defined := in.dict[token]; defined {
		return in.call(token, word)
	}

	return &Error{Kind: ErrUnknownToken, Token: token}
}

func (in *Interp) call(name string, word Word) error {
	defer func(word string) { in.word = word }(in.word)
	in.word = name
	return word.Exec(in)
}

// parseFloat parses a decimal float literal. Out of range literals saturate
// to an infinity (or zero) rather than failing; hexadecimal forms are not
// literals.
func parseFloat(token string) (float64, bool) {
	digits := strings.TrimLeft(token, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err == nil {
		return f, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, !math.IsNaN(f)
	}
	return 0, false
}
