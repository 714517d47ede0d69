package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigsaddev/smorth/internal/panicerr"
)

func TestInterp_evalContext(t *testing.T) {
	in := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := in.EvalContext(ctx, "1 2 +")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, in.Stack(), "expected nothing evaluated")
}

func TestInterp_errorRecovery(t *testing.T) {
	in := New()
	assert.ErrorIs(t, in.Eval(": a : b ;"), ErrDefinition)
	assert.False(t, in.Compiling())
	require.NoError(t, in.Eval(": c 3 ; 1 c"))
	assert.Equal(t, []Value{Int(1), Int(3)}, in.Stack())

	assert.ErrorIs(t, in.Eval("drop drop drop"), ErrStackUnderflow)
	assert.Empty(t, in.Stack())
	require.NoError(t, in.Eval("c"))
	assert.Equal(t, []Value{Int(3)}, in.Stack())
}

func TestInterp_evalSource(t *testing.T) {
	var trace []string
	in := New(WithLogf(func(mess string, args ...interface{}) {
		trace = append(trace, mess)
	}))
	trace = nil

	err := in.EvalSource(context.Background(), "prog.smo", "1 foo")
	assert.EqualError(t, err, "prog.smo: unknown token: foo")
	assert.ErrorIs(t, err, ErrUnknownToken)
	var serr *Error
	if assert.True(t, errors.As(err, &serr)) {
		assert.Equal(t, "foo", serr.Token)
	}

	if assert.NotEmpty(t, trace) {
		for _, mess := range trace {
			assert.True(t, strings.HasPrefix(mess, "prog.smo: "), "expected trace %q to be prefixed", mess)
		}
	}

	trace = nil
	require.NoError(t, in.Eval("2"))
	for _, mess := range trace {
		assert.False(t, strings.HasPrefix(mess, "prog.smo: "), "expected trace %q to be unprefixed", mess)
	}
}

func TestInterp_nativePanic(t *testing.T) {
	in := New(WithWords(Definition{"boom", Native(func(in *Interp) error {
		panic("kaboom")
	})}))
	err := in.Eval("1 boom")
	require.Error(t, err)
	assert.True(t, panicerr.IsPanic(err), "expected a panic error, got %v", err)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Equal(t, []Value{Int(1)}, in.Stack())

	require.NoError(t, in.Eval("2"), "expected interpreter to remain usable")
}

func TestInterp_options(t *testing.T) {
	var out, tee strings.Builder
	in := New(
		WithOutput(&out),
		WithTee(&tee),
		WithPrelude(false),
		WithWords(Definition{"answer", Native(func(in *Interp) error {
			in.Push(Int(42))
			return nil
		})}),
	)
	require.NoError(t, in.Eval("answer ."))
	require.NoError(t, in.Close())
	assert.Equal(t, "42\n", out.String())
	assert.Equal(t, "42\n", tee.String())

	_, defined := in.Lookup("square")
	assert.False(t, defined, "expected no prelude words")
	_, defined = in.Lookup("dup")
	assert.True(t, defined, "expected builtin words")
}

func TestInterp_maxDepthDisabled(t *testing.T) {
	in := New(WithMaxDepth(0))
	require.NoError(t, in.Eval(": a 1 ; : b a ; : c b ; c"))
	assert.Equal(t, []Value{Int(1)}, in.Stack())
}

func TestInterp_define(t *testing.T) {
	in := New(WithPrelude(false))
	in.Define("twice", UserWord{"dup", "+"})
	require.NoError(t, in.Eval("4 twice"))
	assert.Equal(t, []Value{Int(8)}, in.Stack())
}

func TestInterp_showStack(t *testing.T) {
	in := New()
	require.NoError(t, in.Eval(`1 2.5 "a" true`))
	var sb strings.Builder
	require.NoError(t, in.ShowStack(&sb))
	assert.Equal(t, "Stack: [1, 2.5, \"a\", true]\n", sb.String())

	stack := in.Stack()
	stack[0] = Int(99)
	assert.Equal(t, Int(1), in.Stack()[0], "expected Stack to return a copy")
}
