package main

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/bigsaddev/smorth/internal/logio"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	{
		var exclusive []interpTestCase
		for _, it := range its {
			if it.exclusive {
				exclusive = append(exclusive, it)
			}
		}
		if len(exclusive) > 0 {
			its = exclusive
		}
	}
	for _, it := range its {
		t.Run(it.name, it.run)
	}
}

func interpTest(name string) (it interpTestCase) {
	it.name = name
	return it
}

type optFunc func(in *Interp)

func (f optFunc) apply(in *Interp) { f(in) }

type interpTestCase struct {
	name    string
	opts    []InterpOption
	inputs  []string
	expect  []func(t *testing.T, in *Interp)
	timeout time.Duration

	wantErr     error
	wantErrMess string

	exclusive bool
}

func (it interpTestCase) apply(wraps ...func(interpTestCase) interpTestCase) interpTestCase {
	for _, wrap := range wraps {
		it = wrap(it)
	}
	return it
}

func (it interpTestCase) exclusiveTest() interpTestCase {
	it.exclusive = true
	return it
}

func (it interpTestCase) withOptions(opts ...InterpOption) interpTestCase {
	it.opts = append(it.opts, opts...)
	return it
}

func (it interpTestCase) withoutPrelude() interpTestCase {
	return it.withOptions(WithPrelude(false))
}

func (it interpTestCase) withStack(values ...Value) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interp) {
		in.stack = append(in.stack, values...)
	}))
	return it
}

func (it interpTestCase) withVar(name string, val Value) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interp) {
		in.vars[name] = val
	}))
	return it
}

func (it interpTestCase) withTimeout(timeout time.Duration) interpTestCase {
	it.timeout = timeout
	return it
}

// eval adds source buffers, each evaluated by its own EvalContext call.
func (it interpTestCase) eval(inputs ...string) interpTestCase {
	it.inputs = append(it.inputs, inputs...)
	return it
}

func (it interpTestCase) expectError(err error) interpTestCase {
	it.wantErr = err
	return it
}

func (it interpTestCase) expectErrorMessage(mess string) interpTestCase {
	it.wantErrMess = mess
	return it
}

func (it interpTestCase) expectStack(values ...Value) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		if diff := cmp.Diff(values, in.Stack(), valueCmpOpts...); diff != "" {
			t.Errorf("unexpected stack values (-want +got):\n%v", diff)
		}
	})
	return it
}

func (it interpTestCase) expectVar(name string, val Value) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		got, defined := in.Var(name)
		if assert.True(t, defined, "expected variable %q to be defined", name) {
			if diff := cmp.Diff(val, got, valueCmpOpts...); diff != "" {
				t.Errorf("unexpected variable %q value (-want +got):\n%v", name, diff)
			}
		}
	})
	return it
}

func (it interpTestCase) expectOutput(output string) interpTestCase {
	var out strings.Builder
	it.opts = append(it.opts, WithOutput(&out))
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return it
}

func (it interpTestCase) expectWord(name string, body ...string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		word, defined := in.Lookup(name)
		if assert.True(t, defined, "expected word %q to be defined", name) {
			assert.Equal(t, UserWord(body), word, "expected %q body", name)
		}
	})
	return it
}

func (it interpTestCase) expectCompiling(compiling bool) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		assert.Equal(t, compiling, in.Compiling(), "expected compiling state")
	})
	return it
}

func (it interpTestCase) expectDump(dump string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interp) {
		var out strings.Builder
		interpDumper{in: in, out: &out}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return it
}

func (it interpTestCase) run(t *testing.T) {
	const defaultTimeout = time.Second
	timeout := it.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var trace traceLog
	in := New(append([]InterpOption{WithLogf(trace.logf)}, it.opts...)...)
	defer func() {
		assert.NoError(t, in.Close(), "unexpected close error")
		if t.Failed() {
			trace.replay(t)
			it.dumpToTest(t, in)
		}
	}()

	var err error
	for _, input := range it.inputs {
		if err = in.EvalContext(ctx, input); err != nil {
			break
		}
	}

	switch {
	case it.wantErr != nil:
		assert.ErrorIs(t, err, it.wantErr, "expected error")
	case it.wantErrMess == "":
		assert.NoError(t, err, "unexpected eval error")
	}
	if it.wantErrMess != "" {
		assert.EqualError(t, err, it.wantErrMess, "expected error message")
	}

	for _, expect := range it.expect {
		expect(t, in)
	}
}

func (it interpTestCase) dumpToTest(t *testing.T, in *Interp) {
	lw := logio.Writer{Logf: t.Logf, Prefix: "dump: "}
	defer lw.Close()
	interpDumper{in: in, out: &lw}.dump()
}

//// utilities

var valueCmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b Float) bool {
		return a == b || math.IsNaN(float64(a)) && math.IsNaN(float64(b))
	}),
}

// traceLog buffers trace lines, which are only worth reading once a test has
// failed.
type traceLog struct{ lines []string }

func (tl *traceLog) logf(mess string, args ...interface{}) {
	tl.lines = append(tl.lines, fmt.Sprintf(mess, args...))
}

func (tl *traceLog) replay(t *testing.T) {
	for _, line := range tl.lines {
		t.Log(line)
	}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
