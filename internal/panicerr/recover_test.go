package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigsaddev/smorth/internal/panicerr"
)

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		err       string
		wraps     string
		fun       func() error
		isPanic   bool
		isExit    bool
		haveStack bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "stack underflow",
			fun:  func() error { return errors.New("stack underflow") },
		},
		{
			name:      "panic err",
			err:       "panic err panicked: bang",
			wraps:     "bang",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic(errors.New("bang")) },
		},
		{
			name:      "hello panic",
			err:       "hello panic panicked: hello",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic("hello") },
		},
		{
			name:   "exit",
			err:    "exit called runtime.Goexit",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
		{
			name:   "",
			err:    "runtime.Goexit called",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
		{
			name:      "index panic",
			err:       "index panic panicked: runtime error: index out of range [1] with length 0",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { _ = ([]int)(nil)[1]; return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
				if tc.wraps != "" {
					assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
				}
			}
			assert.Equal(t, tc.isPanic, panicerr.IsPanic(err), "expected IsPanic")
			assert.Equal(t, tc.isExit, panicerr.IsExit(err), "expected IsExit")
			stack := panicerr.PanicStack(err)
			if tc.haveStack {
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
		})
	}
}

func TestRecover_stacktrace(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have a recovered error")

	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")
}

func TestRecover_value(t *testing.T) {
	type sentinel struct{ n int }
	err := panicerr.Recover("word", func() error {
		panic(sentinel{3})
	})
	var pe panicerr.PanicError
	if assert.True(t, errors.As(err, &pe), "expected a PanicError") {
		assert.Equal(t, "word", pe.Name)
		assert.Equal(t, sentinel{3}, pe.Value)
		assert.Nil(t, pe.Unwrap(), "expected no wrapped error")
	}
}
