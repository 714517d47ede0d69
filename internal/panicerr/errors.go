package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// PanicError is returned by Recover when its function panics.
type PanicError struct {
	Name  string
	Value interface{} // as passed to panic
	Stack []byte      // of the panicking goroutine
}

// ExitError is returned by Recover when its function calls runtime.Goexit.
type ExitError struct {
	Name string
}

func recoverPanicError(name string, errch chan<- error) {
	if v := recover(); v != nil {
		select {
		case errch <- PanicError{name, v, debug.Stack()}:
		default:
		}
	}
}

func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- ExitError{name}:
	default:
		// every other path has already sent, maybe a nil
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprint(pe)
}

// Format writes the panic message; the "%+v" form adds the stack trace.
func (pe PanicError) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "panicked: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v panicked: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value, if it was an error.
func (pe PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

func (xe ExitError) Error() string {
	if xe.Name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", xe.Name)
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	var pe PanicError
	return errors.As(err, &pe)
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe ExitError
	return errors.As(err, &xe)
}

// PanicStack returns the stack trace of a recovered goroutine panic, or ""
// for any other error.
func PanicStack(err error) string {
	var pe PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
