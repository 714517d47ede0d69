// Package panicerr turns panics and goroutine exits into plain errors, so
// that a misbehaving native word cannot take the whole interpreter down.
package panicerr

// Recover runs f in a new goroutine, wrapped in deferred logic to recover any
// abnormal exit or panic as a non-nil error return. The name prefixes the
// error message of any such recovery.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
