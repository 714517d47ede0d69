package main

import (
	"io"

	"github.com/bigsaddev/smorth/internal/flushio"
)

type ioCore struct {
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close flushes any buffered output, and closes any resources acquired by
// options, in reverse order.
func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

func (ioc *ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	return ioc.out.Flush()
}

// writeLine writes s and a line feed to the output.
func (ioc *ioCore) writeLine(s string) error {
	if ioc.out == nil {
		return nil
	}
	return flushio.WriteLine(ioc.out, s)
}
