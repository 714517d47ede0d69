// Package flushio provides buffered output sinks that must be flushed
// explicitly, so that interpreter output can be batched per evaluation.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher picks how output to w gets buffered. In memory buffers are
// written through, writers that already flush are used as they are, and
// anything else gets a bufio.Writer. A nil w discards.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch w := w.(type) {
	case nil:
		return Discard
	case WriteFlusher:
		return w
	case *bytes.Buffer, *strings.Builder:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Tee joins output sinks into one that writes to and flushes each of them.
// Nested tees are flattened; nils and Discard are dropped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var t tee
	t.add(wfs...)
	switch len(t) {
	case 0:
		return Discard
	case 1:
		return t[0]
	}
	return t
}

type tee []WriteFlusher

func (t *tee) add(wfs ...WriteFlusher) {
	for _, wf := range wfs {
		switch wf := wf.(type) {
		case nil:
		case tee:
			*t = append(*t, wf...)
		default:
			if wf != Discard {
				*t = append(*t, wf)
			}
		}
	}
}

// Write stops at the first sink that fails or writes short.
func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		n, err := wf.Write(p)
		if err == nil && n != len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// Flush flushes every sink, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// WriteLine writes s with a trailing line feed in a single Write.
func WriteLine(w io.Writer, s string) error {
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}
