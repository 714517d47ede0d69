package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that hands each complete line written to it to a
// printf-style logging function, without its line feed. Main uses it to
// route interpreter dumps through a Logger, tests to route them into t.Logf.
type Writer struct {
	Logf func(mess string, args ...interface{})

	// Prefix, if any, is logged before every line.
	Prefix string

	mu      sync.Mutex
	partial bytes.Buffer
}

// Write logs every line completed by p, and buffers any trailing partial line
// for a later Write or Close. It never fails, and is safe to call from many
// goroutines.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			lw.partial.Write(p)
			break
		}
		lw.partial.Write(p[:i])
		lw.emit()
		p = p[i+1:]
	}
	return n, nil
}

// Sync logs any buffered partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.partial.Len() > 0 {
		lw.emit()
	}
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) emit() {
	lw.Logf("%s%s", lw.Prefix, lw.partial.Bytes())
	lw.partial.Reset()
}
