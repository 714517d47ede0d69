// Package fileinput sequences program sources, such as prelude files and
// command line arguments, into named texts for evaluation one at a time.
package fileinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Next for a source that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Source is the full text of one input, along with its name.
type Source struct {
	Name string
	Text string
}

func (src Source) String() string {
	return fmt.Sprintf("%v (%v lines)", src.Name, strings.Count(src.Text, "\n"))
}

// Input reads sources sequentially from a Queue of readers. Readers that are
// also io.Closer are closed once read.
type Input struct {
	Queue []io.Reader
}

// Open queues the named files for reading, with "-" naming standard input.
// Files are opened lazily, by Next.
func Open(names ...string) *Input {
	var in Input
	for _, name := range names {
		in.Queue = append(in.Queue, lazyFile(name))
	}
	return &in
}

// Next reads the next source in full, returning io.EOF once the Queue is
// drained. Sources must be valid UTF-8.
func (in *Input) Next() (src Source, err error) {
	if len(in.Queue) == 0 {
		return Source{}, io.EOF
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]

	if lf, ok := r.(lazyFile); ok {
		if r, err = lf.open(); err != nil {
			return Source{}, err
		}
	}
	if cl, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}()
	}

	src.Name = nameOf(r)
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Source{}, fmt.Errorf("failed to read %v: %w", src.Name, err)
	}
	if !utf8.ValidString(sb.String()) {
		return Source{}, fmt.Errorf("failed to read %v: %w", src.Name, ErrInvalidUTF8)
	}
	src.Text = sb.String()
	return src, nil
}

// NamedReader attaches a name to a reader, for use in a Queue.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

type lazyFile string

func (lf lazyFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("%v: not opened", string(lf))
}

func (lf lazyFile) open() (io.Reader, error) {
	if lf == "-" {
		return NamedReader("<stdin>", os.Stdin), nil
	}
	return os.Open(string(lf))
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
