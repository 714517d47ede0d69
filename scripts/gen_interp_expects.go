package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var expectMethod = regexp.MustCompile(`^func \(it interpTestCase\) expect(\w+)\((.*)\) interpTestCase \{$`)

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	fmt.Fprintf(&buf, "package main\n\n// @generated from %v\n\n", in.Name())
	if args := flag.Args(); len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_interp_expects.go -- %v\n\n", strings.Join(args, " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := expectMethod.FindStringSubmatch(sc.Text()); match != nil {
			writeExpectWrapper(&buf, match[1], match[2])
		}
		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// writeExpectWrapper turns interpTestCase.expectWhat into a free
// expectInterpWhat function, for use with interpTestCase.apply.
func writeExpectWrapper(buf *bytes.Buffer, what, params string) {
	fmt.Fprintf(buf, "func expectInterp%v(%v) func(interpTestCase) interpTestCase {\n", what, params)
	fmt.Fprintf(buf, "\treturn func(it interpTestCase) interpTestCase {\n")
	fmt.Fprintf(buf, "\t\treturn it.expect%v(%v)\n", what, callArgs(params))
	fmt.Fprintf(buf, "\t}\n}\n\n")
}

// callArgs turns a parameter list like "name string, body ...string" into
// the matching call arguments "name, body...".
func callArgs(params string) string {
	if params == "" {
		return ""
	}
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", ")
}
