package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/bigsaddev/smorth/internal/config"
	"github.com/bigsaddev/smorth/internal/fileinput"
	"github.com/bigsaddev/smorth/internal/histstore"
	"github.com/bigsaddev/smorth/internal/logio"
)

func main() {
	c := cli{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		terminal: isTerminal(os.Stdin),
	}
	c.log.SetOutput(os.Stderr)
	os.Exit(c.run(context.Background(), os.Args[1:]))
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type cli struct {
	stdin    io.Reader
	stdout   io.Writer
	terminal bool
	log      logio.Logger

	// newLineReader is overridden by tests; defaults to a liner.State
	newLineReader func() (lineReader, io.Closer)

	cfg     config.Config
	timeout time.Duration
	dump    bool
	bare    bool
	expr    string
	args    []string
}

func (c *cli) run(ctx context.Context, args []string) int {
	if err := c.parseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		c.log.Errorf("%v", err)
		return 2
	}
	c.exec(ctx)
	return c.log.ExitCode()
}

// exec evaluates the prelude files, then the -e text, the file arguments, or
// standard input, logging any error.
func (c *cli) exec(ctx context.Context) {
	opts := []InterpOption{
		WithOutput(c.stdout),
		WithMaxDepth(c.cfg.MaxDepth),
		WithPrelude(!c.bare),
	}
	if c.cfg.Trace {
		opts = append(opts, WithLogf(c.log.Leveledf("TRACE")))
	}
	in := New(opts...)
	defer func() { c.log.ErrorIf(in.Close()) }()

	if c.dump {
		defer func() {
			lw := &logio.Writer{Logf: c.log.Leveledf("DUMP")}
			interpDumper{in: in, out: lw}.dump()
			lw.Close()
		}()
	}

	if c.timeout != 0 && !c.interactive() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.evalAll(ctx, in, fileinput.Open(c.cfg.Prelude...)); err != nil {
		c.log.ErrorIf(err)
		return
	}

	var err error
	switch {
	case c.expr != "":
		err = in.EvalSource(ctx, "-e", c.expr)
	case len(c.args) > 0:
		err = c.evalAll(ctx, in, fileinput.Open(c.args...))
	case c.terminal:
		c.log.ErrorIf(c.repl(ctx, in))
		return
	default:
		input := &fileinput.Input{Queue: []io.Reader{fileinput.NamedReader("<stdin>", c.stdin)}}
		err = c.evalAll(ctx, in, input)
	}
	if err != nil {
		c.log.ErrorIf(err)
	} else {
		c.log.ErrorIf(in.ShowStack(c.stdout))
	}
}

func (c *cli) interactive() bool {
	return c.expr == "" && len(c.args) == 0 && c.terminal
}

func (c *cli) parseFlags(args []string) error {
	flags := flag.NewFlagSet("smorth", flag.ContinueOnError)
	flags.SetOutput(c.stdout)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: smorth [flags] [FILE...]\n\n")
		fmt.Fprintf(flags.Output(), "Evaluates each FILE in order, or standard input; starts a REPL\n")
		fmt.Fprintf(flags.Output(), "when standard input is a terminal.\n\n")
		flags.PrintDefaults()
	}

	configPath := config.DefaultPath()
	var (
		trace    bool
		maxDepth int
		history  string
	)
	flags.StringVar(&configPath, "config", configPath, "configuration file")
	flags.DurationVar(&c.timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.IntVar(&maxDepth, "max-depth", 0, "limit user word nesting; 0 means no limit")
	flags.StringVar(&history, "history", "", "REPL history database")
	flags.BoolVar(&c.dump, "dump", false, "dump interpreter state on exit")
	flags.BoolVar(&c.bare, "bare", false, "do not define the prelude words")
	flags.StringVar(&c.expr, "e", "", "evaluate the given text instead of any FILE")
	if err := flags.Parse(args); err != nil {
		return err
	}
	c.args = flags.Args()

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(configPath, !set["config"])
	if err != nil {
		return err
	}
	if set["trace"] {
		cfg.Trace = trace
	}
	if set["max-depth"] {
		cfg.MaxDepth = maxDepth
	}
	if set["history"] {
		cfg.History = config.ExpandHome(history)
	}
	c.cfg = cfg
	return nil
}

// evalAll evaluates each source from input in turn, as one buffer apiece.
func (c *cli) evalAll(ctx context.Context, in *Interp, input *fileinput.Input) error {
	for {
		src, err := input.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := in.EvalSource(ctx, src.Name, src.Text); err != nil {
			return err
		}
	}
}

func (c *cli) repl(ctx context.Context, in *Interp) error {
	var lines lineReader
	if c.newLineReader != nil {
		var closer io.Closer
		lines, closer = c.newLineReader()
		defer closer.Close()
	} else {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)
		lines = ln
	}

	r := repl{
		in:      in,
		lines:   lines,
		out:     c.stdout,
		log:     &c.log,
		prompt:  c.cfg.Prompt,
		timeout: c.timeout,
	}

	if c.cfg.History != "" {
		hist, err := histstore.Open(c.cfg.History)
		if err != nil {
			c.log.Printf("WARN", "history disabled: %v", err)
		} else {
			defer hist.Close()
			if err := r.loadHistory(hist, c.cfg.HistorySize); err != nil {
				c.log.Printf("WARN", "failed to load history: %v", err)
			}
			defer func() {
				if err := hist.Trim(c.cfg.HistorySize); err != nil {
					c.log.Printf("WARN", "failed to trim history: %v", err)
				}
			}()
		}
	}

	return r.run(ctx)
}
