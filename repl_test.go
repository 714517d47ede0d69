package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigsaddev/smorth/internal/histstore"
	"github.com/bigsaddev/smorth/internal/logio"
)

// scriptedLines is a lineReader that replays canned input; a "^C" line
// aborts its prompt, and running out of lines is end of input.
type scriptedLines struct {
	lines   []string
	prompts []string
	history []string
}

func (sl *scriptedLines) Prompt(prompt string) (string, error) {
	sl.prompts = append(sl.prompts, prompt)
	if len(sl.lines) == 0 {
		return "", io.EOF
	}
	line := sl.lines[0]
	sl.lines = sl.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func (sl *scriptedLines) AppendHistory(item string) { sl.history = append(sl.history, item) }

func (sl *scriptedLines) Close() error { return nil }

func newTestREPL(lines ...string) (*repl, *scriptedLines, *strings.Builder) {
	var out strings.Builder
	sl := &scriptedLines{lines: lines}
	return &repl{
		in:     New(WithOutput(&out)),
		lines:  sl,
		out:    &out,
		log:    &logio.Logger{},
		prompt: "> ",
	}, sl, &out
}

func TestREPL(t *testing.T) {
	r, sl, out := newTestREPL(
		"1 2 +",
		"   ",
		"dup foo",
		": sq dup *",
		";",
		"  sq  ",
		`"hi" .`,
		"bye",
		"never read",
	)
	require.NoError(t, r.run(context.Background()))

	assert.Equal(t, lines(
		"Smorth | Stack Language",
		"Type 'bye' to exit.",
		"Stack: [3]",
		"Error: unknown token: foo",
		"Stack: [3, 3]",
		"Stack: [3, 3]",
		"Stack: [3, 9]",
		"hi",
		"Stack: [3, 9]",
	), out.String())

	assert.Equal(t, []string{"> ", "> ", "> ", "> ", "... ", "> ", "> ", "> "}, sl.prompts)
	assert.Equal(t, []string{"1 2 +", "dup foo", ": sq dup *", ";", "sq", `"hi" .`}, sl.history)
	assert.Equal(t, []string{"never read"}, sl.lines)
}

func TestREPL_endOfInput(t *testing.T) {
	r, sl, out := newTestREPL("^C", "1")
	require.NoError(t, r.run(context.Background()))
	assert.Equal(t, lines(
		"Smorth | Stack Language",
		"Type 'bye' to exit.",
		"Stack: [1]",
		"",
	), out.String())
	assert.Len(t, sl.prompts, 3)
}

func TestREPL_canceled(t *testing.T) {
	r, sl, _ := newTestREPL("1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.run(ctx), context.Canceled)
	assert.Empty(t, sl.prompts)
}

func TestREPL_history(t *testing.T) {
	hist, err := histstore.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer hist.Close()
	_, err = hist.AddCmd("old 1")
	require.NoError(t, err)
	_, err = hist.AddCmd("old 2")
	require.NoError(t, err)

	r, sl, _ := newTestREPL("1 2", "bye")
	require.NoError(t, r.loadHistory(hist, 1))
	require.NoError(t, r.run(context.Background()))

	assert.Equal(t, []string{"old 2", "1 2"}, sl.history)

	cmds, err := hist.Recent(10)
	require.NoError(t, err)
	var texts []string
	for _, cmd := range cmds {
		texts = append(texts, cmd.Text)
	}
	assert.Equal(t, []string{"old 1", "old 2", "1 2"}, texts)
}
