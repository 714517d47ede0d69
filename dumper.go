package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bigsaddev/smorth/internal/runeio"
)

type interpDumper struct {
	in  *Interp
	out io.Writer

	natives bool // list native words too
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interp Dump\n")
	dump.dumpDefinition()
	dump.dumpStack()
	dump.dumpVars()
	dump.dumpWords()
}

func (dump interpDumper) dumpDefinition() {
	if !dump.in.compiling {
		fmt.Fprintf(dump.out, "  compiling: false\n")
		return
	}
	fmt.Fprintf(dump.out, "  compiling: %v\n", formatDefinition(dump.in.defName, dump.in.defBody, false))
}

func (dump interpDumper) dumpStack() {
	var sb strings.Builder
	for i, val := range dump.in.stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(runeio.Escape(Repr(val)))
	}
	fmt.Fprintf(dump.out, "  stack: [%v]\n", sb.String())
}

func (dump interpDumper) dumpVars() {
	if len(dump.in.vars) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Variables\n")
	for _, name := range sortedVarNames(dump.in.vars) {
		val := dump.in.vars[name]
		fmt.Fprintf(dump.out, "  %v = %v\n", name, runeio.Escape(Repr(val)))
	}
}

func (dump interpDumper) dumpWords() {
	var lines []string
	for _, name := range dump.in.wordNames() {
		switch word := dump.in.dict[name].(type) {
		case UserWord:
			lines = append(lines, formatDefinition(name, word, true))
		default:
			if dump.natives {
				lines = append(lines, fmt.Sprintf("native %v", name))
			}
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Words\n")
	for _, line := range lines {
		fmt.Fprintf(dump.out, "  %v\n", line)
	}
}

// formatDefinition renders a definition back into source form.
func formatDefinition(name string, body []string, closed bool) string {
	var sb strings.Builder
	sb.WriteString(": ")
	if name == "" {
		sb.WriteString("ø")
	} else {
		sb.WriteString(runeio.Escape(name))
	}
	for _, token := range body {
		sb.WriteByte(' ')
		if s := strings.TrimPrefix(token, strPrefix); len(s) < len(token) {
			sb.WriteString(runeio.Escape(Repr(Str(s))))
		} else {
			sb.WriteString(runeio.Escape(token))
		}
	}
	if closed {
		sb.WriteString(" ;")
	}
	return sb.String()
}

func sortedVarNames(vars map[string]Value) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
