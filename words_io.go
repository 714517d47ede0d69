package main

import (
	"sort"
	"strings"
)

var ioWords = []Definition{
	{".", Native(printValue)},
	{".s", Native(printStack)},
	{"words", Native(printWords)},
}

// printValue pops a value and writes it on its own line, strings unquoted. Output
// errors are logged, not returned.
func printValue(in *Interp) error {
	val, err := in.Pop()
	if err != nil {
		return err
	}
	in.output(val.String())
	return nil
}

// printStack writes the stack listing without changing it.
func printStack(in *Interp) error {
	in.output(FormatStack(in.stack))
	return nil
}

// printWords writes all dictionary names, sorted.
func printWords(in *Interp) error {
	in.output(strings.Join(in.wordNames(), " "))
	return nil
}

func (in *Interp) wordNames() []string {
	names := make([]string, 0, len(in.dict))
	for name := range in.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (in *Interp) output(s string) {
	if err := in.writeLine(s); err != nil {
		in.logf("#", "output error: %v", err)
	}
}
