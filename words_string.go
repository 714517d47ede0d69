package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var stringWords = []Definition{
	{"..", Native(concat)},
	{"len", Native(strlen)},
	{"reverse", stringWith(reverse)},
	{"upper", stringWith(upper)},
	{"lower", stringWith(lower)},
	{"format", Native(format)},
}

// formatMark is replaced by successive values in a format string.
const formatMark = "$"

// ( a b -- ab )
func concat(in *Interp) error {
	b, err := in.PopString()
	if err != nil {
		return err
	}
	a, err := in.PopString()
	if err != nil {
		return err
	}
	in.Push(Str(a + b))
	return nil
}

// strlen pushes the length of a string in bytes, not runes.
func strlen(in *Interp) error {
	s, err := in.PopString()
	if err != nil {
		return err
	}
	in.Push(Int(len(s)))
	return nil
}

func stringWith(fn func(s string) string) Native {
	return func(in *Interp) error {
		s, err := in.PopString()
		if err != nil {
			return err
		}
		in.Push(Str(fn(s)))
		return nil
	}
}

// Casers hold state, so each call gets its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// format pops a format string, then one value for each "$" in it. Each value,
// in the order they were pushed, replaces the first "$" left in the result, so
// a "$" carried in by one value is taken by the next.
func format(in *Interp) error {
	f, err := in.PopString()
	if err != nil {
		return err
	}
	vals := make([]Value, strings.Count(f, formatMark))
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i], err = in.Pop(); err != nil {
			return err
		}
	}
	result := f
	for _, val := range vals {
		result = strings.Replace(result, formatMark, val.String(), 1)
	}
	in.Push(Str(result))
	return nil
}
