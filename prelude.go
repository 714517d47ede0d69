package main

import "strings"

// The prelude is smorth source evaluated by New, extending the builtin
// words with ones that need no Go code. It shows off how little of the
// language has to be native: everything here is an ordinary user word, and
// may be redefined like any other.
var preludeSource = buildPrelude()

func buildPrelude() string {
	var sb strings.Builder
	line := func(parts ...string) {
		for _, s := range parts {
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	// There are no boolean literals, but comparisons make them.
	line(`: true 1 1 == ;`)
	line(`: false 1 0 == ;`)

	// Arithmetic conveniences; these keep the integer-ness of their operand,
	// since both sides of each operation are integers whenever it is.
	line(`: neg 0 swap - ;`)
	line(`: inc 1 + ;`)
	line(`: dec 1 - ;`)
	line(`: square dup * ;`)
	line(`: cube dup dup * * ;`)

	// More stack shuffling, built from over and rot.
	line(`: nip swap drop ;`)
	line(`: tuck swap over ;`)
	line(`: 2dup over over ;`)
	line(`: 2drop drop drop ;`)
	line(`: -rot rot rot ;`)

	// Logic.
	line(`: nand and not ;`)
	line(`: nor or not ;`)

	// Output an empty line.
	line(`: cr "" . ;`)

	return sb.String()
}
