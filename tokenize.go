package main

import (
	"strings"
	"unicode"
)

// strPrefix marks a token produced by a quoted string literal.
const strPrefix = "STR:"

// Tokenize splits text into tokens. Whitespace separates tokens, except
// inside double quotes where everything up to the closing quote is kept
// verbatim and emitted as one token prefixed with "STR:". There are no
// escapes; an unterminated quote drops its content, and a closing quote
// always ends the token, so `"a""b"` yields two strings.
func Tokenize(text string) []string {
	tokens := []string{}
	var sb strings.Builder
	quoted := false
	for _, r := range text {
		switch {
		case r == '"':
			if quoted {
				tokens = append(tokens, strPrefix+sb.String())
				sb.Reset()
			}
			quoted = !quoted
		case quoted:
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			if sb.Len() > 0 {
				tokens = append(tokens, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 0 && !quoted {
		tokens = append(tokens, sb.String())
	}
	return tokens
}
