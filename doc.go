/* Package main: SMORTH -- a small stack language

Smorth is a concatenative language in the family of FORTH. A program is a
sequence of whitespace separated tokens, evaluated left to right against a
single stack of values. There is no syntax beyond that: every operation,
built in or user defined, is a _word_ that takes its arguments from the stack
and leaves its results there.

Values

There are four kinds of value: 64-bit integers, 64-bit floats, strings, and
booleans. Integer literals are decimal digits with an optional sign; a float
literal must contain a decimal point, so "2.5" and "-0.5" are floats while
"1e3" is not a literal at all. Strings are written in double quotes, and may
contain whitespace but no escapes. There are no boolean literals; comparisons
produce them, and the prelude defines true and false in terms of ==.

Arithmetic mixes integers and floats freely. When both operands of + - * or /
are integers the result is truncated back to an integer, otherwise it is a
float; so "7 2 /" leaves 3, and "7 2.0 /" leaves 3.5.

Variables

A token ending in "!" pops the top of the stack into the named variable, and
a token ending in "@" pushes the variable's value back. This leaves 84:

	42 x!  x@ x@ +

Variables live in one global namespace, separate from the dictionary of
words.

Definitions

A colon starts a word definition; the next token names the word and the
tokens that follow, up to a semicolon, are its body. This prints 42:

	: double 2 * ;
	21 double .

A body is kept as tokens, and resolved only when the word runs. A word may
therefore refer to words defined after it, and redefining a word changes the
behavior of every word that calls it. Builtin words may be redefined too.

A definition may span any number of lines, or calls to Eval. Nothing is
executed while a definition is open.

Errors

Evaluation stops at the first error, keeping the effects of every token
evaluated before it. Errors are classified as stack underflow, type mismatch,
undefined variable, unknown token, definition error, or call depth exceeded;
see ErrorKind.

Words

The builtin words are:

	math        + - * / sqrt
	stack       dup swap drop over rot depth clear
	comparison  == != < <= > >=
	logic       and or not
	strings     .. len reverse upper lower format
	output      . .s words

The prelude then defines, in smorth itself: true false neg inc dec square cube
nip tuck 2dup 2drop -rot nand nor cr.

The format word takes a template string, and fills each "$" in it with a value
from the stack, the deepest of them first. This prints "Ann has 7 cats":

	"Ann" 7 "$ has $ cats" format .

*/
package main
