package main

import "math"

var mathWords = []Definition{
	{"+", Native(add)},
	{"-", Native(sub)},
	{"*", Native(mul)},
	{"/", Native(div)},
	{"sqrt", Native(sqrt)},
}

func add(in *Interp) error { return in.binaryOp(func(a, b float64) float64 { return a + b }) }
func sub(in *Interp) error { return in.binaryOp(func(a, b float64) float64 { return a - b }) }
func mul(in *Interp) error { return in.binaryOp(func(a, b float64) float64 { return a * b }) }

// div does not check for zero: an Int result saturates, see truncInt.
func div(in *Interp) error { return in.binaryOp(func(a, b float64) float64 { return a / b }) }

// sqrt always pushes a Float; negative operands give NaN.
func sqrt(in *Interp) error {
	f, _, err := in.PopNumber()
	if err != nil {
		return err
	}
	in.Push(Float(math.Sqrt(f)))
	return nil
}
