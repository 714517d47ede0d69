package main

// Push pushes a value onto the stack.
func (in *Interp) Push(val Value) {
	in.stack = append(in.stack, val)
}

// Pop removes and returns the top of the stack.
func (in *Interp) Pop() (val Value, err error) {
	i := len(in.stack) - 1
	if i < 0 {
		return nil, in.underflow()
	}
	val, in.stack = in.stack[i], in.stack[:i]
	return val, nil
}

// PopNumber pops a numeric value, widened to float64, reporting whether it
// was an Int. A non-numeric value is consumed all the same.
func (in *Interp) PopNumber() (f float64, isInt bool, err error) {
	val, err := in.Pop()
	if err != nil {
		return 0, false, err
	}
	f, isInt, ok := number(val)
	if !ok {
		return 0, false, in.mismatch(TypeNumber, val)
	}
	return f, isInt, nil
}

// PopString pops a Str value.
func (in *Interp) PopString() (string, error) {
	val, err := in.Pop()
	if err != nil {
		return "", err
	}
	s, ok := val.(Str)
	if !ok {
		return "", in.mismatch(TypeString, val)
	}
	return string(s), nil
}

// PopBool pops a Bool value.
func (in *Interp) PopBool() (bool, error) {
	val, err := in.Pop()
	if err != nil {
		return false, err
	}
	b, ok := val.(Bool)
	if !ok {
		return false, in.mismatch(TypeBool, val)
	}
	return bool(b), nil
}

// Stack returns a copy of the stack, bottom first.
func (in *Interp) Stack() []Value {
	return append(make([]Value, 0, len(in.stack)), in.stack...)
}

// binaryOp pops top then next, and pushes op(next, top). Operands are
// computed as float64; the result is truncated back to an Int only when both
// operands were Ints.
func (in *Interp) binaryOp(op func(a, b float64) float64) error {
	tos, tosInt, err := in.PopNumber()
	if err != nil {
		return err
	}
	nos, nosInt, err := in.PopNumber()
	if err != nil {
		return err
	}
	if r := op(nos, tos); nosInt && tosInt {
		in.Push(truncInt(r))
	} else {
		in.Push(Float(r))
	}
	return nil
}
