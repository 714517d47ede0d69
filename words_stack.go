package main

var stackWords = []Definition{
	{"dup", Native(dup)},
	{"swap", Native(swap)},
	{"drop", Native(drop)},
	{"over", Native(over)},
	{"rot", Native(rot)},
	{"depth", Native(stackDepth)},
	{"clear", Native(clearStack)},
}

// ( a -- a a )
func dup(in *Interp) error {
	val, err := in.Pop()
	if err != nil {
		return err
	}
	in.Push(val)
	in.Push(val)
	return nil
}

// ( a b -- b a )
func swap(in *Interp) error {
	tos, err := in.Pop()
	if err != nil {
		return err
	}
	nos, err := in.Pop()
	if err != nil {
		return err
	}
	in.Push(tos)
	in.Push(nos)
	return nil
}

// ( a -- )
func drop(in *Interp) error {
	_, err := in.Pop()
	return err
}

// ( a b -- a b a )
func over(in *Interp) error {
	if len(in.stack) < 2 {
		return in.underflow()
	}
	in.Push(in.stack[len(in.stack)-2])
	return nil
}

// ( a b c -- b c a )
func rot(in *Interp) error {
	n := len(in.stack)
	if n < 3 {
		return in.underflow()
	}
	s := in.stack[n-3:]
	s[0], s[1], s[2] = s[1], s[2], s[0]
	return nil
}

// ( -- n )
func stackDepth(in *Interp) error {
	in.Push(Int(len(in.stack)))
	return nil
}

// ( ... -- )
func clearStack(in *Interp) error {
	in.stack = in.stack[:0]
	return nil
}
