package main

var comparisonWords = []Definition{
	{"==", Native(equal)},
	{"!=", Native(notEqual)},
	{"<", compareWith(func(a, b float64) bool { return a < b })},
	{"<=", compareWith(func(a, b float64) bool { return a <= b })},
	{">", compareWith(func(a, b float64) bool { return a > b })},
	{">=", compareWith(func(a, b float64) bool { return a >= b })},
}

// equal never fails on mismatched types, they are simply unequal.
func equal(in *Interp) error {
	eq, err := in.popEqual()
	if err != nil {
		return err
	}
	in.Push(Bool(eq))
	return nil
}

func notEqual(in *Interp) error {
	eq, err := in.popEqual()
	if err != nil {
		return err
	}
	in.Push(Bool(!eq))
	return nil
}

func (in *Interp) popEqual() (bool, error) {
	tos, err := in.Pop()
	if err != nil {
		return false, err
	}
	nos, err := in.Pop()
	if err != nil {
		return false, err
	}
	return Equal(nos, tos), nil
}

// compareWith builds an ordering word: both operands must be numbers, and
// are compared as float64 like binaryOp does.
func compareWith(cmp func(a, b float64) bool) Native {
	return func(in *Interp) error {
		tos, _, err := in.PopNumber()
		if err != nil {
			return err
		}
		nos, _, err := in.PopNumber()
		if err != nil {
			return err
		}
		in.Push(Bool(cmp(nos, tos)))
		return nil
	}
}
