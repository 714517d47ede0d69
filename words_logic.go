package main

var logicWords = []Definition{
	{"and", logicWith(func(a, b bool) bool { return a && b })},
	{"or", logicWith(func(a, b bool) bool { return a || b })},
	{"not", Native(not)},
}

func logicWith(op func(a, b bool) bool) Native {
	return func(in *Interp) error {
		b, err := in.PopBool()
		if err != nil {
			return err
		}
		a, err := in.PopBool()
		if err != nil {
			return err
		}
		in.Push(Bool(op(a, b)))
		return nil
	}
}

func not(in *Interp) error {
	b, err := in.PopBool()
	if err != nil {
		return err
	}
	in.Push(Bool(!b))
	return nil
}
