package main

// @generated from interp_test.go

//go:generate go run scripts/gen_interp_expects.go -- interp_test.go interp_expects_test.go

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectError(err)
	}
}

func expectInterpErrorMessage(mess string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectErrorMessage(mess)
	}
}

func expectInterpStack(values ...Value) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectStack(values...)
	}
}

func expectInterpVar(name string, val Value) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectVar(name, val)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectOutput(output)
	}
}

func expectInterpWord(name string, body ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectWord(name, body...)
	}
}

func expectInterpCompiling(compiling bool) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectCompiling(compiling)
	}
}

func expectInterpDump(dump string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectDump(dump)
	}
}
