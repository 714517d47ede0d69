package main

// builtinWords lists the native word catalog, registered by New before the
// prelude. Later entries replace earlier ones of the same name.
var builtinWords = [][]Definition{
	mathWords,
	stackWords,
	comparisonWords,
	logicWords,
	stringWords,
	ioWords,
}
