// Package parse converts one raw input line into a list of [value.Value] trees.
//
// The grammar is deliberately small:
//
//	value  := array | string | number | bool | null
//	array  := '[' (value (',' value)*)? ']'
//	string := '"' char* '"'           // no escape processing
//	number := sign? digit+ ('.' digit+)?
//	bool   := "true" | "false"
//	null   := "null"
//
// A line holds any number of top-level values separated by commas or
// whitespace; each becomes one positional call argument. Numbers with a '.'
// are Floats, all others are Ints and must fit in 64 bits.
//
// Malformed input yields a [*ParseError] carrying the 1-based column and the
// offending character.
package parse
