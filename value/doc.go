// Package value defines the intermediate representation produced by the line parser.
//
// A [Value] is a tagged union over six variants: [Null], [Bool], [Int], [Float],
// [String] and [List]. Trees are built fresh for every parsed line and are never
// shared across acceptance attempts; callers that coerce a Value into a native
// argument work on a [Clone].
//
// Every variant renders a canonical text form through String that the parser
// accepts back, and marshals to JSON through MarshalJSON. Floats always keep a
// fractional part in both forms so that a round trip preserves the variant.
package value
