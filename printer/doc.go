// Package printer renders a callable's result as one output line.
//
// Printing strategies are bucketed by the type they render, with the same
// order and fallback rules as package accept: the exact bucket first, in
// descending Order, then the wildcard bucket holding the generic JSON
// printer. The bucket key is the callable's static return type when it names
// a concrete type, and the runtime type of the value otherwise.
//
// Printers are pure: the same value always renders to the same text.
package printer
