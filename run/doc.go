// Package run executes one input line against a target: parse, match,
// invoke, print.
//
// A [Runner] holds an ordered list of stages built once at construction. The
// built-in stages parse the raw line into value trees and match them against
// the candidates of a [Target]; the runner then invokes the chosen callable
// and renders its result. Additional stages can be inserted with [WithStage].
//
// # Candidates
//
// Candidates are tried in this order: Target.Candidates, then the built-in
// design handler when Target.Design is set, then the exported methods of
// Target.Instance sorted by name.
//
// # Data-structure design
//
// A design line holds two arguments, an operation list and a list of
// argument lists:
//
//	["MinStack","push","push","getMin","pop"]
//	[[],[-2],[0],[],[]]
//
// The first operation always resolves against the design's constructors; its
// result becomes the shared instance and prints as null. Every later
// operation resolves against the methods of that name, trying the name as
// written and then title-cased ("push" finds Push). The line prints the list
// of results, for example [null,null,null,-2,null].
package run
