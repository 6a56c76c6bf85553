// Package code loads a Go solution file and turns it into a run.Target.
//
// Solutions are ordinary Go source, usually pasted from an exercise site:
//
//	package main
//
//	func twoSum(nums []int, target int) []int { ... }
//
// or a data-structure design:
//
//	type MinStack struct { ... }
//	func Constructor() MinStack { ... }
//	func (this *MinStack) Push(val int) { ... }
//
// # Loading
//
// [Load] parses the file, rewrites it, and evaluates it with an [Engine]
// (the yaegi interpreter by default). The rewrite:
//
//   - renames the package to main and drops func main
//   - aliases TreeNode and ListNode to package ds when they are used but not
//     declared, or declared with the usual fields
//   - appends exported wrappers for every function, constructor, and method
//
// Rewriting keeps the user's line numbers, so a [CodeError] points at the
// original source.
//
// # Result
//
// Top-level functions become candidates in declaration order. A function
// named "Constructor" or "New<Type>" that returns a declared type (or a
// pointer to one) becomes a design over that type's methods, also in
// declaration order. A value-returning constructor is wrapped so the design
// instance is always a pointer.
package code
