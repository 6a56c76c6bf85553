// Package accept converts one [value.Value] into the native argument required
// by one formal parameter.
//
// Strategies live in a [Registry] partitioned by the parameter type they
// accept. For a given parameter the registry tries the bucket keyed by the
// exact declared type, in descending Order with ties broken by registration
// sequence, and then the wildcard bucket keyed by [Any]. The generic
// strategy sits in the wildcard bucket with the lowest order, so it is always
// the last resort.
//
// Each attempt works on a fresh clone of the input value. A strategy that
// cannot produce the required type returns an error; the registry records it
// as an [*AcceptanceError] and moves on.
//
// Built-ins:
//
//   - [TreeStrategy]: level-order list of ints and nulls into *ds.TreeNode
//   - [ListStrategy]: list of ints into *ds.ListNode
//   - [RawStrategy]: passes the IR through for value.Value parameters
//   - [GenericStrategy]: JSON round trip into any other type
package accept
