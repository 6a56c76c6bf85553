// Package callable wraps Go functions behind a uniform descriptor that the
// matcher and executor can inspect and invoke.
//
// A [Descriptor] exposes a name, an ordered parameter list, a return type and
// an Invoke operation. Two variants exist and are fixed at construction:
//
//   - [KindPlain] wraps an ordinary function; every Go parameter is visible.
//   - [KindReceiver] wraps a function whose first Go parameter is an implicit
//     receiver (a method expression such as (*MinStack).Push, or a constructor
//     bound to an outer value). The receiver is hidden from ParamCount, Params
//     and String, and Invoke supplies it from the call target.
//
// Every descriptor receives a process-unique id from an atomic counter. Ids are
// for identity and lookup only and carry no ordering meaning.
package callable
