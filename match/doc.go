// Package match selects the callable whose parameters accept a parsed
// argument list.
//
// Candidates are tried in the order given. A candidate is skipped when its
// visible parameter count differs from the argument count; otherwise each
// argument is bound through the acceptance registry in parameter order, and
// the first rejected parameter ends that candidate's attempt. The first
// candidate whose every parameter binds wins; there is no search for a best
// match.
//
// When nothing matches, [*NoMatchError] carries one [Trace] per candidate and
// renders a report listing every strategy failure. The report is logged
// before the error is returned.
package match
