// Package exec provides the session facade for debugging a Go solution
// against line-oriented test input.
//
// An [Exec] combines a [run.Target], an input provider, and an output
// consumer. [Exec.Run] reads argument lines until a blank line or end of
// input, feeds each one through the run pipeline, and writes the printed
// result:
//
//	twoSum := callable.MustNew(solution.TwoSum, callable.WithName("twoSum"))
//	session, err := exec.New(exec.Options{
//	    Target: run.Target{Candidates: []*callable.Descriptor{twoSum}},
//	    Input:  local.NewInput("[2,7,11,15], 9", "[3,2,4], 6"),
//	    Output: backend.NewConsoleOutput(),
//	})
//	summary, err := session.Run(ctx)
//
// # Errors
//
// The first failing line ends the session and its error is returned after
// input and output are closed. With [Options.ContinueOnError] the failure is
// written as an "error: ..." line and the session continues.
//
// # Single lines and design sequences
//
// [Exec.RunLine] executes one line without touching the I/O collaborators.
// [Exec.RunDesign] drives a design sequence from already-parsed operations
// and reports per-step results, marking operations after a failure as
// skipped.
//
// # Integration
//
//   - [github.com/jonwraymond/lcdebug/run] for the per-line pipeline
//   - [github.com/jonwraymond/lcdebug/backend] for input and output
//   - [github.com/jonwraymond/lcdebug/code] to load a target from source
package exec
