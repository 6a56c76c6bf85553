package code

import "github.com/jonwraymond/lcdebug/run"

// Program is a loaded solution.
type Program struct {
	// Path is the source file name used in messages.
	Path string

	// Target holds the top-level functions as candidates in declaration
	// order and, when the source declares a constructor, its design.
	Target run.Target

	// Designs lists every design found, the preferred one first.
	Designs []*run.Design

	// Source is the rewritten text that was evaluated.
	Source string
}

// funcInfo describes a top-level function or method.
type funcInfo struct {
	Name    string
	Recv    string
	Params  []string
	Types   []string
	Results []string
	Line    int

	variadic bool
}

// designInfo links a declared type to its constructors and methods.
type designInfo struct {
	Type         string
	Constructors []funcInfo
	Methods      []funcInfo

	// pointerCtor records, per constructor, whether it already returns *Type.
	pointerCtor []bool
}

// unit is the analyzed and rewritten form of one source file.
type unit struct {
	filename  string
	source    string
	functions []funcInfo
	designs   []designInfo
	aliases   []string
}

func funcWrapper(name string) string { return "LcdebugFunc_" + name }

func ctorWrapper(typ, name string) string { return "LcdebugCtor_" + typ + "_" + name }

func methodWrapper(typ, name string) string { return "LcdebugMethod_" + typ + "_" + name }
