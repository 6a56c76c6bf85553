package code

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"sort"
	"strconv"
	"strings"
)

// DSImportPath is the package the injected TreeNode and ListNode aliases
// refer to.
const DSImportPath = "github.com/jonwraymond/lcdebug/ds"

const dsAlias = "lcds"

// dsTypes maps each shared node type to the field names a pasted
// declaration must have to be replaced by the alias.
var dsTypes = map[string][]string{
	"ListNode": {"Next", "Val"},
	"TreeNode": {"Left", "Right", "Val"},
}

type edit struct {
	start, end int
	text       string
}

// analyze parses src and produces the rewritten source plus the callables it
// declares. Original lines keep their numbers so interpreter errors point at
// the user's code.
func analyze(filename string, src []byte) (*unit, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	tf := fset.File(file.Pos())
	off := func(p token.Pos) int { return tf.Offset(p) }

	u := &unit{filename: filename}
	var edits []edit
	declared := map[string]*ast.TypeSpec{}
	methods := map[string][]funcInfo{}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				declared[ts.Name.Name] = ts
				if fields, ok := dsTypes[ts.Name.Name]; ok && ts.TypeParams == nil && matchesFields(ts, fields) {
					if len(d.Specs) == 1 {
						edits = append(edits, blank(src, off(d.Pos()), off(d.End())))
					} else {
						edits = append(edits, blank(src, off(ts.Pos()), off(ts.End())))
					}
					u.aliases = append(u.aliases, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			if d.Type.TypeParams != nil || d.Name.Name == "_" || d.Name.Name == "init" {
				continue
			}
			if d.Recv == nil && d.Name.Name == "main" {
				edits = append(edits, blank(src, off(d.Pos()), off(d.End())))
				continue
			}
			info := describe(fset, d)
			if d.Recv != nil {
				if info.Recv != "" {
					methods[info.Recv] = append(methods[info.Recv], info)
				}
				continue
			}
			u.functions = append(u.functions, info)
		}
	}

	for name := range dsTypes {
		if _, ok := declared[name]; ok || !usesIdent(file, name) {
			continue
		}
		u.aliases = append(u.aliases, name)
	}
	sort.Strings(u.aliases)

	u.functions, u.designs = splitDesigns(u.functions, methods, declared)

	head := "main"
	if len(u.aliases) > 0 {
		head += fmt.Sprintf("; import %s %q", dsAlias, DSImportPath)
	}
	edits = append(edits, edit{start: off(file.Name.Pos()), end: off(file.Name.End()), text: head})

	var buf bytes.Buffer
	buf.Write(apply(src, edits))
	writeGenerated(&buf, u)
	u.source = buf.String()
	return u, nil
}

// splitDesigns moves constructors out of the function list. A constructor is
// "Constructor" or "New<Type>" returning a declared type or a pointer to it.
func splitDesigns(funcs []funcInfo, methods map[string][]funcInfo, declared map[string]*ast.TypeSpec) ([]funcInfo, []designInfo) {
	var plain []funcInfo
	var designs []designInfo
	index := map[string]int{}

	for _, f := range funcs {
		typ, ptr, ok := constructed(f, declared)
		if !ok {
			plain = append(plain, f)
			continue
		}
		i, seen := index[typ]
		if !seen {
			i = len(designs)
			index[typ] = i
			designs = append(designs, designInfo{Type: typ, Methods: methods[typ]})
		}
		designs[i].Constructors = append(designs[i].Constructors, f)
		designs[i].pointerCtor = append(designs[i].pointerCtor, ptr)
	}

	// "Constructor" is the conventional design entry point; its design goes first.
	sort.SliceStable(designs, func(i, j int) bool {
		return hasCtor(designs[i], "Constructor") && !hasCtor(designs[j], "Constructor")
	})
	return plain, designs
}

func constructed(f funcInfo, declared map[string]*ast.TypeSpec) (typ string, ptr bool, ok bool) {
	if len(f.Results) != 1 {
		return "", false, false
	}
	typ = strings.TrimPrefix(f.Results[0], "*")
	ptr = typ != f.Results[0]
	if ts, found := declared[typ]; !found || ts.TypeParams != nil {
		return "", false, false
	}
	if f.Name != "Constructor" && f.Name != "New"+typ {
		return "", false, false
	}
	return typ, ptr, true
}

func hasCtor(d designInfo, name string) bool {
	for _, c := range d.Constructors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// describe extracts names and printed types of a function declaration.
func describe(fset *token.FileSet, d *ast.FuncDecl) funcInfo {
	info := funcInfo{Name: d.Name.Name, Line: fset.Position(d.Pos()).Line}
	if d.Recv != nil && len(d.Recv.List) == 1 {
		info.Recv = receiverName(d.Recv.List[0].Type)
	}
	for _, field := range d.Type.Params.List {
		typ := exprString(fset, field.Type)
		if _, ok := field.Type.(*ast.Ellipsis); ok {
			info.variadic = true
		}
		if len(field.Names) == 0 {
			info.Params = append(info.Params, "")
			info.Types = append(info.Types, typ)
			continue
		}
		for _, n := range field.Names {
			name := n.Name
			if name == "_" {
				name = ""
			}
			info.Params = append(info.Params, name)
			info.Types = append(info.Types, typ)
		}
	}
	if d.Type.Results != nil {
		for _, field := range d.Type.Results.List {
			typ := exprString(fset, field.Type)
			count := max(len(field.Names), 1)
			for range count {
				info.Results = append(info.Results, typ)
			}
		}
	}
	return info
}

// receiverName returns the base type name of a receiver, or "" for generic
// receivers.
func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func matchesFields(ts *ast.TypeSpec, want []string) bool {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return false
	}
	var names []string
	for _, f := range st.Fields.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}
	sort.Strings(names)
	if len(names) != len(want) {
		return false
	}
	for i := range names {
		if names[i] != want[i] {
			return false
		}
	}
	return true
}

func usesIdent(file *ast.File, name string) bool {
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}
		return !found
	})
	return found
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	_ = printer.Fprint(&buf, fset, expr)
	return buf.String()
}

// blank replaces a range with spaces, keeping line breaks.
func blank(src []byte, start, end int) edit {
	b := make([]byte, end-start)
	for i := range b {
		if c := src[start+i]; c == '\n' || c == '\r' {
			b[i] = c
		} else {
			b[i] = ' '
		}
	}
	return edit{start: start, end: end, text: string(b)}
}

func apply(src []byte, edits []edit) []byte {
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	out := append([]byte(nil), src...)
	for _, e := range edits {
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return out
}

// writeGenerated appends the aliases and the exported wrappers the loader
// looks up after evaluation.
func writeGenerated(buf *bytes.Buffer, u *unit) {
	buf.WriteString("\n\n// Code generated by lcdebug. DO NOT EDIT.\n")
	for _, name := range u.aliases {
		fmt.Fprintf(buf, "\ntype %s = %s.%s\n", name, dsAlias, name)
	}
	for _, f := range u.functions {
		writeWrapper(buf, funcWrapper(f.Name), "", f, f.Name, false)
	}
	for _, d := range u.designs {
		for i, c := range d.Constructors {
			writeWrapper(buf, ctorWrapper(d.Type, c.Name), "", c, c.Name, !d.pointerCtor[i])
		}
		for _, m := range d.Methods {
			writeWrapper(buf, methodWrapper(d.Type, m.Name), d.Type, m, "this."+m.Name, false)
		}
	}
}

// writeWrapper emits an exported function forwarding to call. A non-empty
// recv adds a leading "this *recv" parameter. addr makes a value-returning
// constructor return a pointer to its result.
func writeWrapper(buf *bytes.Buffer, name, recv string, f funcInfo, call string, addr bool) {
	params := make([]string, 0, len(f.Types)+1)
	args := make([]string, 0, len(f.Types))
	if recv != "" {
		params = append(params, "this *"+recv)
	}
	for i, typ := range f.Types {
		p := "p" + strconv.Itoa(i)
		params = append(params, p+" "+typ)
		if f.variadic && i == len(f.Types)-1 {
			p += "..."
		}
		args = append(args, p)
	}
	invoke := fmt.Sprintf("%s(%s)", call, strings.Join(args, ", "))

	var results, body string
	switch {
	case addr:
		results = " *" + f.Results[0]
		body = fmt.Sprintf("v := %s\n\treturn &v", invoke)
	case len(f.Results) == 0:
		body = invoke
	case len(f.Results) == 1:
		results = " " + f.Results[0]
		body = "return " + invoke
	default:
		results = " (" + strings.Join(f.Results, ", ") + ")"
		body = "return " + invoke
	}
	fmt.Fprintf(buf, "\nfunc %s(%s)%s {\n\t%s\n}\n", name, strings.Join(params, ", "), results, body)
}

// syntaxError converts a parser error into a *CodeError at its first
// position.
func syntaxError(filename string, err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		return &CodeError{
			Path:    filename,
			Message: "syntax error: " + first.Msg,
			Line:    first.Pos.Line,
			Column:  first.Pos.Column,
			Err:     err,
		}
	}
	return &CodeError{Path: filename, Message: "syntax error", Err: err}
}
