package value

// Clone returns a structural copy of v. Lists are copied recursively; scalar
// variants are values and are returned as is. A nil Value clones to Null.
func Clone(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case List:
		if t == nil {
			return List(nil)
		}
		out := make(List, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// CloneAll clones every element of args into a fresh slice.
func CloneAll(args []Value) []Value {
	out := make([]Value, len(args))
	for i, v := range args {
		out[i] = Clone(v)
	}
	return out
}

// Equal reports whether a and b are structurally equal.
// A nil Value is treated as Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	la, ok := a.(List)
	if !ok {
		return a == b
	}
	lb := b.(List)
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if !Equal(la[i], lb[i]) {
			return false
		}
	}
	return true
}

// Native converts v into plain Go values: nil, bool, int64, float64, string
// and []any for lists.
func Native(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case List:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Native(e)
		}
		return out
	default:
		return nil
	}
}
