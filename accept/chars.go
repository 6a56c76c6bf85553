package accept

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/jonwraymond/lcdebug/value"
)

// ErrChar indicates a string given for a byte or rune is not exactly one
// character.
var ErrChar = errors.New("not a single character")

// chars rewrites one-character strings into their code point wherever the
// matching element of t is a byte or a rune, so char grids such as
// [["1","0"],["0","1"]] decode into [][]byte. Other values pass through.
func chars(t reflect.Type, v value.Value) (value.Value, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Uint8:
		s, ok := v.(value.String)
		if !ok {
			return v, nil
		}
		r := []rune(string(s))
		if len(r) != 1 || r[0] > math.MaxUint8 {
			return nil, fmt.Errorf("%w: %s for %s", ErrChar, s, t)
		}
		return value.Int(r[0]), nil
	case reflect.Int32:
		s, ok := v.(value.String)
		if !ok {
			return v, nil
		}
		r := []rune(string(s))
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: %s for %s", ErrChar, s, t)
		}
		return value.Int(r[0]), nil
	case reflect.Slice, reflect.Array:
		l, ok := v.(value.List)
		if !ok {
			return v, nil
		}
		out := make(value.List, len(l))
		for i, item := range l {
			c, err := chars(t.Elem(), item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = c
		}
		return out, nil
	}
	return v, nil
}
