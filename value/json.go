package value

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (b Bool) MarshalJSON() ([]byte, error) { return []byte(b.String()), nil }

func (i Int) MarshalJSON() ([]byte, error) { return []byte(i.String()), nil }

// MarshalJSON keeps the fractional part so that 2.0 does not decode as an integer.
func (f Float) MarshalJSON() ([]byte, error) { return []byte(f.String()), nil }

// MarshalJSON escapes the content as a JSON string.
func (s String) MarshalJSON() ([]byte, error) { return jsonAPI.Marshal(string(s)) }

func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, 2+4*len(l))
	buf = append(buf, '[')
	for i, v := range l {
		if i > 0 {
			buf = append(buf, ',')
		}
		if v == nil {
			buf = append(buf, "null"...)
			continue
		}
		b, err := jsonAPI.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return append(buf, ']'), nil
}

// JSON renders v as compact JSON text.
func JSON(v Value) (string, error) {
	if v == nil {
		return "null", nil
	}
	return jsonAPI.MarshalToString(v)
}
