package printer

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var jsonMarshaler = reflect.TypeOf((*interface{ MarshalJSON() ([]byte, error) })(nil)).Elem()

// textExtension overrides the JSON encoding of bytes and floats for result
// text: a byte is a character, so []byte{'a','b'} prints as ["a","b"]
// instead of base64, and a whole float keeps its fraction, so 2.0 prints as
// 2.0 instead of 2. Types with their own MarshalJSON are left alone.
type textExtension struct {
	jsoniter.DummyExtension
}

func (textExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	t := typ.Type1()
	if t.Implements(jsonMarshaler) || reflect.PointerTo(t).Implements(jsonMarshaler) {
		return nil
	}
	switch t.Kind() {
	case reflect.Uint8:
		return charEncoder{}
	case reflect.Float32:
		return floatEncoder{bits: 32}
	case reflect.Float64:
		return floatEncoder{bits: 64}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return charsEncoder{typ: t}
		}
	}
	return nil
}

type charEncoder struct{}

func (charEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*uint8)(ptr) == 0
}

func (charEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(string(rune(*(*uint8)(ptr))))
}

// charsEncoder writes a byte slice as an array of one-character strings.
// A nil slice is null.
type charsEncoder struct {
	typ reflect.Type
}

func (e charsEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.NewAt(e.typ, ptr).Elem().Len() == 0
}

func (e charsEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := reflect.NewAt(e.typ, ptr).Elem()
	if v.IsNil() {
		stream.WriteNil()
		return
	}
	stream.WriteArrayStart()
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(string(rune(v.Index(i).Uint())))
	}
	stream.WriteArrayEnd()
}

type floatEncoder struct {
	bits int
}

func (e floatEncoder) load(ptr unsafe.Pointer) float64 {
	if e.bits == 32 {
		return float64(*(*float32)(ptr))
	}
	return *(*float64)(ptr)
}

func (e floatEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return e.load(ptr) == 0
}

func (e floatEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	f := e.load(ptr)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		stream.Error = fmt.Errorf("unsupported float value %v", f)
		return
	}
	s := strconv.FormatFloat(f, 'f', -1, e.bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	stream.WriteRaw(s)
}
