package accept

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	jsoniter "github.com/json-iterator/go"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

// GenericOrder is the order of the generic fallback strategy.
const GenericOrder = math.MinInt32

var (
	// ErrNull indicates null was given for a parameter that cannot hold nil.
	ErrNull = errors.New("null for non-nillable type")

	// ErrSchema indicates the input failed the schema derived from the
	// parameter type.
	ErrSchema = errors.New("schema validation failed")
)

var emptyInterface = reflect.TypeOf((*any)(nil)).Elem()

// GenericStrategy coerces any value into any JSON-decodable type by rendering
// it as JSON and decoding that text into the parameter type.
//
// One-character strings bound to byte or rune elements are taken as their
// code point first, so "a" fills a byte with 97.
//
// Before decoding, the input is validated against a JSON schema derived from
// the parameter type, which catches range errors such as 300 for an int8. Types
// the schema generator cannot describe skip validation.
type GenericStrategy struct {
	api     jsoniter.API
	schemas sync.Map // reflect.Type -> *jsonschema.Resolved (nil when unavailable)
}

// NewGenericStrategy creates the fallback strategy.
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{
		api: jsoniter.Config{
			EscapeHTML:             false,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			DisallowUnknownFields:  true,
		}.Froze(),
	}
}

func (g *GenericStrategy) Name() string       { return "generic" }
func (g *GenericStrategy) Type() reflect.Type { return Any }
func (g *GenericStrategy) Order() int         { return GenericOrder }

// Accept decodes v into p.Type.
func (g *GenericStrategy) Accept(p callable.Param, v value.Value) (reflect.Value, error) {
	t := p.Type
	if isNull(v) {
		if nillable(t) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNull, t)
	}
	if t == emptyInterface {
		native := value.Native(v)
		return reflect.ValueOf(&native).Elem(), nil
	}

	v, err := chars(t, v)
	if err != nil {
		return reflect.Value{}, err
	}

	if rs := g.schema(t); rs != nil {
		if err := rs.Validate(value.Native(v)); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrSchema, err)
		}
	}

	text, err := value.JSON(v)
	if err != nil {
		return reflect.Value{}, err
	}
	ptr := reflect.New(t)
	if err := g.api.UnmarshalFromString(text, ptr.Interface()); err != nil {
		return reflect.Value{}, fmt.Errorf("decode %s into %s: %w", text, t, err)
	}
	return ptr.Elem(), nil
}

// schema returns the resolved schema for t, caching misses as nil.
func (g *GenericStrategy) schema(t reflect.Type) *jsonschema.Resolved {
	if cached, ok := g.schemas.Load(t); ok {
		return cached.(*jsonschema.Resolved)
	}
	var rs *jsonschema.Resolved
	if s, err := jsonschema.ForType(t, nil); err == nil {
		if resolved, err := s.Resolve(nil); err == nil {
			rs = resolved
		}
	}
	g.schemas.Store(t, rs)
	return rs
}

func isNull(v value.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(value.Null)
	return ok
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
