package mapper

import (
	"math"
	"reflect"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// Object is a decoded key-value document, the shape produced by JSON or YAML decoding.
type Object = map[string]any

type undefined struct{}

// MarshalJSON encodes an undefined value as null. MapJSON removes undefined object
// keys before encoding, so this only applies to undefined values nested in slices.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (undefined) String() string { return "undefined" }

// Undefined marks "resolution found nothing". It is distinct from nil, which is a
// present value.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// isFalsy reports whether v counts as "no source at all": nil, Undefined, false,
// numeric zero (and NaN), the empty string, and empty or invalid JSON carriers.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case undefined:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case null.JSON:
		return !t.Valid || len(t.JSON) == 0
	case boilertypes.JSON:
		return len(t) == 0
	case json.RawMessage:
		return len(t) == 0
	case []byte:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
