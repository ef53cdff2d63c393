package handlers

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper"
	"github.com/aarondl/null/v8"
)

// NullString converts a string to null.String. Undefined, nil and "" become an
// invalid (SQL NULL) value.
func NullString(values ...any) (any, error) {
	const op errors.Op = "handlers.NullString"
	v := first(values)
	if v == nil || mapper.IsUndefined(v) {
		return null.String{}, nil
	}
	if ns, ok := v.(null.String); ok {
		return ns, nil
	}
	s, ok := v.(string)
	if !ok {
		return null.String{}, errors.New(op).Errorf("Given parameter not a string, got %T", v)
	}
	if s == "" {
		return null.String{}, nil
	}
	return null.StringFrom(s), nil
}

// NullBool converts a bool to null.Bool. Undefined and nil become invalid.
func NullBool(values ...any) (any, error) {
	const op errors.Op = "handlers.NullBool"
	v := first(values)
	if v == nil || mapper.IsUndefined(v) {
		return null.Bool{}, nil
	}
	b, ok := v.(bool)
	if !ok {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", v)
	}
	return null.BoolFrom(b), nil
}

// FromNull unwraps null.String, null.Bool, null.Int64 and null.Float64 values:
// valid ones yield the plain value, invalid ones yield nil. Other values pass through.
func FromNull(values ...any) (any, error) {
	v := first(values)
	switch t := v.(type) {
	case null.String:
		if !t.Valid {
			return nil, nil
		}
		return t.String, nil
	case null.Bool:
		if !t.Valid {
			return nil, nil
		}
		return t.Bool, nil
	case null.Int64:
		if !t.Valid {
			return nil, nil
		}
		return t.Int64, nil
	case null.Float64:
		if !t.Valid {
			return nil, nil
		}
		return t.Float64, nil
	}
	return v, nil
}
