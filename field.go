package mapper

import (
	"github.com/Station-Manager/errors"
)

// mapField derives the value of one destination field.
func mapField(src any, field string, r Rule) (any, error) {
	const op errors.Op = "mapper.mapField"

	if r.multi() {
		values := make([]any, len(r.Keys))
		for i, k := range r.Keys {
			values[i] = Resolve(src, k)
		}
		if r.Handler == nil {
			return nil, &ConfigurationError{Field: field}
		}
		out, err := r.Handler(values...)
		if err != nil {
			return nil, errors.New(op).Err(err).Msg("handler failed for field " + field)
		}
		return out, nil
	}

	key := r.path(field)
	value := Resolve(src, key)
	if IsUndefined(value) {
		if r.Required {
			return nil, &ValidationError{Field: field, Path: key}
		}
		if def, ok := r.Default(); ok {
			value = def
		}
	}

	if r.Handler != nil {
		out, err := r.Handler(value)
		if err != nil {
			return nil, errors.New(op).Err(err).Msg("handler failed for field " + field)
		}
		value = out
	}
	return value, nil
}
