package handlers

import (
	"strings"

	"github.com/Station-Manager/mapper"
)

// Compose chains handlers left-to-right. The first handler receives the resolved
// values; every later one receives the previous result. An error aborts the chain
// and a nil result is returned immediately.
func Compose(hs ...mapper.Handler) mapper.Handler {
	return func(values ...any) (any, error) {
		if len(hs) == 0 {
			return first(values), nil
		}
		cur, err := hs[0](values...)
		if err != nil {
			return nil, err
		}
		for _, h := range hs[1:] {
			if cur == nil {
				return nil, nil
			}
			if cur, err = h(cur); err != nil {
				return nil, err
			}
		}
		return cur, nil
	}
}

// MapString returns a handler applying f when the value is a string; any other
// value, Undefined included, is returned unchanged.
func MapString(f func(string) string) mapper.Handler {
	return func(values ...any) (any, error) {
		v := first(values)
		if s, ok := v.(string); ok {
			return f(s), nil
		}
		return v, nil
	}
}

var (
	Upper     = MapString(strings.ToUpper)
	Lower     = MapString(strings.ToLower)
	TrimSpace = MapString(strings.TrimSpace)
)

// Suffix appends s to string values.
func Suffix(s string) mapper.Handler {
	return MapString(func(v string) string { return v + s })
}

func first(values []any) any {
	if len(values) == 0 {
		return mapper.Undefined
	}
	return values[0]
}
