package handlers

import (
	"fmt"
	"strings"

	"github.com/Station-Manager/mapper"
)

// Join concatenates the present values of a multi-key rule with sep. Undefined and
// nil values are skipped; non-string values are formatted with %v.
func Join(sep string) mapper.Handler {
	return func(values ...any) (any, error) {
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v == nil || mapper.IsUndefined(v) {
				continue
			}
			if s, ok := v.(string); ok {
				parts = append(parts, s)
				continue
			}
			parts = append(parts, fmt.Sprintf("%v", v))
		}
		return strings.Join(parts, sep), nil
	}
}

// Coalesce returns the first value that is not Undefined, or Undefined when none is.
// nil counts as a present value.
func Coalesce(values ...any) (any, error) {
	for _, v := range values {
		if !mapper.IsUndefined(v) {
			return v, nil
		}
	}
	return mapper.Undefined, nil
}
