package mapper

import "sort"

// Handler transforms resolved source values into a destination value.
// Single-key rules call it with exactly one value (possibly Undefined); multi-key
// rules call it with one value per key, in key order.
type Handler func(values ...any) (any, error)

// Rule describes how one destination field is derived from the source.
type Rule struct {
	// Key is a single dot-path. Empty means the destination field name is used.
	Key string
	// Keys lists several independent dot-paths. A non-nil Keys takes precedence over
	// Key and requires a Handler.
	Keys []string
	// Required makes a missing single-key value an error.
	Required bool
	// Handler is applied to the resolved value(s).
	Handler Handler

	def        any
	hasDefault bool
}

// WithDefault returns a copy of r that substitutes v for a missing single-key value.
// v may be nil; the default is applied because it was set, not because it is truthy.
func (r Rule) WithDefault(v any) Rule {
	r.def = v
	r.hasDefault = true
	return r
}

// Default returns the default value and whether one was set.
func (r Rule) Default() (any, bool) { return r.def, r.hasDefault }

// multi reports whether r uses the multi-key branch.
func (r Rule) multi() bool { return r.Keys != nil }

// path returns the single key path for field, defaulting to the field name.
func (r Rule) path(field string) string {
	if r.Key != "" {
		return r.Key
	}
	return field
}

// Schema maps destination field names to their rules.
type Schema map[string]Rule

// fieldNames returns the destination names in sorted order.
func (s Schema) fieldNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports authoring defects that mapping would otherwise only surface
// when the offending field is reached.
func (s Schema) Validate() error {
	for _, name := range s.fieldNames() {
		r := s[name]
		if r.multi() && r.Handler == nil {
			return &ConfigurationError{Field: name}
		}
	}
	return nil
}
