package mapper

import (
	"fmt"
)

// Mapper applies a fixed schema with fixed options. The schema is copied and the
// inherit bookkeeping computed once, so a Mapper is safe for concurrent use.
type Mapper struct {
	schema   Schema
	names    []string
	consumed map[string]struct{}
	options  Options
}

// New compiles schema and opts into a reusable Mapper. Configuration errors are
// reported when a source is mapped; call Schema.Validate to catch them early.
func New(schema Schema, opts ...Option) *Mapper {
	s := make(Schema, len(schema))
	for k, v := range schema {
		if v.Keys != nil {
			v.Keys = append([]string{}, v.Keys...)
		}
		s[k] = v
	}
	return &Mapper{
		schema:   s,
		names:    s.fieldNames(),
		consumed: consumedKeys(s),
		options:  buildOptions(opts),
	}
}

// Options returns the normalized options of m.
func (m *Mapper) Options() Options { return m.options }

// Map builds a new object from src. A falsy src (nil, Undefined, false, zero, "",
// or an empty JSON carrier) is returned unchanged without consulting the schema.
// null.JSON, types.JSON, json.RawMessage and []byte sources are decoded first.
func (m *Mapper) Map(src any) (any, error) {
	if isFalsy(src) {
		return src, nil
	}
	decoded, err := decodeSource(src)
	if err != nil {
		return nil, err
	}
	if isFalsy(decoded) {
		return src, nil
	}
	return m.mapDecoded(decoded)
}

// MapObject maps an already decoded object. A nil src yields nil.
func (m *Mapper) MapObject(src Object) (Object, error) {
	if src == nil {
		return nil, nil
	}
	return m.mapDecoded(src)
}

// MapSlice maps every element of srcs, stopping at the first failure.
func (m *Mapper) MapSlice(srcs []any) ([]any, error) {
	out := make([]any, 0, len(srcs))
	for i, src := range srcs {
		v, err := m.Map(src)
		if err != nil {
			return nil, fmt.Errorf("mapping element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *Mapper) mapDecoded(src any) (Object, error) {
	dest := make(Object, len(m.names))
	for _, name := range m.names {
		v, err := mapField(src, name, m.schema[name])
		if err != nil {
			return nil, err
		}
		dest[name] = v
	}
	if m.options.Inherit {
		mergeInherited(src, m.consumed, dest)
	}
	return dest, nil
}

// Map maps src through schema. See Mapper.Map.
func Map(src any, schema Schema, opts ...Option) (any, error) {
	if isFalsy(src) {
		return src, nil
	}
	return New(schema, opts...).Map(src)
}

// MapObject maps an already decoded object through schema. See Mapper.MapObject.
func MapObject(src Object, schema Schema, opts ...Option) (Object, error) {
	if src == nil {
		return nil, nil
	}
	return New(schema, opts...).MapObject(src)
}

// MapSlice maps every element of srcs through schema. See Mapper.MapSlice.
func MapSlice(srcs []any, schema Schema, opts ...Option) ([]any, error) {
	return New(schema, opts...).MapSlice(srcs)
}
