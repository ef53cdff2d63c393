package mapper

import (
	"fmt"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// decodeSource unpacks JSON carriers into plain values. Any other src is returned as is.
func decodeSource(src any) (any, error) {
	const op errors.Op = "mapper.decodeSource"
	var raw []byte
	switch t := src.(type) {
	case null.JSON:
		raw = t.JSON
	case boilertypes.JSON:
		raw = t
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	default:
		return src, nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}

// compact returns a copy of v with Undefined object entries removed at every depth,
// matching how JSON encoders of dynamic objects drop absent values.
func compact(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if IsUndefined(e) {
				continue
			}
			out[k] = compact(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = compact(e)
		}
		return out
	}
	return v
}

// MapJSON decodes a JSON document, maps it and encodes the result. Keys whose value
// is Undefined are left out. A falsy document (null, false, 0, "") is returned as is.
func (m *Mapper) MapJSON(data []byte) ([]byte, error) {
	const op errors.Op = "mapper.MapJSON"
	var src any
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, errors.New(op).Err(err)
	}
	if isFalsy(src) {
		return data, nil
	}
	dest, err := m.mapDecoded(src)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(compact(dest))
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}

// MapJSON maps a JSON document through schema. See Mapper.MapJSON.
func MapJSON(data []byte, schema Schema, opts ...Option) ([]byte, error) {
	return New(schema, opts...).MapJSON(data)
}

// convert serializes the input to JSON and deserializes it into the target output.
// Fields are matched by their JSON names, so struct tags decide the layout.
func convert[Input any, Output any](input Input, output *Output) error {
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("mapper: marshal failed: %w", err)
	}
	if err = json.Unmarshal(data, output); err != nil {
		return fmt.Errorf("mapper: unmarshal failed: %w", err)
	}
	return nil
}
