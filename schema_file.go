package mapper

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema documents describe one object per destination field:
//
//	full_name:
//	  key: [name.first, name.last]
//	  handler: join
//	city:
//	  key: address.city
//	  default: unknown
//	id:
//	  required: true
//
// "key" is a dot-path or a list of dot-paths, "default" applies whenever present
// (including null), "required" is a bool and "handler" names an entry of the Registry.

// LoadSchemaJSON parses a JSON schema document, resolving handler names in reg.
func LoadSchemaJSON(data []byte, reg *Registry) (Schema, error) {
	const op errors.Op = "mapper.LoadSchemaJSON"
	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return buildSchema(op, doc, reg)
}

// LoadSchemaYAML parses a YAML schema document, resolving handler names in reg.
func LoadSchemaYAML(data []byte, reg *Registry) (Schema, error) {
	const op errors.Op = "mapper.LoadSchemaYAML"
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return buildSchema(op, doc, reg)
}

func buildSchema(op errors.Op, doc map[string]map[string]any, reg *Registry) (Schema, error) {
	schema := make(Schema, len(doc))
	for name, fields := range doc {
		r, err := ruleFromDoc(op, name, fields, reg)
		if err != nil {
			return nil, err
		}
		schema[name] = r
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func ruleFromDoc(op errors.Op, name string, fields map[string]any, reg *Registry) (Rule, error) {
	var r Rule
	if raw, ok := fields["key"]; ok {
		switch k := raw.(type) {
		case string:
			r.Key = k
		case []any:
			r.Keys = make([]string, 0, len(k))
			for _, e := range k {
				s, ok := e.(string)
				if !ok {
					return Rule{}, errors.New(op).Errorf("field %s: key list entries must be strings, got %T", name, e)
				}
				r.Keys = append(r.Keys, s)
			}
		default:
			return Rule{}, errors.New(op).Errorf("field %s: key must be a string or a list, got %T", name, raw)
		}
	}
	if raw, ok := fields["required"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return Rule{}, errors.New(op).Errorf("field %s: required must be a bool, got %T", name, raw)
		}
		r.Required = b
	}
	if def, ok := fields["default"]; ok {
		r = r.WithDefault(def)
	}
	if raw, ok := fields["handler"]; ok {
		hName, ok := raw.(string)
		if !ok {
			return Rule{}, errors.New(op).Errorf("field %s: handler must be a name, got %T", name, raw)
		}
		if reg == nil {
			return Rule{}, errors.New(op).Errorf("field %s: handler %q given but no registry", name, hName)
		}
		h, found := reg.Lookup(hName)
		if !found {
			return Rule{}, errors.New(op).Errorf("field %s: unknown handler %q", name, hName)
		}
		r.Handler = h
	}
	return r, nil
}
