// Package mapper builds new objects from decoded source objects according to a declarative schema.
//
// A Schema maps each destination field name to a Rule. The rule names where the value comes
// from (a dot-path into the source, or several of them), what to use when it is missing, whether
// it must be present, and an optional Handler that transforms it.
//
// Basic Usage
//
//	schema := mapper.Schema{
//	    "name":  {Key: "user.name", Required: true},
//	    "city":  mapper.Rule{Key: "user.address.city"}.WithDefault("unknown"),
//	    "label": {Keys: []string{"user.name", "user.id"}, Handler: handlers.Join("#")},
//	}
//	out, err := mapper.Map(src, schema)
//
// # Mapping Rules
//
// Each destination field is derived independently:
//  1. The key defaults to the destination field name
//  2. Several keys are resolved in order and passed to the handler, which is mandatory
//  3. A single missing key fails the call when Required is set
//  4. Otherwise the default, if one was set, replaces the missing value
//  5. The handler, if any, receives the value (Undefined when nothing was found)
//
// # Missing Values
//
// Missing values are represented by Undefined, which is distinct from nil: a source key holding
// nil is present. A field that resolves to nothing and has no default is kept in the result with
// the value Undefined. Falsy intermediate values (nil, false, 0, "") end a dot-path walk.
//
// # Inherit Mode
//
// WithInherit(true) copies every top-level source key the schema does not refer to into the
// result. A key counts as referenced when it is a destination name, a segment of any single-key
// dot-path, or one of the paths of a multi-key rule. Copied values are shared with the source.
//
// # Sources
//
// Map accepts decoded objects as well as null.JSON, sqlboiler types.JSON, json.RawMessage and
// []byte documents. A falsy source is returned unchanged. MapJSON works on encoded documents end
// to end, and Into decodes a mapped object into a struct.
//
// # Schema Files
//
// LoadSchemaJSON and LoadSchemaYAML read schemas from documents, resolving handler names through
// a Registry. The handlers subpackage provides the built-in handlers.
//
// # Thread Safety
//
// A Mapper is immutable once built and safe for concurrent use. Registry lookups are lock-free;
// registrations use copy-on-write.
package mapper
