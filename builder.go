package mapper

// SchemaBuilder provides a fluent API to assemble a Schema field by field.
type SchemaBuilder struct {
	fields Schema
	opts   []Option
}

// NewSchemaBuilder creates a new builder.
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{fields: make(Schema)}
}

// Field registers a complete rule for a destination field, replacing any earlier one.
func (b *SchemaBuilder) Field(name string, r Rule) *SchemaBuilder {
	b.fields[name] = r
	return b
}

// Map copies the value at key into name. An empty key means name itself.
func (b *SchemaBuilder) Map(name, key string) *SchemaBuilder {
	return b.Field(name, Rule{Key: key})
}

// Default maps key into name, substituting v when key is missing.
func (b *SchemaBuilder) Default(name, key string, v any) *SchemaBuilder {
	return b.Field(name, Rule{Key: key}.WithDefault(v))
}

// Require maps key into name and fails the mapping when key is missing.
func (b *SchemaBuilder) Require(name, key string) *SchemaBuilder {
	return b.Field(name, Rule{Key: key, Required: true})
}

// Transform maps key into name through h.
func (b *SchemaBuilder) Transform(name, key string, h Handler) *SchemaBuilder {
	return b.Field(name, Rule{Key: key, Handler: h})
}

// Combine resolves every key and passes the values to h, in order.
func (b *SchemaBuilder) Combine(name string, keys []string, h Handler) *SchemaBuilder {
	return b.Field(name, Rule{Keys: append([]string{}, keys...), Handler: h})
}

// WithOptions appends mapper options used by Mapper.
func (b *SchemaBuilder) WithOptions(opts ...Option) *SchemaBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build returns a copy of the assembled schema.
func (b *SchemaBuilder) Build() Schema {
	s := make(Schema, len(b.fields))
	for k, v := range b.fields {
		s[k] = v
	}
	return s
}

// Mapper builds the schema and compiles it with the builder's options.
func (b *SchemaBuilder) Mapper() *Mapper {
	return New(b.Build(), b.opts...)
}
