package mapper

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Decode converts a mapped object into T through a JSON round-trip. Undefined
// fields are dropped first, so they decode as T's zero values.
func Decode[T any](obj Object) (T, error) {
	var out T
	if obj == nil {
		return out, nil
	}
	err := convert(compact(obj), &out)
	return out, err
}

// Into maps src with m and decodes the result into T. A falsy src yields T's zero value.
func Into[T any](m *Mapper, src any) (T, error) {
	var zero T
	res, err := m.Map(src)
	if err != nil {
		return zero, err
	}
	obj, ok := res.(Object)
	if !ok {
		return zero, nil
	}
	return Decode[T](obj)
}

// MapTo maps src with m and returns a pointer to the decoded T.
func MapTo[T any](m *Mapper, src any) (*T, error) {
	d, err := Into[T](m, src)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
