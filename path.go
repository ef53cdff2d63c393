package mapper

import (
	"reflect"
	"strings"
)

// splitPath splits a dot-path into its segments. The returned slice is never shared
// with the caller's data, so walking it cannot disturb the rule it came from.
func splitPath(path string) []string {
	return strings.Split(path, ".")
}

// Resolve looks up a dot-path such as "user.address.city" in src. It returns
// Undefined when any segment is missing or when an intermediate value is falsy
// (nil, false, 0, ""). Resolve never fails and never mutates src.
func Resolve(src any, path string) any {
	return resolveSegments(src, splitPath(path))
}

// resolveSegments walks an already-segmented path.
func resolveSegments(src any, segments []string) any {
	cur := src
	for i, seg := range segments {
		if isFalsy(cur) {
			return Undefined
		}
		next, ok := index(cur, seg)
		if !ok {
			return Undefined
		}
		if i == len(segments)-1 {
			return next
		}
		cur = next
	}
	// Only reachable with zero segments.
	return Undefined
}

// index returns cur[key] when cur is a string-keyed map holding key.
func index(cur any, key string) (any, bool) {
	switch m := cur.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}
	rv := reflect.ValueOf(cur)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// topLevelKeys lists the keys of src when it is a string-keyed map.
func topLevelKeys(src any) []string {
	switch m := src.(type) {
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys
	case map[string]string:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	return keys
}
