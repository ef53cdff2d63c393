package mapper

// consumedKeys collects every source key a schema refers to. A single-key rule
// contributes each segment of its dot-path (the field name when Key is empty); a
// multi-key rule contributes its paths verbatim. Destination names are consumed too,
// so inherited raw values never replace mapped fields.
func consumedKeys(schema Schema) map[string]struct{} {
	consumed := make(map[string]struct{}, len(schema)*2)
	for name, r := range schema {
		consumed[name] = struct{}{}
		if r.multi() {
			for _, k := range r.Keys {
				consumed[k] = struct{}{}
			}
			continue
		}
		for _, seg := range splitPath(r.path(name)) {
			consumed[seg] = struct{}{}
		}
	}
	return consumed
}

// mergeInherited copies every top-level source key not in consumed into dest.
// Values are shared with src, not cloned.
func mergeInherited(src any, consumed map[string]struct{}, dest Object) {
	for _, k := range topLevelKeys(src) {
		if _, ok := consumed[k]; ok {
			continue
		}
		v, _ := index(src, k)
		dest[k] = v
	}
}
