package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// field represents a cached struct field.
type field struct {
	name   string
	idx    []int
	tagged bool
}

// fieldCache caches a map of column names to field properties for a
// given struct type.
var fieldCache sync.Map

// cachedFields uses reflection to parse a struct's tags and build a
// cache of its fields, keyed by lowercased column name. This is a
// performance optimization to avoid re-parsing tags for the same struct
// type on every unmarshal operation.
// It skips unexported fields and fields tagged with "dsv:-".
func cachedFields(t reflect.Type) map[string]field {
	if f, ok := fieldCache.Load(t); ok {
		return f.(map[string]field)
	}

	fields := make(map[string]field)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			// TODO: Handle embedded structs if desired in the future.
			continue
		}
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("dsv")
		if tag == "-" {
			continue
		}

		f := field{idx: sf.Index}
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
			f.tagged = true
		} else {
			f.name = sf.Name
		}

		key := strings.ToLower(f.name)
		if prev, ok := fields[key]; ok && prev.tagged && !f.tagged {
			// A tag binding beats a bare field name for the same column.
			continue
		}
		fields[key] = f
	}

	fieldCache.Store(t, fields)
	return fields
}
