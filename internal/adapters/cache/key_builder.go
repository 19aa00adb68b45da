package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// Key builds a hierarchical cache key: domain tag, kind ("list"/"detail"),
// then one canonical segment per argument. Segments are deterministic, so
// semantically equal filter objects always map to the same key, and
// KeyPrefix targets a whole family for invalidation.
func Key(domainTag, kind string, args ...any) string {
	parts := make([]string, 0, 2+len(args))
	parts = append(parts, domainTag, kind)
	for _, arg := range args {
		parts = append(parts, serializeValue(arg))
	}
	return strings.Join(parts, KeySeparator)
}

// KeyPrefix returns the prefix shared by every key of (domainTag, kind),
// including the trailing separator so "experts::list" cannot accidentally
// match "experts::listing".
func KeyPrefix(domainTag, kind string) string {
	return domainTag + KeySeparator + kind + KeySeparator
}

// serializeValue renders one argument deterministically: pointers are
// dereferenced, nils are explicit, map keys are sorted, structs serialize
// exported fields in declaration order.
func serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf(v)

	switch rt.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return serializeValue(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = serializeValue(rv.Index(i).Interface())
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ","))

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		pairs := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%s",
				serializeValue(k.Interface()), serializeValue(rv.MapIndex(k).Interface())))
		}
		sort.Strings(pairs)
		return fmt.Sprintf("{%s}", strings.Join(pairs, ","))

	case reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = serializeValue(rv.Index(i).Interface())
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ","))

	case reflect.Struct:
		parts := make([]string, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s:%s", field.Name, serializeValue(rv.Field(i).Interface())))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ","))

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprintf("%v", v)
	}

	// JSON fallback for anything exotic.
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("opaque:%s", rt.String())
	}
	return string(data)
}
