// Package maputil provides the nested map operations shared by the
// codestart data composer and writers: right-biased deep merge and dotted-key
// flatten/unflatten.
package maputil

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

// DeepMerge merges src into dst in place. A key recurses only when both
// sides hold a nested map; any other src value (scalar, list, nil) replaces
// the dst value wholesale.
func DeepMerge(dst, src map[string]any) {
	for key, right := range src {
		rightMap, rightIsMap := right.(map[string]any)
		leftMap, leftIsMap := dst[key].(map[string]any)
		if rightIsMap && leftIsMap {
			DeepMerge(leftMap, rightMap)
			continue
		}
		if rightIsMap {
			dst[key] = Copy(rightMap)
			continue
		}
		dst[key] = right
	}
}

// Merge folds maps left to right into a fresh map. Later maps win.
// The inputs are never mutated.
func Merge(maps ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range maps {
		DeepMerge(out, m)
	}
	return out
}

// Copy returns a deep copy of the nested map structure. Leaf values are
// shared.
func Copy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if child, ok := v.(map[string]any); ok {
			out[k] = Copy(child)
			continue
		}
		out[k] = v
	}
	return out
}

// Unflatten expands dotted keys into nested maps:
// {"a.b.c": 1} becomes {a: {b: {c: 1}}}.
//
// Keys are applied in sorted order, so a key always lands before the keys
// it prefixes. Expanding through a path segment already bound to a
// non-map value is a configuration error.
func Unflatten(flat map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(flat))
	for _, key := range keys {
		if err := setPath(out, key, flat[key]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func setPath(current map[string]any, key string, value any) error {
	if child, ok := value.(map[string]any); ok {
		value = Copy(child)
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return nil
		}

		switch existing := current[part].(type) {
		case nil:
			next := make(map[string]any)
			current[part] = next
			current = next
		case map[string]any:
			current = existing
		default:
			return oerrors.Wrap(oerrors.ErrConfiguration,
				fmt.Sprintf("conflicting data types for key %q: %q is already set to a %T",
					key, strings.Join(parts[:i+1], "."), existing))
		}
	}
	return nil
}

// Flatten collapses a nested map into dotted keys with stringified leaves.
// Lists are joined with commas; nil leaves become empty strings.
func Flatten(nested map[string]any) map[string]string {
	out := make(map[string]string)
	flatten("", nested, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := prefix + k
		if child, ok := v.(map[string]any); ok {
			flatten(key+".", child, out)
			continue
		}
		out[key] = Stringify(v)
	}
}

// Stringify renders a leaf value for flat formats.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

// Get looks up a dotted path in nested data. A path segment that does not
// resolve to a map ends the lookup with false.
func Get(data map[string]any, path string) (any, bool) {
	current := data
	parts := strings.Split(path, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// GetString looks up a dotted path and returns it only when it holds a
// non-empty string.
func GetString(data map[string]any, path string) (string, bool) {
	value, ok := Get(data, path)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Normalize converts decoder output into map[string]any trees, turning any
// map[any]any or map[string]string into map[string]any.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = Normalize(item)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}

// NormalizeMap is Normalize for a top-level map. A nil input yields an empty
// map.
func NormalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return Normalize(m).(map[string]any)
}
