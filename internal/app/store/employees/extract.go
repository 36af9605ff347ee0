// internal/app/store/employees/extract.go
package employeestore

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// preferredKeys are tried first, in order, when extracting a scalar out of a
// nested object: name-like, then role-like, then label-like keys. The order
// is the precedence; do not reorder casually.
var preferredKeys = []string{
	"nome", "name",
	"funcao", "cargo", "role",
	"descricao", "description", "label", "titulo", "title", "valor", "value",
}

// ExtractString coerces an arbitrary document value into a scalar string.
//
// Strings are trimmed. Finite numbers become their decimal form. Boolean
// true becomes "true", false becomes "". Sequences yield the first element
// that extracts non-empty. Objects are searched in three passes: preferred
// keys in priority order, then boolean-true flag keys (the key name is the
// value, the common {fiscal: true} encoding of a role), then any remaining
// value that extracts non-empty. Everything else is "".
//
// ExtractString is total: no input makes it fail, absence is always "".
func ExtractString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case bool:
		if t {
			return "true"
		}
		return ""
	case []any:
		for _, e := range t {
			if s := ExtractString(e); s != "" {
				return s
			}
		}
		return ""
	case map[string]any:
		return extractFromObject(t)
	default:
		return numberString(v)
	}
}

func extractFromObject(obj map[string]any) string {
	seen := make(map[string]bool, len(preferredKeys))
	for _, k := range preferredKeys {
		seen[k] = true
		if v, ok := obj[k]; ok {
			if s := ExtractString(v); s != "" {
				return s
			}
		}
	}

	// Remaining keys in sorted order so the search is deterministic; the
	// source objects came out of a store that does not preserve key order.
	rest := make([]string, 0, len(obj))
	for k := range obj {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	for _, k := range rest {
		if b, ok := obj[k].(bool); ok && b {
			return k
		}
	}
	for _, k := range rest {
		if _, ok := obj[k].(bool); ok {
			continue
		}
		if s := ExtractString(obj[k]); s != "" {
			return s
		}
	}
	return ""
}

// FirstNonEmpty normalizes each value (trim strings, stringify finite
// numbers, anything else is empty) and returns the first non-empty result.
func FirstNonEmpty(values ...any) string {
	for _, v := range values {
		var s string
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		default:
			s = numberString(v)
		}
		if s != "" {
			return s
		}
	}
	return ""
}

func numberString(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case float32:
		return floatString(float64(n))
	case float64:
		return floatString(n)
	default:
		return ""
	}
}

func floatString(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ValueAtPath resolves a dot-separated path into nested maps and slices.
// Numeric segments index into slices. Any traversal through an absent or
// mismatched intermediate reports ok=false; it never panics.
func ValueAtPath(doc any, path string) (any, bool) {
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch t := cur.(type) {
		case map[string]any:
			v, ok := t[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
