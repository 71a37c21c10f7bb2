package translation

import "encoding/json"

// At walks nested arrays by successive indices. It reports false as soon as
// a step is not an array or an index is out of range.
func At(v any, path ...int) (any, bool) {
	for _, i := range path {
		arr, ok := v.([]any)
		if !ok || i < 0 || i >= len(arr) {
			return nil, false
		}
		v = arr[i]
	}
	return v, true
}

// Array returns the array at path, or nil.
func Array(v any, path ...int) []any {
	v, _ = At(v, path...)
	arr, _ := v.([]any)
	return arr
}

// String returns the string at path, or "".
func String(v any, path ...int) string {
	v, _ = At(v, path...)
	s, _ := v.(string)
	return s
}

// Number returns the number at path. Both float64 and json.Number leaves
// are accepted so trees decoded with UseNumber work too.
func Number(v any, path ...int) (float64, bool) {
	v, _ = At(v, path...)
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Strings returns the string elements of the array at path, skipping
// anything else. The result is never nil.
func Strings(v any, path ...int) []string {
	arr := Array(v, path...)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
