package model

// deepCopy clones plain value trees made of string-keyed maps, slices,
// and scalars. Scalar leaves are returned as-is; unknown composite types
// are treated as scalars, which keeps the helper total for the value
// kinds fields hold.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopy(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return v
	}
}
