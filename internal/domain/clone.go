package domain

// CloneValue deep-copies an opaque payload built from maps, slices and
// scalars (the shape produced by decoding JSON into any). Values of other
// kinds are returned as-is; callers hand us plain data, not channels or
// funcs.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = CloneValue(inner)
		}
		return out
	case []any:
		if val == nil {
			return []any(nil)
		}
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = CloneValue(inner)
		}
		return out
	case []string:
		if val == nil {
			return []string(nil)
		}
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// CloneStringMap deep-copies a string-keyed payload map. Nil stays nil so
// callers can distinguish "absent" from "empty".
func CloneStringMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cloned, _ := CloneValue(m).(map[string]any)
	return cloned
}
