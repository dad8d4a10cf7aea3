// Package state implements the deep-merge rule applied by Component.SetState.
//
// Objects are map[string]any values; everything else, slices included, is a
// leaf that is replaced wholesale.
package state

// Merge merges partial into dst and returns the resulting state.
//
// A nil dst is replaced by a copy of partial. Otherwise, for every key in
// partial: when both the existing and the new value are objects the merge
// recurses into the existing object; in every other case the new value
// overwrites the existing one. Objects taken from partial are copied so later
// merges never write into the caller's maps.
func Merge(dst, partial map[string]any) map[string]any {
	if dst == nil {
		return Clone(partial)
	}
	for key, next := range partial {
		prev, isObj := dst[key].(map[string]any)
		nextObj, nextIsObj := next.(map[string]any)
		if isObj && prev != nil && nextIsObj {
			dst[key] = Merge(prev, nextObj)
			continue
		}
		dst[key] = cloneValue(next)
	}
	return dst
}

// Clone returns a deep copy of the object tree in m. Slices are copied
// shallowly.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		return append([]any(nil), val...)
	default:
		return v
	}
}

// Lookup walks a dotted path of object keys and returns the value found.
func Lookup(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
