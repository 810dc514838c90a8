package format

import "reflect"

// maxDepth bounds the walk; deeper payloads are treated like cycles.
const maxDepth = 1000

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// hasCycle reports whether v reaches itself through a map, slice or pointer
// on a single path. Shared references that do not loop are fine.
func hasCycle(v reflect.Value) bool {
	return walk(v, make(map[visit]struct{}), 0)
}

func walk(v reflect.Value, path map[visit]struct{}, depth int) bool {
	if depth > maxDepth {
		return true
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return walk(v.Elem(), path, depth+1)

	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
			return false
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if _, onPath := path[key]; onPath {
			return true
		}
		path[key] = struct{}{}
		defer delete(path, key)

		switch v.Kind() {
		case reflect.Pointer:
			return walk(v.Elem(), path, depth+1)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if walk(iter.Value(), path, depth+1) {
					return true
				}
			}
		default:
			for i := range v.Len() {
				if walk(v.Index(i), path, depth+1) {
					return true
				}
			}
		}

	case reflect.Array:
		for i := range v.Len() {
			if walk(v.Index(i), path, depth+1) {
				return true
			}
		}

	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if walk(v.Field(i), path, depth+1) {
				return true
			}
		}
	}
	return false
}
