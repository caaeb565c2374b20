package logware

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Maximum recursion depth when rendering nested values
const maxRenderDepth = 10

// renderValue produces a compact structural rendering of a response
// value for log messages. It handles structs (exported fields), maps,
// slices and pointers, tracks visited pointers to survive cyclic
// values, and caps recursion depth so logging an outcome can never
// recurse without bound.
func renderValue(v any) string {
	if v == nil {
		return "<nil>"
	}

	var b strings.Builder
	visited := make(map[uintptr]bool)
	renderInto(&b, reflect.ValueOf(v), visited, 0)
	return b.String()
}

func renderInto(b *strings.Builder, val reflect.Value, visited map[uintptr]bool, depth int) {
	if depth > maxRenderDepth {
		b.WriteString("<max depth reached>")
		return
	}

	// Unwrap interfaces and pointers with cycle detection. Pointer() is
	// only legal on pointer-shaped kinds, so guard per kind.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				b.WriteString("<nil>")
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				b.WriteString("<nil>")
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				b.WriteString("<cycle>")
				return
			}
			visited[ptr] = true
			b.WriteByte('&')
			val = val.Elem()
			continue
		}
		break
	}

	if !val.IsValid() {
		b.WriteString("<invalid>")
		return
	}

	// Prefer an explicit Stringer over structural rendering, except for
	// the top-level fmt verbs below.
	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok {
			b.WriteString(s.String())
			return
		}
	}

	switch val.Kind() {
	case reflect.String:
		b.WriteString(strconv.Quote(val.String()))

	case reflect.Bool:
		b.WriteString(strconv.FormatBool(val.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(val.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(val.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(val.Float(), 'g', -1, 64))

	case reflect.Struct:
		b.WriteString(val.Type().Name())
		b.WriteByte('{')
		first := true
		for i := 0; i < val.NumField(); i++ {
			field := val.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(field.Name)
			b.WriteString(": ")
			renderInto(b, val.Field(i), visited, depth+1)
		}
		b.WriteByte('}')

	case reflect.Map:
		if val.IsNil() {
			b.WriteString("<nil>")
			return
		}
		b.WriteString("map{")
		keys := val.MapKeys()
		sortKeys(keys)
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			renderInto(b, key, visited, depth+1)
			b.WriteString(": ")
			renderInto(b, val.MapIndex(key), visited, depth+1)
		}
		b.WriteByte('}')

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			b.WriteString("<nil>")
			return
		}
		b.WriteByte('[')
		for i := 0; i < val.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			renderInto(b, val.Index(i), visited, depth+1)
		}
		b.WriteByte(']')

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		b.WriteByte('<')
		b.WriteString(val.Kind().String())
		b.WriteByte('>')

	default:
		if val.CanInterface() {
			fmt.Fprintf(b, "%v", val.Interface())
		} else {
			b.WriteByte('<')
			b.WriteString(val.Kind().String())
			b.WriteByte('>')
		}
	}
}

// sortKeys orders map keys deterministically so rendered messages are
// stable across runs. Non-primitive keys fall back to their fmt
// rendering for comparison.
func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}
	// Insertion sort; key sets in log messages are small.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keyLess(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

func keyLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	default:
		return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
	}
}
