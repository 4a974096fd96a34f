package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// renderTree renders v (an *aqt.Root or any nested value within it) as an
// indented outline, one field per line, skipping every zero-valued field
// (zero structs included) whatever its struct tags say.
func renderTree(v any) string {
	var b strings.Builder
	writeNode(&b, reflect.ValueOf(v), 0)
	return b.String()
}

func writeNode(b *strings.Builder, v reflect.Value, depth int) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		writeStruct(b, v, depth)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			indent(b, depth)
			fmt.Fprintf(b, "- [%d]\n", i)
			writeNode(b, v.Index(i), depth+1)
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
		for _, k := range keys {
			indent(b, depth)
			fmt.Fprintf(b, "- %v:\n", k)
			writeNode(b, v.MapIndex(k), depth+1)
		}
	default:
		indent(b, depth)
		fmt.Fprintf(b, "%v\n", v.Interface())
	}
}

func writeStruct(b *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		if isZero(fv) {
			continue
		}
		name := field.Name

		switch fv.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Array, reflect.Map:
			indent(b, depth)
			fmt.Fprintf(b, "%s:\n", name)
			writeNode(b, fv, depth+1)
		case reflect.Struct:
			indent(b, depth)
			fmt.Fprintf(b, "%s:\n", name)
			writeStruct(b, fv, depth+1)
		default:
			indent(b, depth)
			fmt.Fprintf(b, "%s: %v\n", name, fv.Interface())
		}
	}
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.Array:
		return v.Len() == 0
	case reflect.Struct:
		return v.IsZero()
	default:
		return v.IsZero()
	}
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}
