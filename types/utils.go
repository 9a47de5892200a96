package types

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrFieldPath = errors.New("types: invalid field path")

// FieldPath2Index resolves a dotted field path such as "Info.Age" against
// typ and returns the index sequence for reflect.Value.FieldByIndex.
// Pointers to structs are followed.
func FieldPath2Index(typ reflect.Type, fieldPath string) ([]int, reflect.Type, error) {
	if fieldPath == "" {
		return nil, nil, fmt.Errorf("%w: empty path", ErrFieldPath)
	}
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, nil, fmt.Errorf("%w: %q is not a struct at %q", ErrFieldPath, typ, name)
		}
		field, ok := typ.FieldByName(name)
		if !ok || len(field.Index) != 1 {
			return nil, nil, fmt.Errorf("%w: no field %q in %s", ErrFieldPath, name, typ)
		}
		indices = append(indices, field.Index[0])
		typ = field.Type
	}
	return indices, typ, nil
}

// fieldByIndex walks indices through pointers. ok is false when a nil
// pointer is met on the way.
func fieldByIndex(v reflect.Value, indices []int) (reflect.Value, bool) {
	for _, i := range indices {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v, true
}

// ByField builds a comparator ordering T by the field at fieldPath. The
// field must be of an integer, float or string kind. Values with a nil
// pointer on the path sort first.
func ByField[T any](fieldPath string) (Comparator[T], error) {
	indices, typ, err := FieldPath2Index(reflect.TypeFor[T](), fieldPath)
	if err != nil {
		return nil, err
	}
	var compareField func(a, b reflect.Value) int
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		compareField = func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		compareField = func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	case reflect.Float32, reflect.Float64:
		compareField = func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) }
	case reflect.String:
		compareField = func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) }
	default:
		return nil, fmt.Errorf("%w: field %q has unordered kind %s", ErrFieldPath, fieldPath, typ.Kind())
	}
	return func(a, b T) int {
		fa, okA := fieldByIndex(reflect.ValueOf(&a).Elem(), indices)
		fb, okB := fieldByIndex(reflect.ValueOf(&b).Elem(), indices)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return compareField(fa, fb)
	}, nil
}
