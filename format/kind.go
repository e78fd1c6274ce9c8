package format

import (
	"fmt"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a field value for formatting.
type Kind int

const (
	_ Kind = iota // zero value: nil or invalid

	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
	KindDuration
	KindStringer // implements fmt.Stringer
	KindOther    // structs, slices, maps, ...
)

// IsNumber reports whether the kind is numeric.
func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindUint, KindFloat:
		return true
	}
}

// KindOf classifies v. Named types fall back to their underlying kind
// unless they implement fmt.Stringer; pointers are not dereferenced.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return 0
	case string:
		return KindString
	case time.Time:
		return KindTime
	case time.Duration:
		return KindDuration
	case fmt.Stringer:
		return KindStringer
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	default:
		return KindOther
	}
}

// Indirect dereferences pointers; a nil pointer yields nil.
func Indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil
	}

	return rv.Interface()
}
