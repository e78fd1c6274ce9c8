package format

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Formatter renders a field value read from a provider of typeName.
type Formatter interface {
	Format(typeName, field string, value any, cfg Config) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(typeName, field string, value any, cfg Config) string

// Format calls f.
func (f FormatterFunc) Format(typeName, field string, value any, cfg Config) string {
	return f(typeName, field, value, cfg)
}

// Plain formats values without locale rules.
type Plain struct{}

// Format implements Formatter.
func (Plain) Format(_, _ string, value any, cfg Config) string {
	return Stringify(value, cfg)
}

// Stringify renders a single value. nil and nil pointers become "".
func Stringify(value any, cfg Config) string {
	v := Indirect(value)

	switch KindOf(v) {
	case 0:
		return ""
	case KindString:
		return reflect.ValueOf(v).String()
	case KindInt:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case KindUint:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case KindFloat:
		rv := reflect.ValueOf(v)
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())
	case KindBool:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	case KindTime:
		return v.(time.Time).Format(cfg.DateLayoutOrDefault())
	case KindDuration:
		return v.(time.Duration).String()
	case KindStringer:
		return v.(fmt.Stringer).String()
	default:
		return fmt.Sprint(v)
	}
}
