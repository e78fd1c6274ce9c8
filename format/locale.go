package format

import (
	"reflect"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale formats floats and money fields according to Config.Locale.
// Integers stay ungrouped (they are usually identifiers such as invoice
// numbers) unless configured as money. Everything else falls back to Plain.
type Locale struct{}

// Format implements Formatter.
func (Locale) Format(typeName, field string, value any, cfg Config) string {
	v := Indirect(value)
	kind := KindOf(v)

	tag := cfg.Tag()
	if tag == language.Und || !kind.IsNumber() {
		return Stringify(v, cfg)
	}

	amount := toFloat(v)
	p := message.NewPrinter(tag)

	if cfg.IsMoney(typeName, field) {
		if cur, err := currency.ParseISO(cfg.Currency); err == nil {
			return p.Sprint(currency.Symbol(cur.Amount(amount)))
		}
	}

	if kind == KindFloat {
		return p.Sprint(number.Decimal(amount))
	}

	return Stringify(v, cfg)
}

func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)

	switch KindOf(v) {
	case KindInt:
		return float64(rv.Int())
	case KindUint:
		return float64(rv.Uint())
	case KindFloat:
		return rv.Float()
	default:
		return 0
	}
}
