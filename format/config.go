package format

import (
	"slices"
	"time"

	"golang.org/x/text/language"
)

// DefaultDateLayout is used for time.Time values when Config.DateLayout is empty.
const DefaultDateLayout = time.RFC3339

// Config is the formatting context passed into every expansion.
type Config struct {
	// Locale is a BCP 47 tag such as "en", "de-DE". Empty means no locale rules.
	Locale string
	// Currency is an ISO 4217 code used for money fields, e.g. "EUR".
	Currency string
	// DateLayout is a Go time layout for time.Time values.
	DateLayout string
	// MoneyFields lists fields rendered as money: "price" or "Invoice.price".
	MoneyFields []string
}

// IsMoney reports whether field of typeName is configured as money.
func (c Config) IsMoney(typeName, field string) bool {
	return slices.Contains(c.MoneyFields, field) ||
		slices.Contains(c.MoneyFields, typeName+"."+field)
}

// DateLayoutOrDefault returns DateLayout, or DefaultDateLayout when unset.
func (c Config) DateLayoutOrDefault() string {
	if c.DateLayout == "" {
		return DefaultDateLayout
	}

	return c.DateLayout
}

// Tag parses Locale. An empty or malformed locale yields language.Und.
func (c Config) Tag() language.Tag {
	if c.Locale == "" {
		return language.Und
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}

	return tag
}
