package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocale_Decimal(t *testing.T) {
	var f Locale

	assert.Equal(t, "1,234.5", f.Format("LineItem", "quantity", 1234.5, Config{Locale: "en"}))
	assert.Equal(t, "1.234,5", f.Format("LineItem", "quantity", 1234.5, Config{Locale: "de"}))
}

func TestLocale_IntegersStayPlain(t *testing.T) {
	var f Locale

	assert.Equal(t, "1002", f.Format("Client", "number", 1002, Config{Locale: "en"}))
}

func TestLocale_Money(t *testing.T) {
	var f Locale
	cfg := Config{Locale: "en", Currency: "USD", MoneyFields: []string{"money_field"}}

	got := f.Format("Client", "money_field", 12.34, cfg)
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "12.34")

	// unknown currency falls back to decimal formatting
	cfg.Currency = "???"
	assert.Equal(t, "12.34", f.Format("Client", "money_field", 12.34, cfg))
}

func TestLocale_Fallbacks(t *testing.T) {
	var f Locale
	when := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "12.333", f.Format("Client", "money_field", 12.333, Config{}), "no locale means plain")
	assert.Equal(t, "a@b.com", f.Format("User", "email", "a@b.com", Config{Locale: "en"}))
	assert.Equal(t, "", f.Format("Company", "name", nil, Config{Locale: "en"}))
	assert.Equal(t, "09.03.2024", f.Format("Invoice", "date", when, Config{Locale: "de", DateLayout: "02.01.2006"}))
}
