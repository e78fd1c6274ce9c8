package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Client", "client"},
		{"client", "client"},
		{"CLIENT", "client"},
		{"LineItem", "lineitem"},
		{"line_item", "lineitem"},
		{"line-item", "lineitem"},
		{"OrderID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"money_field", "moneyfield"},
		{"", ""},
		{"a", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"price_to_pay", []string{"price", "to", "pay"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestSameIdent(t *testing.T) {
	assert.True(t, SameIdent("client", "Client"))
	assert.True(t, SameIdent("line_item", "LineItem"))
	assert.False(t, SameIdent("company", "Client"))
	assert.False(t, SameIdent("", "Client"))
	assert.False(t, SameIdent("", ""))
}
