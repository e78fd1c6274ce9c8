package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to a comparable form:
// CamelCase is tokenized, tokens are lowercased and separators dropped.
//   - "Client" -> "client"
//   - "line_item" -> "lineitem"
//   - "LineItem" -> "lineitem"
//   - "HTTPHeader" -> "httpheader"
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// SameIdent reports whether two identifiers name the same thing once
// normalized. Empty identifiers never match.
func SameIdent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	return NormalizeIdent(a) == NormalizeIdent(b)
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase, camelCase or snake_case string.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "money_field" -> ["money", "field"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": split before 'I'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": split before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
