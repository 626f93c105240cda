// Package naming implements the identifier-case and reserved-word rules
// of spec §4.2.1: Source spellings are converted to each target's
// idiomatic case only inside the Target Transformer, never earlier.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)
var lowerCaser = cases.Lower(language.Und)

// splitWords breaks a camelCase, PascalCase, snake_case, or
// SCREAMING_SNAKE identifier into its component words, the way a case
// converter must to be idempotent in both directions (spec §8.1
// universal property 2).
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			// Boundary before an uppercase letter that follows a
			// lowercase/digit, or before the last letter of a run of
			// capitals followed by a lowercase letter (e.g. "HTTPServer"
			// -> "HTTP", "Server").
			if i > 0 {
				prev := runes[i-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// ToSnakeCase converts any supported spelling to snake_case. Idempotent:
// ToSnakeCase(ToSnakeCase(s)) == ToSnakeCase(s).
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = lowerCaser.String(w)
	}
	return strings.Join(words, "_")
}

// ToPascalCase converts any supported spelling to PascalCase. Idempotent.
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = titleCaser.String(lowerCaser.String(w))
	}
	return strings.Join(words, "")
}

// ToCamelCase converts any supported spelling to camelCase (used by the
// BASIC dialects for local variable names, spec §4.2.1).
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return pascal
	}
	r := []rune(pascal)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
