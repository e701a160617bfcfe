// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst converts the first letter to uppercase.
// Example: "hello" -> "Hello"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst converts the first letter to lowercase.
// Example: "UserController" -> "userController"
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// CamelDashes removes every hyphen and uppercases the rune after it.
// Example: "user-info" -> "userInfo"
func CamelDashes(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var result strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		result.WriteRune(r)
	}
	return result.String()
}

// ToDashCase removes spaces and converts uppercase letters to a hyphen plus
// the lowercase letter, without a leading hyphen.
// Example: "User Controller" -> "user-controller"
func ToDashCase(s string) string {
	var result strings.Builder
	for _, r := range strings.ReplaceAll(s, " ", "") {
		if unicode.IsUpper(r) {
			result.WriteRune('-')
			result.WriteRune(unicode.ToLower(r))
			continue
		}
		result.WriteRune(r)
	}
	return strings.TrimPrefix(result.String(), "-")
}

// ToUnderscoreCase prefixes every uppercase letter with an underscore and
// lowercases it.
// Example: "userApi" -> "user_api"
func ToUnderscoreCase(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			result.WriteRune('_')
			result.WriteRune(unicode.ToLower(r))
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// TransformCamelCase turns a tag name into a group identifier: words split
// on hyphens (or, failing that, spaces) are title-cased and joined, the
// first letter is lowercased and a trailing "Controller" is dropped.
// Example: "user-controller" -> "user"
// Example: "Pet Store" -> "petStore"
func TransformCamelCase(s string) string {
	var words []string
	switch {
	case strings.Contains(s, "-"):
		words = strings.Split(s, "-")
	case strings.Contains(s, " "):
		words = strings.Split(s, " ")
	}

	result := s
	if len(words) > 0 {
		titleCaser := cases.Title(language.English, cases.NoLower)
		var b strings.Builder
		for _, w := range words {
			b.WriteString(titleCaser.String(w))
		}
		result = b.String()
	}
	result = LowerFirst(result)
	if trimmed, ok := strings.CutSuffix(result, "Controller"); ok && trimmed != "" {
		result = trimmed
	}
	return result
}

// HasNonLatin reports whether s contains a letter outside the Latin script,
// such as Han characters.
func HasNonLatin(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// ToIdentifier replaces path and namespace separators with underscores and
// drops any other rune that cannot appear in an identifier.
// Example: "v1/user.admin" -> "v1_user_admin"
func ToIdentifier(s string) string {
	var result strings.Builder
	for _, r := range s {
		switch {
		case r == '/' || r == '.':
			result.WriteRune('_')
		case r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
		}
	}
	out := strings.TrimLeft(result.String(), "_")
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "_" + out
	}
	return out
}
