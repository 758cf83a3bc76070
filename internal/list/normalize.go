package list

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts user-entered text to its canonical display form:
// whitespace runs collapse to single spaces and each word is title-cased.
// Empty or whitespace-only input yields an empty string; rejecting empty
// names is the caller's concern.
func TitleCase(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	caser := cases.Title(language.English)
	for i, field := range fields {
		fields[i] = caser.String(field)
	}
	return strings.Join(fields, " ")
}

// CanonicalKey converts a list name to its lookup key: lowercase with
// internal whitespace collapsed. Display transforms never change the key, so
// "Home Chores" and "home   chores" resolve to the same list.
func CanonicalKey(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
