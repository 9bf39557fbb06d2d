package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language every unsupported or absent preference falls
// back to.
const Default = "en"

var supported = map[string]language.Tag{
	"en": language.English,
	"hi": language.Hindi,
	"mr": language.Marathi,
	"te": language.Telugu,
}

// Resolve picks a two-letter report language from an Accept-Language header
// value: first comma-separated entry, quality weight stripped, primary
// subtag only. Anything outside the supported set resolves to Default.
// Resolve never fails.
func Resolve(acceptLanguage string) string {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	first, _, _ = strings.Cut(first, ";")
	code, _, _ := strings.Cut(strings.TrimSpace(first), "-")
	code = strings.ToLower(code)
	if _, ok := supported[code]; !ok {
		return Default
	}
	return code
}

// Tag maps a resolved code onto its BCP 47 tag for number formatting.
// Unknown codes map to the Default tag.
func Tag(code string) language.Tag {
	if tag, ok := supported[code]; ok {
		return tag
	}
	return supported[Default]
}
