package formatstyle

import (
	"strings"

	"golang.org/x/text/language"
)

// parentLocale returns the CLDR parent of locale ("es-419" for "es-MX"), or
// the locale minus its last subtag when x/text cannot parse it.
func parentLocale(locale string) string {
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent == language.Und || parent.String() == "und" {
			return ""
		}
		return parent.String()
	}

	if idx := strings.LastIndexByte(locale, '-'); idx > 0 {
		return locale[:idx]
	}
	return ""
}

// localeParentChain lists the parents of locale from the closest to the root
func localeParentChain(locale string) []string {
	var chain []string
	seen := map[string]struct{}{locale: {}}

	for parent := parentLocale(locale); parent != ""; parent = parentLocale(parent) {
		if _, loop := seen[parent]; loop {
			break
		}
		seen[parent] = struct{}{}
		chain = append(chain, parent)
	}
	return chain
}

// baseLanguage returns the language subtag of locale ("es" for "es-MX")
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		base, _, _ := strings.Cut(locale, "-")
		return base
	}
	base, _ := tag.Base()
	return base.String()
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
