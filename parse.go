package formatstyle

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// spaceLikeGroups are accepted in place of a space-like group separator
var spaceLikeGroups = []string{" ", "\u00a0", "\u202f"}

// ParseNumber reads text written in the number format of locale: native digits,
// grouping and decimal symbols, a leading sign, a short compact suffix ("1.2K")
// or an exponent ("1.5E3").
func (f *Formatter) ParseNumber(locale, text string) (decimal.Decimal, error) {
	locale = f.locale(locale)
	bundle := f.registry.Bundle(locale)

	value, err := parseLocalized(text, bundle.Symbols, bundle.Compact)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q for %q: %v", ErrParse, text, locale, err)
	}
	return value, nil
}

// ParsePercent reads a percentage written with the locale percent pattern and
// returns the unscaled value: "45 %" is 0.45.
func (f *Formatter) ParsePercent(locale, text string) (decimal.Decimal, error) {
	locale = f.locale(locale)
	bundle := f.registry.Bundle(locale)

	prefix, suffix, _ := strings.Cut(bundle.Symbols.PercentPattern, "{0}")
	trimmed := strings.TrimSpace(text)
	stripped := trimAffix(trimmed, prefix, suffix)
	if stripped == trimmed {
		stripped = trimAffix(trimmed, "", "%")
	}
	if stripped == trimmed {
		return decimal.Zero, fmt.Errorf("%w %q for %q: missing percent sign", ErrParse, text, locale)
	}

	value, err := parseLocalized(stripped, bundle.Symbols, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q for %q: %v", ErrParse, text, locale, err)
	}
	return value.Shift(-2), nil
}

func trimAffix(text, prefix, suffix string) string {
	prefix = strings.TrimSpace(prefix)
	suffix = strings.TrimSpace(suffix)
	if prefix == "" && suffix == "" {
		return text
	}
	if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, suffix) || len(text) < len(prefix)+len(suffix) {
		return text
	}
	return strings.TrimFunc(text[len(prefix):len(text)-len(suffix)], unicode.IsSpace)
}

func parseLocalized(text string, symbols NumberSymbols, compact map[int]string) (decimal.Decimal, error) {
	text = strings.TrimFunc(asciiDigits(text, symbols.Digits), unicode.IsSpace)
	if text == "" {
		return decimal.Zero, fmt.Errorf("empty input")
	}

	negative := false
	switch {
	case symbols.Minus != "" && strings.HasPrefix(text, symbols.Minus):
		negative, text = true, text[len(symbols.Minus):]
	case strings.HasPrefix(text, "-"):
		negative, text = true, text[1:]
	case strings.HasPrefix(text, "\u2212"):
		negative, text = true, text[len("\u2212"):]
	case symbols.Plus != "" && strings.HasPrefix(text, symbols.Plus):
		text = text[len(symbols.Plus):]
	}

	power := 0
	if stripped, p, ok := stripCompact(text, compact); ok {
		text, power = stripped, p
	}

	mantissa, exponent, hasExponent := text, "", false
	if symbols.Exponential != "" {
		mantissa, exponent, hasExponent = strings.Cut(text, symbols.Exponential)
	}

	value, err := parseMantissa(mantissa, symbols)
	if err != nil {
		return decimal.Zero, err
	}

	if hasExponent {
		shift, err := parseExponent(exponent, symbols)
		if err != nil {
			return decimal.Zero, err
		}
		power += shift
	}

	value = value.Shift(int32(power))
	if negative {
		value = value.Neg()
	}
	return value, nil
}

// stripCompact removes the longest compact affix that matches text.
func stripCompact(text string, compact map[int]string) (string, int, bool) {
	type affix struct {
		prefix string
		suffix string
		power  int
	}

	affixes := make([]affix, 0, len(compact))
	for power, pattern := range compact {
		prefix, suffix, ok := strings.Cut(pattern, "{0}")
		if !ok {
			continue
		}
		prefix, suffix = strings.TrimSpace(prefix), strings.TrimSpace(suffix)
		if prefix == "" && suffix == "" {
			continue
		}
		affixes = append(affixes, affix{prefix: prefix, suffix: suffix, power: power})
	}
	slices.SortFunc(affixes, func(a, b affix) int {
		return cmp.Compare(len(b.prefix)+len(b.suffix), len(a.prefix)+len(a.suffix))
	})

	for _, a := range affixes {
		if stripped := trimAffix(text, a.prefix, a.suffix); stripped != text {
			return stripped, a.power, true
		}
	}
	return text, 0, false
}

func parseMantissa(text string, symbols NumberSymbols) (decimal.Decimal, error) {
	groups := []string{symbols.Group}
	if strings.TrimFunc(symbols.Group, unicode.IsSpace) == "" {
		groups = spaceLikeGroups
	}

	integer, fraction, hasDecimal := strings.Cut(text, symbols.Decimal)
	for _, group := range groups {
		if group != "" {
			integer = strings.ReplaceAll(integer, group, "")
		}
	}

	if integer == "" && fraction == "" {
		return decimal.Zero, fmt.Errorf("no digits")
	}
	if !allDigits(integer) || !allDigits(fraction) {
		return decimal.Zero, fmt.Errorf("unexpected characters in %q", text)
	}

	plain := integer
	if plain == "" {
		plain = "0"
	}
	if hasDecimal && fraction != "" {
		plain += "." + fraction
	}
	return decimal.NewFromString(plain)
}

func parseExponent(text string, symbols NumberSymbols) (int, error) {
	negative := false
	switch {
	case symbols.Minus != "" && strings.HasPrefix(text, symbols.Minus):
		negative, text = true, text[len(symbols.Minus):]
	case strings.HasPrefix(text, "-"):
		negative, text = true, text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}
	if text == "" || !allDigits(text) || len(text) > 4 {
		return 0, fmt.Errorf("bad exponent %q", text)
	}

	n := 0
	for _, r := range text {
		n = n*10 + int(r-'0')
	}
	if negative {
		n = -n
	}
	return n, nil
}

// asciiDigits maps the native digits of a locale to 0-9.
func asciiDigits(text, digits string) string {
	native := []rune(digits)
	if len(native) != 10 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if i := slices.Index(native, r); i >= 0 {
			return '0' + rune(i)
		}
		return r
	}, text)
}

func allDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
