package formatstyle

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// DurationUnitsStyle renders a duration as a list of labelled units ("1 hour, 5 minutes").
type DurationUnitsStyle struct {
	// Units allowed in the output. Empty means seconds only.
	Units []DurationUnit
	Width UnitWidth
	// MaxUnitCount caps the number of units shown; zero is unlimited.
	MaxUnitCount int
	// ShowZeroUnits keeps units whose value is zero.
	ShowZeroUnits bool
	// ValueLength pads every unit value to this many integer digits.
	ValueLength int
	// FractionLength is the number of fraction digits shown on the smallest unit.
	FractionLength int
	Rounding       RoundingRule
	// RoundingIncrement snaps the smallest unit before its fraction is rendered.
	RoundingIncrement decimal.Decimal
}

func (s DurationUnitsStyle) decomposeOptions() DecomposeOptions {
	return DecomposeOptions{
		Units:             s.Units,
		Rounding:          s.Rounding,
		MaxFractionLength: max(0, s.FractionLength),
		RoundingIncrement: s.RoundingIncrement,
		MaxUnitCount:      s.MaxUnitCount,
		DropZeroUnits:     !s.ShowZeroUnits,
	}
}

// unitLength maps a width to the CLDR unit label length. Condensed reuses the
// short labels without spaces.
func (s DurationUnitsStyle) unitLength() string {
	switch s.Width {
	case UnitWidthAbbreviated, UnitWidthCondensed:
		return unitLengthShort
	case UnitWidthNarrow:
		return unitLengthNarrow
	default:
		return unitLengthLong
	}
}

// DurationTimePattern selects a positional layout
type DurationTimePattern uint8

const (
	DurationHourMinuteSecond DurationTimePattern = iota
	DurationHourMinute
	DurationMinuteSecond
)

// DurationTimeStyle renders a duration positionally ("1:05:09").
type DurationTimeStyle struct {
	Pattern DurationTimePattern
	// FractionLength is the number of fraction digits shown on the last field.
	FractionLength int
	Rounding       RoundingRule
}

func (s DurationTimeStyle) units() []DurationUnit {
	switch s.Pattern {
	case DurationHourMinute:
		return []DurationUnit{Hours, Minutes}
	case DurationMinuteSecond:
		return []DurationUnit{Minutes, Seconds}
	default:
		return []DurationUnit{Hours, Minutes, Seconds}
	}
}

func (s DurationTimeStyle) layout(patterns DurationTimePatterns) string {
	switch s.Pattern {
	case DurationHourMinute:
		return patterns.HM
	case DurationMinuteSecond:
		return patterns.MS
	default:
		return patterns.HMS
	}
}

// Duration renders d unit by unit and joins the parts with the locale unit list pattern.
func (f *Formatter) Duration(locale string, d Duration, style DurationUnitsStyle) string {
	locale = f.locale(locale)
	plan := Decompose(d, style.decomposeOptions())
	length := style.unitLength()

	parts := make([]string, 0, len(plan))
	for i, entry := range plan {
		frac := 0
		if i == len(plan)-1 {
			frac = max(0, style.FractionLength)
		}

		config := NewNumberFormatConfiguration().
			Precision(IntegerAndFractionLength(LengthBounds{
				MinInteger:  lo.ToPtr(max(1, style.ValueLength)),
				MinFraction: lo.ToPtr(frac),
				MaxFraction: lo.ToPtr(frac),
			})).
			Rounding(style.Rounding)

		number := f.Number(locale, unitValue(entry), config)
		category := pluralCategory(locale, entry.Value.Abs().StringFixed(int32(frac)))

		pattern, ok := f.registry.UnitPattern(locale, entry.Unit.cldrKey(), length, category)
		if !ok {
			f.logger.Debugf("no %s label for %s in %q", length, entry.Unit, locale)
			pattern = plainUnitPattern(entry.Unit, category != "one")
		}
		if style.Width == UnitWidthCondensed {
			pattern = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(pattern)
		}
		parts = append(parts, substitute(pattern, number))
	}

	return f.List(locale, parts, ListUnits, style.Width)
}

// DurationPositional renders d with the locale hour/minute/second layout.
// The minus sign of a negative duration leads the whole text.
func (f *Formatter) DurationPositional(locale string, d Duration, style DurationTimeStyle) string {
	locale = f.locale(locale)
	units := style.units()
	plan := Decompose(d, DecomposeOptions{
		Units:             units,
		Rounding:          style.Rounding,
		MaxFractionLength: max(0, style.FractionLength),
	})

	values := make(map[rune]UnitValue, len(plan))
	for _, entry := range plan {
		values[unitLetter(entry.Unit)] = entry
	}
	last := unitLetter(units[len(units)-1])

	layout := style.layout(f.registry.TimePatterns(locale))
	var b strings.Builder
	if plan.Negative() {
		b.WriteString(f.registry.Symbols(locale).Minus)
	}

	for _, field := range parseTimeLayout(layout) {
		if field.letter == 0 {
			b.WriteString(field.literal)
			continue
		}
		entry, ok := values[field.letter]
		if !ok {
			f.logger.Debugf("layout %q field %q not in plan", layout, string(field.letter))
			continue
		}

		frac := 0
		if field.letter == last {
			frac = max(0, style.FractionLength)
		}
		config := NewNumberFormatConfiguration().
			Precision(IntegerAndFractionLength(LengthBounds{
				MinInteger:  lo.ToPtr(field.width),
				MinFraction: lo.ToPtr(frac),
				MaxFraction: lo.ToPtr(frac),
			})).
			Grouping(GroupingNever).
			Sign(SignNever()).
			Rounding(style.Rounding)
		b.WriteString(f.Number(locale, Decimal(entry.Value.Abs()), config))
	}
	return b.String()
}

func unitValue(entry UnitValue) Value {
	if entry.SignedZero {
		return negativeZeroValue()
	}
	return Decimal(entry.Value)
}

func unitLetter(unit DurationUnit) rune {
	switch unit {
	case Hours:
		return 'h'
	case Minutes:
		return 'm'
	case Seconds:
		return 's'
	default:
		return 0
	}
}

type timeLayoutField struct {
	letter  rune
	width   int
	literal string
}

// parseTimeLayout splits "h:mm:ss" into runs of h, m and s and literal text.
// Quoted text is literal.
func parseTimeLayout(layout string) []timeLayoutField {
	var (
		fields  []timeLayoutField
		literal strings.Builder
		quoted  bool
	)
	flush := func() {
		if literal.Len() > 0 {
			fields = append(fields, timeLayoutField{literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			quoted = !quoted
		case !quoted && (r == 'h' || r == 'H' || r == 'm' || r == 's'):
			flush()
			width := 1
			for i+1 < len(runes) && runes[i+1] == r {
				width++
				i++
			}
			letter := r
			if letter == 'H' {
				letter = 'h'
			}
			fields = append(fields, timeLayoutField{letter: letter, width: width})
		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return fields
}

var pluralForms = map[plural.Form]string{
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
	plural.Other: "other",
}

// pluralCategory selects the CLDR cardinal category of a plain decimal text
// such as "1" or "1.50". Visible trailing zeros matter: "1.0" is not "one" in English.
func pluralCategory(locale, text string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "other"
	}

	i, v, w, fr, t := pluralOperands(text)
	form := plural.Cardinal.MatchPlural(tag, i, v, w, fr, t)
	if category, ok := pluralForms[form]; ok {
		return category
	}
	return "other"
}

// pluralOperands computes the CLDR operands i, v, w, f and t. Values that do
// not fit an int are clamped, which keeps them in the "other" category.
func pluralOperands(text string) (i, v, w, f, t int) {
	integer, fraction, _ := strings.Cut(strings.TrimPrefix(text, "-"), ".")
	i = clampedAtoi(integer)
	v = len(fraction)
	trimmed := strings.TrimRight(fraction, "0")
	w = len(trimmed)
	f = clampedAtoi(fraction)
	t = clampedAtoi(trimmed)
	return i, v, w, f, t
}

func clampedAtoi(text string) int {
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
