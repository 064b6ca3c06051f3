package formatstyle

import (
	"maps"
)

// NumberSymbols are the locale glyphs used when rendering numbers
type NumberSymbols struct {
	Decimal     string `json:"decimal" yaml:"decimal"`
	Group       string `json:"group" yaml:"group"`
	Minus       string `json:"minus" yaml:"minus"`
	Plus        string `json:"plus" yaml:"plus"`
	Exponential string `json:"exponential" yaml:"exponential"`
	// PercentPattern wraps a scaled number, e.g. "{0} %"
	PercentPattern string `json:"percent_pattern" yaml:"percent_pattern"`
	// MinimumGroupingDigits is the number of digits required above the first
	// group before separators are inserted.
	MinimumGroupingDigits int `json:"minimum_grouping_digits" yaml:"minimum_grouping_digits"`
	// Digits holds the ten native digits in order; empty means ASCII
	Digits string `json:"digits" yaml:"digits"`
}

func (s NumberSymbols) complete() bool {
	return s.Decimal != "" && s.Group != ""
}

func (s NumberSymbols) merge(over NumberSymbols) NumberSymbols {
	if over.Decimal != "" {
		s.Decimal = over.Decimal
	}
	if over.Group != "" {
		s.Group = over.Group
	}
	if over.Minus != "" {
		s.Minus = over.Minus
	}
	if over.Plus != "" {
		s.Plus = over.Plus
	}
	if over.Exponential != "" {
		s.Exponential = over.Exponential
	}
	if over.PercentPattern != "" {
		s.PercentPattern = over.PercentPattern
	}
	if over.MinimumGroupingDigits > 0 {
		s.MinimumGroupingDigits = over.MinimumGroupingDigits
	}
	if over.Digits != "" {
		s.Digits = over.Digits
	}
	return s
}

func (s NumberSymbols) withDefaults() NumberSymbols {
	return defaultSymbols.merge(s)
}

var defaultSymbols = NumberSymbols{
	Decimal:               ".",
	Group:                 ",",
	Minus:                 "-",
	Plus:                  "+",
	Exponential:           "E",
	PercentPattern:        "{0}%",
	MinimumGroupingDigits: 1,
}

// UnitPatterns maps a CLDR unit key ("duration-hour") to its plural forms.
type UnitPatterns map[string]map[string]string

// Unit label lengths as named by CLDR
const (
	unitLengthLong   = "long"
	unitLengthShort  = "short"
	unitLengthNarrow = "narrow"
)

// DurationTimePatterns are the positional duration layouts. "h", "m" and "s"
// runs stand for hours, minutes and seconds; a doubled letter pads to two digits.
type DurationTimePatterns struct {
	HM  string `json:"hm" yaml:"hm"`
	HMS string `json:"hms" yaml:"hms"`
	MS  string `json:"ms" yaml:"ms"`
}

func (p DurationTimePatterns) merge(over DurationTimePatterns) DurationTimePatterns {
	if over.HM != "" {
		p.HM = over.HM
	}
	if over.HMS != "" {
		p.HMS = over.HMS
	}
	if over.MS != "" {
		p.MS = over.MS
	}
	return p
}

var defaultTimePatterns = DurationTimePatterns{
	HM:  "h:mm",
	HMS: "h:mm:ss",
	MS:  "m:ss",
}

// LocaleBundle is everything the formatters need to know about one locale.
type LocaleBundle struct {
	Locale  string        `json:"locale" yaml:"locale"`
	Symbols NumberSymbols `json:"symbols" yaml:"symbols"`
	// Lists is keyed by CLDR list style ("standard", "or-short", "unit-narrow").
	Lists map[string]ListPatterns `json:"lists" yaml:"lists"`
	// Units is keyed by label length ("long", "short", "narrow").
	Units map[string]UnitPatterns `json:"units" yaml:"units"`
	// Compact maps a power of ten to its short compact pattern ("{0}K" for 3).
	Compact      map[int]string       `json:"compact" yaml:"compact"`
	TimePatterns DurationTimePatterns `json:"time_patterns" yaml:"time_patterns"`
}

// Merge overlays over on b. Non-empty values in over win; maps merge key by key.
func (b LocaleBundle) Merge(over LocaleBundle) LocaleBundle {
	result := LocaleBundle{
		Locale:       b.Locale,
		Symbols:      b.Symbols.merge(over.Symbols),
		Lists:        maps.Clone(b.Lists),
		Units:        cloneUnitLengths(b.Units),
		Compact:      maps.Clone(b.Compact),
		TimePatterns: b.TimePatterns.merge(over.TimePatterns),
	}
	if over.Locale != "" {
		result.Locale = over.Locale
	}

	if len(over.Lists) > 0 {
		if result.Lists == nil {
			result.Lists = make(map[string]ListPatterns, len(over.Lists))
		}
		for style, patterns := range over.Lists {
			result.Lists[style] = mergeListPatterns(result.Lists[style], patterns)
		}
	}

	for length, units := range over.Units {
		if result.Units == nil {
			result.Units = make(map[string]UnitPatterns, len(over.Units))
		}
		target := result.Units[length]
		if target == nil {
			target = make(UnitPatterns, len(units))
			result.Units[length] = target
		}
		for unit, forms := range units {
			merged := maps.Clone(target[unit])
			if merged == nil {
				merged = make(map[string]string, len(forms))
			}
			maps.Copy(merged, forms)
			target[unit] = merged
		}
	}

	if len(over.Compact) > 0 {
		if result.Compact == nil {
			result.Compact = make(map[int]string, len(over.Compact))
		}
		maps.Copy(result.Compact, over.Compact)
	}

	return result
}

func mergeListPatterns(base, over ListPatterns) ListPatterns {
	if over.Pair != "" {
		base.Pair = over.Pair
	}
	if over.Start != "" {
		base.Start = over.Start
	}
	if over.Middle != "" {
		base.Middle = over.Middle
	}
	if over.End != "" {
		base.End = over.End
	}
	return base
}

func cloneUnitLengths(source map[string]UnitPatterns) map[string]UnitPatterns {
	if source == nil {
		return nil
	}
	result := make(map[string]UnitPatterns, len(source))
	for length, units := range source {
		cloned := make(UnitPatterns, len(units))
		for unit, forms := range units {
			cloned[unit] = maps.Clone(forms)
		}
		result[length] = cloned
	}
	return result
}

// supplementalBundles carries the data formatstyle-gen does not extract:
// number symbols, compact patterns and positional duration layouts.
var supplementalBundles = map[string]LocaleBundle{
	"en": {
		Symbols: NumberSymbols{
			Decimal:               ".",
			Group:                 ",",
			Minus:                 "-",
			Plus:                  "+",
			Exponential:           "E",
			PercentPattern:        "{0}%",
			MinimumGroupingDigits: 1,
		},
		Compact: map[int]string{
			3:  "{0}K",
			6:  "{0}M",
			9:  "{0}B",
			12: "{0}T",
		},
		TimePatterns: DurationTimePatterns{HM: "h:mm", HMS: "h:mm:ss", MS: "m:ss"},
	},
	"es": {
		Symbols: NumberSymbols{
			Decimal:               ",",
			Group:                 ".",
			Minus:                 "-",
			Plus:                  "+",
			Exponential:           "E",
			PercentPattern:        "{0}\u00a0%",
			MinimumGroupingDigits: 2,
		},
		Compact: map[int]string{
			3:  "{0}\u00a0mil",
			6:  "{0}\u00a0M",
			9:  "{0}\u00a0mil\u00a0M",
			12: "{0}\u00a0B",
		},
		TimePatterns: DurationTimePatterns{HM: "h:mm", HMS: "h:mm:ss", MS: "m:ss"},
	},
	"de": {
		Symbols: NumberSymbols{
			Decimal:               ",",
			Group:                 ".",
			Minus:                 "-",
			Plus:                  "+",
			Exponential:           "E",
			PercentPattern:        "{0}\u00a0%",
			MinimumGroupingDigits: 1,
		},
		Compact: map[int]string{
			6:  "{0}\u00a0Mio.",
			9:  "{0}\u00a0Mrd.",
			12: "{0}\u00a0Bio.",
		},
		TimePatterns: DurationTimePatterns{HM: "h:mm", HMS: "h:mm:ss", MS: "m:ss"},
	},
}

// builtinBundles merges the generated CLDR data with the supplemental tables.
func builtinBundles() map[string]LocaleBundle {
	result := make(map[string]LocaleBundle, len(generatedBundles))
	for locale, bundle := range generatedBundles {
		bundle.Locale = locale
		result[locale] = LocaleBundle{Locale: locale}.Merge(bundle)
	}
	for locale, bundle := range supplementalBundles {
		base, ok := result[locale]
		if !ok {
			base = LocaleBundle{Locale: locale}
		}
		result[locale] = base.Merge(bundle)
	}
	return result
}
