package formatstyle

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// DefaultListPattern joins two items when no locale pattern is available
const DefaultListPattern = "{0}, {1}"

// ListType selects the family of list patterns
type ListType uint8

const (
	// ListUnits joins measurements ("3 hours, 5 minutes")
	ListUnits ListType = iota
	// ListAnd is the conjunctive list ("A, B, and C")
	ListAnd
	// ListOr is the disjunctive list ("A, B, or C")
	ListOr
)

func (t ListType) String() string {
	switch t {
	case ListAnd:
		return "standard"
	case ListOr:
		return "or"
	default:
		return "unit"
	}
}

// UnitWidth is the presentation length of unit labels and list connectors.
type UnitWidth uint8

const (
	UnitWidthWide UnitWidth = iota
	UnitWidthAbbreviated
	UnitWidthCondensed
	UnitWidthNarrow
)

func (w UnitWidth) String() string {
	switch w {
	case UnitWidthAbbreviated:
		return "abbreviated"
	case UnitWidthCondensed:
		return "condensed"
	case UnitWidthNarrow:
		return "narrow"
	default:
		return "wide"
	}
}

// listStyleKey maps a list type and width to the CLDR listPattern type.
// Condensed has no list style of its own and shares the narrow one.
func listStyleKey(t ListType, w UnitWidth) string {
	base := t.String()
	switch w {
	case UnitWidthAbbreviated:
		return base + "-short"
	case UnitWidthCondensed, UnitWidthNarrow:
		return base + "-narrow"
	default:
		return base
	}
}

// ListPatternKind names one of the four pieces of a list pattern
type ListPatternKind uint8

const (
	ListPatternPair ListPatternKind = iota
	ListPatternStart
	ListPatternMiddle
	ListPatternEnd
)

func (k ListPatternKind) String() string {
	switch k {
	case ListPatternStart:
		return "start"
	case ListPatternMiddle:
		return "middle"
	case ListPatternEnd:
		return "end"
	default:
		return "2"
	}
}

// PatternProvider supplies locale list patterns. Each pattern carries the {0}
// and {1} placeholders.
type PatternProvider interface {
	ListPattern(locale string, listType ListType, width UnitWidth, kind ListPatternKind) (string, error)
}

// ListPatterns holds the four pieces used to join a list
type ListPatterns struct {
	Pair   string `json:"2" yaml:"2"`
	Start  string `json:"start" yaml:"start"`
	Middle string `json:"middle" yaml:"middle"`
	End    string `json:"end" yaml:"end"`
}

func (p ListPatterns) piece(kind ListPatternKind) string {
	switch kind {
	case ListPatternStart:
		return p.Start
	case ListPatternMiddle:
		return p.Middle
	case ListPatternEnd:
		return p.End
	default:
		return p.Pair
	}
}

func (p ListPatterns) withDefaults() ListPatterns {
	if p.Pair == "" {
		p.Pair = DefaultListPattern
	}
	if p.Start == "" {
		p.Start = DefaultListPattern
	}
	if p.Middle == "" {
		p.Middle = DefaultListPattern
	}
	if p.End == "" {
		p.End = DefaultListPattern
	}
	return p
}

// AssembleList joins items with patterns.
//
// Items are folded in from the last one backward: the end piece joins the final
// two items, each middle piece prepends one more, and the start piece prepends
// the first. Placeholders are filled in a single pass so braces inside an item
// are never substituted again.
func AssembleList(items []string, patterns ListPatterns) string {
	patterns = patterns.withDefaults()

	switch n := len(items); n {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return substitute(patterns.Pair, items[0], items[1])
	default:
		acc := substitute(patterns.End, items[n-2], items[n-1])
		for i := n - 3; i >= 1; i-- {
			acc = substitute(patterns.Middle, items[i], acc)
		}
		return substitute(patterns.Start, items[0], acc)
	}
}

// LoadListPatterns fetches the pieces needed to join count items. Pieces the
// provider cannot supply fall back to DefaultListPattern and their errors are
// returned together.
func LoadListPatterns(provider PatternProvider, locale string, listType ListType, width UnitWidth, count int) (ListPatterns, error) {
	var patterns ListPatterns
	if count < 2 {
		return patterns.withDefaults(), nil
	}
	if provider == nil {
		return patterns.withDefaults(), fmt.Errorf("%w: no provider", ErrPatternUnavailable)
	}

	kinds := []ListPatternKind{ListPatternPair}
	if count > 2 {
		kinds = []ListPatternKind{ListPatternStart, ListPatternMiddle, ListPatternEnd}
	}

	var err error
	for _, kind := range kinds {
		pattern, perr := provider.ListPattern(locale, listType, width, kind)
		if perr == nil && !validListPattern(pattern) {
			perr = fmt.Errorf("%w: malformed %s pattern %q", ErrPatternUnavailable, kind, pattern)
		}
		if perr != nil {
			err = multierr.Append(err, perr)
			continue
		}
		switch kind {
		case ListPatternPair:
			patterns.Pair = pattern
		case ListPatternStart:
			patterns.Start = pattern
		case ListPatternMiddle:
			patterns.Middle = pattern
		case ListPatternEnd:
			patterns.End = pattern
		}
	}
	return patterns.withDefaults(), err
}

// AssembleLocalizedList joins items with the patterns the provider holds for locale.
// Lookup failures degrade to DefaultListPattern.
func AssembleLocalizedList(provider PatternProvider, items []string, locale string, listType ListType, width UnitWidth) string {
	patterns, _ := LoadListPatterns(provider, locale, listType, width, len(items))
	return AssembleList(items, patterns)
}

func validListPattern(pattern string) bool {
	return strings.Contains(pattern, "{0}") && strings.Contains(pattern, "{1}")
}

// substitute replaces {0}..{n} in pattern with args in one left-to-right scan.
func substitute(pattern string, args ...string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); {
		if pattern[i] == '{' {
			if end := strings.IndexByte(pattern[i:], '}'); end > 1 {
				if idx, ok := placeholderIndex(pattern[i+1 : i+end]); ok && idx < len(args) {
					b.WriteString(args[idx])
					i += end + 1
					continue
				}
			}
		}
		b.WriteByte(pattern[i])
		i++
	}
	return b.String()
}

func placeholderIndex(text string) (int, bool) {
	if text == "" || len(text) > 2 {
		return 0, false
	}
	idx := 0
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
		idx = idx*10 + int(text[i]-'0')
	}
	return idx, true
}
