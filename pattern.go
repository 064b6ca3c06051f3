package formatstyle

import (
	"fmt"
	"strings"

	"github.com/xuri/nfp"
)

// NumberPattern is a spreadsheet-style number format ("#,##0.00 %") turned into
// a configuration plus the literal text around the digits.
type NumberPattern struct {
	Configuration NumberFormatConfiguration
	Prefix        string
	Suffix        string
	Percent       bool
}

// ConfigurationFromPattern reads the first section of a number format pattern.
// Zero placeholders set minimum lengths, '#' placeholders extend the maximum
// fraction length, a thousands separator keeps grouping and '%' scales by 100.
func ConfigurationFromPattern(pattern string) (NumberPattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return NumberPattern{}, fmt.Errorf("%w: empty pattern", ErrInvalidConfiguration)
	}
	if strings.EqualFold(strings.TrimSpace(pattern), "General") {
		return NumberPattern{Configuration: NewNumberFormatConfiguration()}, nil
	}

	parser := nfp.NumberFormatParser()
	sections := parser.Parse(pattern)
	if len(sections) == 0 {
		return NumberPattern{}, fmt.Errorf("%w: cannot parse pattern %q", ErrInvalidConfiguration, pattern)
	}

	var (
		result       NumberPattern
		prefix       strings.Builder
		suffix       strings.Builder
		intZeros     int
		fracZeros    int
		fracHashes   int
		hasDecimal   bool
		hasThousands bool
		seenDigits   bool
		afterDecimal bool
	)

	affix := func(text string) {
		if seenDigits {
			suffix.WriteString(text)
		} else {
			prefix.WriteString(text)
		}
	}

	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeZeroPlaceHolder:
			seenDigits = true
			if afterDecimal {
				fracZeros += len(tok.TValue)
			} else {
				intZeros += len(tok.TValue)
			}
		case nfp.TokenTypeHashPlaceHolder:
			seenDigits = true
			if afterDecimal {
				fracHashes += len(tok.TValue)
			}
		case nfp.TokenTypeDecimalPoint:
			seenDigits = true
			hasDecimal = true
			afterDecimal = true
		case nfp.TokenTypeThousandsSeparator:
			hasThousands = true
		case nfp.TokenTypePercent:
			result.Percent = true
			affix("%")
		case nfp.TokenTypeLiteral:
			affix(tok.TValue)
		}
	}

	if !seenDigits {
		return NumberPattern{}, fmt.Errorf("%w: pattern %q has no digit placeholders", ErrInvalidConfiguration, pattern)
	}

	minInt := intZeros
	minFrac := fracZeros
	maxFrac := fracZeros + fracHashes

	config := NewNumberFormatConfiguration().
		Precision(IntegerAndFractionLength(LengthBounds{
			MinInteger:  &minInt,
			MinFraction: &minFrac,
			MaxFraction: &maxFrac,
		}))
	if !hasThousands {
		config = config.Grouping(GroupingNever)
	}
	if hasDecimal && maxFrac == 0 {
		config = config.DecimalSeparator(DecimalSeparatorAlways)
	}
	if result.Percent {
		config = config.Scale(100)
	}

	result.Configuration = config
	result.Prefix = prefix.String()
	result.Suffix = suffix.String()
	return result, nil
}

// patternHandle wraps an engine handle with the literal affixes of a pattern.
type patternHandle struct {
	Handle
	prefix string
	suffix string
}

func (h *patternHandle) Format(v Value) (string, error) {
	text, _, err := h.FormatFields(v)
	return text, err
}

func (h *patternHandle) FormatFields(v Value) (string, []FieldPosition, error) {
	text, fields, err := h.Handle.FormatFields(v)
	if err != nil {
		return "", nil, err
	}

	w := &fieldWriter{}
	writePatternAffix(w, h.prefix)
	w.literal(text)
	writePatternAffix(w, h.suffix)

	w.fields = append(w.fields, shiftFields(fields, utf16Len(h.prefix))...)
	return w.String(), w.positions(), nil
}

func writePatternAffix(w *fieldWriter, affix string) {
	for _, r := range affix {
		if r == '%' {
			w.write(FieldPercent, "%")
			continue
		}
		w.literal(string(r))
	}
}
