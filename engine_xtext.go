package formatstyle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/atomic"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultMaxFraction is used when a skeleton carries no precision stem
const defaultMaxFraction = 6

var (
	decimalTen      = decimal.NewFromInt(10)
	decimalThousand = decimal.NewFromInt(1000)
)

type signMode uint8

const (
	signAuto signMode = iota
	signAlways
	signExceptZero
	signNever
)

type precisionMode uint8

const (
	precisionDefault precisionMode = iota
	precisionSignificant
	precisionFraction
	precisionIncrement
)

// renderPlan is a parsed skeleton. Unbounded maxima are -1.
type renderPlan struct {
	scale decimal.Decimal

	precision precisionMode
	minSig    int
	maxSig    int
	minFrac   int
	maxFrac   int
	increment decimal.Decimal

	integerSet bool
	minInt     int
	maxInt     int

	grouping      bool
	sign          signMode
	decimalAlways bool
	rounding      RoundingRule
	notation      Notation
}

func parseSkeleton(skeleton string) (renderPlan, error) {
	plan := renderPlan{grouping: true, minInt: 1, maxInt: -1}

	for _, token := range strings.Fields(skeleton) {
		if err := plan.apply(token); err != nil {
			return renderPlan{}, fmt.Errorf("%w: %q: %w", ErrUnsupportedSkeleton, token, err)
		}
	}
	return plan, nil
}

func (p *renderPlan) apply(token string) error {
	switch {
	case token == stemGroupOff:
		p.grouping = false
	case token == stemDecimalAlways:
		p.decimalAlways = true
	case token == stemScientific:
		p.notation = NotationScientific
	case token == stemCompactShort:
		p.notation = NotationCompactName
	case token == stemSignAlways:
		p.sign = signAlways
	case token == stemSignExceptZero:
		p.sign = signExceptZero
	case token == stemSignAuto:
		p.sign = signAuto
	case token == stemSignNever:
		p.sign = signNever
	case token == stemPrecisionInteger:
		p.precision = precisionFraction
		p.minFrac, p.maxFrac = 0, 0
	case strings.HasPrefix(token, stemRoundingMode):
		rule, ok := lo.FindKey(roundingModeStems, token)
		if !ok {
			return fmt.Errorf("unknown rounding mode")
		}
		p.rounding = rule
	case strings.HasPrefix(token, stemScale):
		scale, err := decimal.NewFromString(strings.TrimPrefix(token, stemScale))
		if err != nil {
			return err
		}
		p.scale = scale
	case strings.HasPrefix(token, stemIncrement):
		text := strings.TrimPrefix(token, stemIncrement)
		increment, err := decimal.NewFromString(text)
		if err != nil {
			return err
		}
		if increment.Sign() <= 0 {
			return fmt.Errorf("increment must be positive")
		}
		p.precision = precisionIncrement
		p.increment = increment
		p.minFrac = fractionDigits(text)
		p.maxFrac = p.minFrac
	case strings.HasPrefix(token, stemIntegerWidth):
		return p.applyIntegerWidth(strings.TrimPrefix(token, stemIntegerWidth))
	case strings.HasPrefix(token, "@"):
		min, max, err := parseDigitStem(token, '@')
		if err != nil {
			return err
		}
		p.precision = precisionSignificant
		p.minSig, p.maxSig = min, max
	case strings.HasPrefix(token, "."):
		min, max, err := parseDigitStem(token[1:], '0')
		if err != nil {
			return err
		}
		p.precision = precisionFraction
		p.minFrac, p.maxFrac = min, max
	default:
		return fmt.Errorf("unknown stem")
	}
	return nil
}

// parseDigitStem reads required markers followed by '#' markers or a single '+'.
// A '+' leaves the maximum unbounded (-1).
func parseDigitStem(stem string, required byte) (int, int, error) {
	i := 0
	for i < len(stem) && stem[i] == required {
		i++
	}
	min := i

	if i < len(stem) && stem[i] == '+' {
		if i != len(stem)-1 {
			return 0, 0, fmt.Errorf("trailing characters after '+'")
		}
		return min, -1, nil
	}
	for i < len(stem) && stem[i] == '#' {
		i++
	}
	if i != len(stem) {
		return 0, 0, fmt.Errorf("unexpected %q", stem[i])
	}
	return min, i, nil
}

func (p *renderPlan) applyIntegerWidth(stem string) error {
	p.integerSet = true
	if strings.HasPrefix(stem, "+") {
		for i := 1; i < len(stem); i++ {
			if stem[i] != '0' {
				return fmt.Errorf("unexpected %q", stem[i])
			}
		}
		p.minInt, p.maxInt = len(stem)-1, -1
		return nil
	}

	hashes := 0
	for hashes < len(stem) && stem[hashes] == '#' {
		hashes++
	}
	for i := hashes; i < len(stem); i++ {
		if stem[i] != '0' {
			return fmt.Errorf("unexpected %q", stem[i])
		}
	}
	p.minInt = len(stem) - hashes
	p.maxInt = len(stem)
	return nil
}

// XTextEngine renders skeletons with exact decimal arithmetic and the locale
// data of a LocaleRegistry. Locales unknown to the registry take their symbols
// from golang.org/x/text.
type XTextEngine struct {
	registry *LocaleRegistry
}

var _ Engine = (*XTextEngine)(nil)

func NewXTextEngine(registry *LocaleRegistry) *XTextEngine {
	if registry == nil {
		registry = NewLocaleRegistry()
	}
	return &XTextEngine{registry: registry}
}

func (e *XTextEngine) Open(skeleton, locale string) (Handle, error) {
	plan, err := parseSkeleton(skeleton)
	if err != nil {
		return nil, err
	}

	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %w", ErrEngineUnavailable, locale, err)
	}

	bundle := e.registry.Bundle(tag.String())
	return &xtextHandle{
		plan:    plan,
		symbols: bundle.Symbols,
		compact: bundle.Compact,
		digits:  []rune(bundle.Symbols.Digits),
		closed:  atomic.NewBool(false),
	}, nil
}

type xtextHandle struct {
	plan    renderPlan
	symbols NumberSymbols
	compact map[int]string
	digits  []rune
	closed  *atomic.Bool
}

func (h *xtextHandle) Format(v Value) (string, error) {
	text, _, err := h.FormatFields(v)
	return text, err
}

func (h *xtextHandle) FormatFields(v Value) (string, []FieldPosition, error) {
	if h.closed.Load() {
		return "", nil, ErrHandleClosed
	}

	value, err := v.Decimal()
	if err != nil {
		return "", nil, err
	}
	negative := v.Negative()

	if !h.plan.scale.IsZero() {
		value = value.Mul(h.plan.scale)
	}

	var (
		mantissa decimal.Decimal
		frac     int
		exponent int32
		affix    string
	)
	switch h.plan.notation {
	case NotationScientific:
		mantissa, frac, exponent = h.scientific(value)
	case NotationCompactName:
		mantissa, frac, affix = h.compactName(value)
	default:
		mantissa, frac = h.round(value, h.plan.rounding)
	}

	w := &fieldWriter{}
	h.writeSign(w, negative, mantissa.IsZero())

	prefix, suffix := "", ""
	if affix != "" {
		prefix, suffix, _ = strings.Cut(affix, "{0}")
	}
	h.writeAffix(w, prefix)
	h.writeNumber(w, mantissa.Abs(), frac)
	if h.plan.notation == NotationScientific {
		h.writeExponent(w, exponent)
	}
	h.writeAffix(w, suffix)

	return w.String(), w.positions(), nil
}

func (h *xtextHandle) Close() error {
	h.closed.Store(true)
	return nil
}

// round applies the precision of the plan. It returns the rounded value and the
// number of fraction digits to display.
func (h *xtextHandle) round(value decimal.Decimal, rule RoundingRule) (decimal.Decimal, int) {
	p := h.plan
	switch p.precision {
	case precisionIncrement:
		return roundToIncrement(value, p.increment, rule), p.minFrac
	case precisionSignificant:
		rounded := value
		if p.maxSig >= 0 {
			rounded = roundToPlaces(value, int32(p.maxSig)-1-leadingExponent(value), rule)
		}
		required := max(0, p.minSig-1-int(leadingExponent(rounded)))
		return rounded, max(required, visibleFraction(rounded))
	case precisionFraction:
		rounded := value
		if p.maxFrac >= 0 {
			rounded = roundToPlaces(value, int32(p.maxFrac), rule)
		}
		return rounded, max(p.minFrac, visibleFraction(rounded))
	default:
		rounded := roundToPlaces(value, defaultMaxFraction, rule)
		return rounded, visibleFraction(rounded)
	}
}

// scientific normalizes value to one integer digit and rounds the mantissa.
// Rounding 9.99 up to 10 moves the exponent by one.
func (h *xtextHandle) scientific(value decimal.Decimal) (decimal.Decimal, int, int32) {
	exponent := leadingExponent(value)
	mantissa, frac := h.round(value.Shift(-exponent), h.plan.rounding)
	if mantissa.Abs().Cmp(decimalTen) >= 0 {
		exponent++
		mantissa, frac = h.round(value.Shift(-exponent), h.plan.rounding)
	}
	return mantissa, frac, exponent
}

// compactName divides value by the largest compact tier not above its magnitude.
// Without explicit precision two significant digits are kept, never dropping
// integer digits. A mantissa rounded up to 1000 moves to the next tier.
func (h *xtextHandle) compactName(value decimal.Decimal) (decimal.Decimal, int, string) {
	tier := h.compactTier(leadingExponent(value))

	for {
		mantissa := value
		pattern := ""
		if tier > 0 {
			mantissa = value.Shift(-int32(tier))
			pattern = h.compact[tier]
		}

		var frac int
		if h.plan.precision == precisionDefault {
			places := max(0, 1-int(leadingExponent(mantissa)))
			mantissa = roundToPlaces(mantissa, int32(places), h.plan.rounding)
			frac = visibleFraction(mantissa)
		} else {
			mantissa, frac = h.round(mantissa, h.plan.rounding)
		}

		if mantissa.Abs().Cmp(decimalThousand) >= 0 {
			if next := h.compactTier(int32(tier) + 3); next > tier {
				tier = next
				continue
			}
		}
		return mantissa, frac, pattern
	}
}

// compactTier returns the largest configured power of ten at or below exponent, or 0.
func (h *xtextHandle) compactTier(exponent int32) int {
	tier := 0
	for power := range h.compact {
		if power > tier && int32(power) <= exponent && h.compact[power] != "" {
			tier = power
		}
	}
	return tier
}

func (h *xtextHandle) writeSign(w *fieldWriter, negative, zero bool) {
	var symbol string
	switch h.plan.sign {
	case signAlways:
		symbol = lo.Ternary(negative, h.symbols.Minus, h.symbols.Plus)
	case signExceptZero:
		if !zero {
			symbol = lo.Ternary(negative, h.symbols.Minus, h.symbols.Plus)
		}
	case signNever:
	default:
		if negative {
			symbol = h.symbols.Minus
		}
	}
	w.write(FieldSign, symbol)
}

func (h *xtextHandle) writeAffix(w *fieldWriter, affix string) {
	if affix == "" {
		return
	}
	trimmed := strings.TrimSpace(affix)
	lead := affix[:strings.Index(affix, trimmed)]
	w.literal(lead)
	w.write(FieldCompact, trimmed)
	w.literal(affix[len(lead)+len(trimmed):])
}

// writeNumber renders magnitude with exactly frac fraction digits.
func (h *xtextHandle) writeNumber(w *fieldWriter, magnitude decimal.Decimal, frac int) {
	text := magnitude.StringFixed(int32(frac))
	integer, fraction, _ := strings.Cut(text, ".")
	integer = h.integerWidth(integer)

	start := w.offset
	if h.plan.grouping && h.plan.notation != NotationScientific {
		h.writeGrouped(w, integer)
	} else {
		w.literal(h.localizeDigits(integer))
	}
	if integer != "" {
		w.mark(FieldInteger, start)
	}

	if fraction != "" || h.plan.decimalAlways {
		w.write(FieldDecimalSeparator, h.symbols.Decimal)
	}
	w.write(FieldFraction, h.localizeDigits(fraction))
}

// integerWidth pads the integer digits to the minimum width and keeps only the
// lowest maxInt digits.
func (h *xtextHandle) integerWidth(integer string) string {
	p := h.plan
	if p.maxInt >= 0 && len(integer) > p.maxInt {
		integer = integer[len(integer)-p.maxInt:]
	}
	if p.integerSet && p.minInt == 0 && strings.Trim(integer, "0") == "" {
		return ""
	}
	if len(integer) < p.minInt {
		integer = strings.Repeat("0", p.minInt-len(integer)) + integer
	}
	return integer
}

func (h *xtextHandle) writeGrouped(w *fieldWriter, integer string) {
	minGrouping := max(1, h.symbols.MinimumGroupingDigits)
	if len(integer) < 3+minGrouping {
		w.literal(h.localizeDigits(integer))
		return
	}

	head := len(integer) % 3
	if head == 0 {
		head = 3
	}
	w.literal(h.localizeDigits(integer[:head]))
	for i := head; i < len(integer); i += 3 {
		w.write(FieldGroupingSeparator, h.symbols.Group)
		w.literal(h.localizeDigits(integer[i : i+3]))
	}
}

func (h *xtextHandle) writeExponent(w *fieldWriter, exponent int32) {
	w.write(FieldExponentSymbol, h.symbols.Exponential)
	if exponent < 0 {
		w.write(FieldExponentSign, h.symbols.Minus)
		exponent = -exponent
	}
	w.write(FieldExponent, h.localizeDigits(fmt.Sprint(exponent)))
}

func (h *xtextHandle) localizeDigits(text string) string {
	if len(h.digits) != 10 || text == "" {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(h.digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// visibleFraction counts fraction digits of value without trailing zeros
func visibleFraction(value decimal.Decimal) int {
	if value.Exponent() >= 0 {
		return 0
	}
	text := value.Abs().String()
	_, fraction, ok := strings.Cut(text, ".")
	if !ok {
		return 0
	}
	return len(strings.TrimRight(fraction, "0"))
}

// probeSymbols discovers the number symbols of locale by rendering sample
// numbers through an x/text printer.
func probeSymbols(locale string) NumberSymbols {
	tag, err := language.Parse(locale)
	if err != nil {
		return NumberSymbols{}
	}
	printer := message.NewPrinter(tag)

	var symbols NumberSymbols

	sample := printer.Sprintf("%v", number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	separators := nonDigitRuns(sample)
	switch len(separators) {
	case 0:
	case 1:
		symbols.Decimal = separators[0]
	default:
		symbols.Group = separators[0]
		symbols.Decimal = separators[len(separators)-1]
	}

	if minus := printer.Sprintf("%v", number.Decimal(-1)); utf8.RuneCountInString(minus) > 1 {
		symbols.Minus = strings.TrimRightFunc(minus, unicode.IsDigit)
	}

	if percent := printer.Sprintf("%v", number.Percent(0.05)); percent != "" {
		if runs := digitRuns(percent); len(runs) == 1 {
			symbols.PercentPattern = strings.Replace(percent, runs[0], "{0}", 1)
		}
	}

	digits := []rune(printer.Sprintf("%v", number.Decimal(1234567890, number.NoSeparator())))
	if len(digits) == 10 && digits[9] != '0' {
		symbols.Digits = string(digits[9]) + string(digits[:9])
	}

	return symbols
}

func nonDigitRuns(text string) []string {
	return lo.Filter(strings.FieldsFunc(text, unicode.IsDigit), func(s string, _ int) bool { return s != "" })
}

func digitRuns(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
}
