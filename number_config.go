package formatstyle

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// PrecisionKind identifies the active precision mode
type PrecisionKind uint8

const (
	PrecisionUnspecified PrecisionKind = iota
	PrecisionSignificantDigits
	PrecisionIntegerAndFraction
)

type bound struct {
	value int
	set   bool
}

func boundOf(v *int) bound {
	if v == nil {
		return bound{}
	}
	return bound{value: *v, set: true}
}

func exactly(v int) bound {
	return bound{value: v, set: true}
}

// Precision describes either significant digits or integer/fraction lengths.
type Precision struct {
	kind    PrecisionKind
	minSig  int
	maxSig  bound
	minInt  bound
	maxInt  bound
	minFrac bound
	maxFrac bound
}

// LengthBounds carries the optional integer/fraction bounds of a precision.
type LengthBounds struct {
	MinInteger  *int
	MaxInteger  *int
	MinFraction *int
	MaxFraction *int
}

// SignificantDigits requires at least min significant digits with no upper bound.
func SignificantDigits(min int) Precision {
	return Precision{kind: PrecisionSignificantDigits, minSig: min}
}

// SignificantDigitsRange keeps between min and max significant digits.
func SignificantDigitsRange(min, max int) Precision {
	return Precision{kind: PrecisionSignificantDigits, minSig: min, maxSig: exactly(max)}
}

// IntegerAndFractionLength builds a length precision from optional bounds
func IntegerAndFractionLength(b LengthBounds) Precision {
	return Precision{
		kind:    PrecisionIntegerAndFraction,
		minInt:  boundOf(b.MinInteger),
		maxInt:  boundOf(b.MaxInteger),
		minFrac: boundOf(b.MinFraction),
		maxFrac: boundOf(b.MaxFraction),
	}
}

// FractionLength keeps between min and max fraction digits.
func FractionLength(min, max int) Precision {
	return Precision{kind: PrecisionIntegerAndFraction, minFrac: exactly(min), maxFrac: exactly(max)}
}

// IntegerLength keeps between min and max integer digits.
func IntegerLength(min, max int) Precision {
	return Precision{kind: PrecisionIntegerAndFraction, minInt: exactly(min), maxInt: exactly(max)}
}

// Kind reports the precision mode
func (p Precision) Kind() PrecisionKind {
	return p.kind
}

func (p Precision) validate() error {
	var err error
	switch p.kind {
	case PrecisionSignificantDigits:
		if p.minSig < 1 {
			err = multierr.Append(err, fmt.Errorf("significant digits minimum %d must be at least 1", p.minSig))
		}
		if p.maxSig.set && p.maxSig.value < p.minSig {
			err = multierr.Append(err, fmt.Errorf("significant digits maximum %d below minimum %d", p.maxSig.value, p.minSig))
		}
	case PrecisionIntegerAndFraction:
		err = multierr.Append(err, validateRange("integer length", p.minInt, p.maxInt))
		err = multierr.Append(err, validateRange("fraction length", p.minFrac, p.maxFrac))
	}
	return err
}

func validateRange(name string, min, max bound) error {
	var err error
	if min.set && min.value < 0 {
		err = multierr.Append(err, fmt.Errorf("%s minimum %d is negative", name, min.value))
	}
	if max.set && max.value < 0 {
		err = multierr.Append(err, fmt.Errorf("%s maximum %d is negative", name, max.value))
	}
	if min.set && max.set && min.value > max.value {
		err = multierr.Append(err, fmt.Errorf("%s minimum %d exceeds maximum %d", name, min.value, max.value))
	}
	return err
}

// Grouping controls grouping separators
type Grouping uint8

const (
	GroupingAutomatic Grouping = iota
	GroupingNever
)

// DecimalSeparatorStrategy controls when the decimal separator is shown
type DecimalSeparatorStrategy uint8

const (
	DecimalSeparatorAutomatic DecimalSeparatorStrategy = iota
	DecimalSeparatorAlways
)

// Notation selects plain, scientific or compact rendering
type Notation uint8

const (
	NotationAutomatic Notation = iota
	NotationScientific
	NotationCompactName
)

// SignDisplayStrategy holds the sign visibility for positive, zero and negative values.
// Only four combinations are meaningful; NewSignDisplayStrategy normalizes the rest.
type SignDisplayStrategy struct {
	set      bool
	positive bool
	zero     bool
	negative bool
}

// SignAutomatic hides the sign on positive values and shows it on negative ones.
func SignAutomatic() SignDisplayStrategy {
	return SignDisplayStrategy{set: true, negative: true}
}

// SignAlways shows the sign on every non-zero value, and on zero when includingZero is set.
func SignAlways(includingZero bool) SignDisplayStrategy {
	return SignDisplayStrategy{set: true, positive: true, zero: includingZero, negative: true}
}

// SignNever hides the sign everywhere
func SignNever() SignDisplayStrategy {
	return SignDisplayStrategy{set: true}
}

// NewSignDisplayStrategy normalizes an arbitrary visibility triple to the nearest valid strategy.
// A hidden negative sign means never; a visible positive sign means always; otherwise automatic.
func NewSignDisplayStrategy(positive, zero, negative bool) SignDisplayStrategy {
	switch {
	case !negative:
		return SignNever()
	case positive:
		return SignAlways(zero)
	default:
		return SignAutomatic()
	}
}

// NumberFormatConfiguration is an immutable description of how to render a number.
// Every modifier returns a new copy.
type NumberFormatConfiguration struct {
	precision        Precision
	grouping         Grouping
	sign             SignDisplayStrategy
	decimalSeparator DecimalSeparatorStrategy
	rounding         RoundingRule
	increment        decimal.Decimal
	notation         Notation
	scale            decimal.Decimal
}

// NewNumberFormatConfiguration returns the default configuration
func NewNumberFormatConfiguration() NumberFormatConfiguration {
	return NumberFormatConfiguration{}
}

func (c NumberFormatConfiguration) Precision(p Precision) NumberFormatConfiguration {
	c.precision = p
	return c
}

func (c NumberFormatConfiguration) Grouping(g Grouping) NumberFormatConfiguration {
	c.grouping = g
	return c
}

func (c NumberFormatConfiguration) Sign(s SignDisplayStrategy) NumberFormatConfiguration {
	c.sign = s
	return c
}

func (c NumberFormatConfiguration) DecimalSeparator(d DecimalSeparatorStrategy) NumberFormatConfiguration {
	c.decimalSeparator = d
	return c
}

func (c NumberFormatConfiguration) Rounding(rule RoundingRule) NumberFormatConfiguration {
	c.rounding = rule
	return c
}

// RoundingIncrement snaps values to multiples of increment. A zero increment clears it.
func (c NumberFormatConfiguration) RoundingIncrement(increment decimal.Decimal) NumberFormatConfiguration {
	c.increment = increment
	return c
}

// RoundingIncrementInt is RoundingIncrement for integer steps
func (c NumberFormatConfiguration) RoundingIncrementInt(increment int64) NumberFormatConfiguration {
	return c.RoundingIncrement(decimal.NewFromInt(increment))
}

// RoundingIncrementFloat is RoundingIncrement for floating-point steps. The shortest
// decimal text of the float is used, so 0.05 stays 0.05.
func (c NumberFormatConfiguration) RoundingIncrementFloat(increment float64) NumberFormatConfiguration {
	return c.RoundingIncrement(decimal.NewFromFloat(increment))
}

func (c NumberFormatConfiguration) Notation(n Notation) NumberFormatConfiguration {
	c.notation = n
	return c
}

// Scale multiplies values before formatting, e.g. 100 for percent.
func (c NumberFormatConfiguration) Scale(scale float64) NumberFormatConfiguration {
	return c.ScaleDecimal(decimal.NewFromFloat(scale))
}

func (c NumberFormatConfiguration) ScaleDecimal(scale decimal.Decimal) NumberFormatConfiguration {
	c.scale = scale
	return c
}

func (c NumberFormatConfiguration) hasScale() bool {
	return !c.scale.IsZero() && !c.scale.Equal(decimalOne)
}

func (c NumberFormatConfiguration) hasIncrement() bool {
	return !c.increment.IsZero()
}

// Equal reports whether both configurations render identically.
func (c NumberFormatConfiguration) Equal(other NumberFormatConfiguration) bool {
	return CompileSkeleton(c) == CompileSkeleton(other)
}

// Validate reports every contract violation in c.
func (c NumberFormatConfiguration) Validate() error {
	var err error

	err = multierr.Append(err, c.precision.validate())

	if c.increment.Sign() < 0 {
		err = multierr.Append(err, fmt.Errorf("rounding increment %s is negative", c.increment))
	}
	if c.hasIncrement() && c.precision.kind == PrecisionSignificantDigits {
		err = multierr.Append(err, fmt.Errorf("rounding increment cannot be combined with significant digits"))
	}
	if c.scale.Sign() < 0 {
		err = multierr.Append(err, fmt.Errorf("scale %s is negative", c.scale))
	}
	if c.rounding != 0 && c.rounding.String() == "" {
		err = multierr.Append(err, fmt.Errorf("unknown rounding rule %d", c.rounding))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}
