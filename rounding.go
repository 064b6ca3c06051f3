package formatstyle

import (
	"github.com/shopspring/decimal"
)

// RoundingRule selects how a value is snapped to the retained precision.
// The zero value means "unspecified" and lets the engine use its default (half-even).
type RoundingRule uint8

const (
	RoundToNearestOrEven RoundingRule = iota + 1
	RoundToNearestOrAwayFromZero
	RoundUp
	RoundDown
	RoundTowardZero
	RoundAwayFromZero
)

func (r RoundingRule) String() string {
	switch r {
	case RoundToNearestOrEven:
		return "toNearestOrEven"
	case RoundToNearestOrAwayFromZero:
		return "toNearestOrAwayFromZero"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundTowardZero:
		return "towardZero"
	case RoundAwayFromZero:
		return "awayFromZero"
	default:
		return ""
	}
}

func (r RoundingRule) orDefault() RoundingRule {
	switch r {
	case RoundToNearestOrEven, RoundToNearestOrAwayFromZero, RoundUp, RoundDown, RoundTowardZero, RoundAwayFromZero:
		return r
	default:
		return RoundToNearestOrEven
	}
}

var (
	decimalOne = decimal.NewFromInt(1)
	decimalTwo = decimal.NewFromInt(2)
)

// roundToPlaces rounds value to the given number of fraction digits.
// Negative places round to tens, hundreds and so on.
func roundToPlaces(value decimal.Decimal, places int32, rule RoundingRule) decimal.Decimal {
	return roundToIncrement(value, decimal.New(1, -places), rule)
}

// roundToIncrement snaps value to the nearest multiple of increment using rule.
// The arithmetic is exact: QuoRem yields a truncated quotient and a remainder that
// carries the sign of value, so ties are detected without approximation.
func roundToIncrement(value, increment decimal.Decimal, rule RoundingRule) decimal.Decimal {
	increment = increment.Abs()
	if increment.IsZero() {
		return value
	}

	quotient, remainder := value.QuoRem(increment, 0)
	if remainder.IsZero() {
		return value
	}

	step := decimalOne
	if value.Sign() < 0 {
		step = step.Neg()
	}

	half := remainder.Abs().Mul(decimalTwo).Cmp(increment)

	switch rule.orDefault() {
	case RoundTowardZero:
	case RoundAwayFromZero:
		quotient = quotient.Add(step)
	case RoundUp:
		if remainder.Sign() > 0 {
			quotient = quotient.Add(decimalOne)
		}
	case RoundDown:
		if remainder.Sign() < 0 {
			quotient = quotient.Sub(decimalOne)
		}
	case RoundToNearestOrAwayFromZero:
		if half >= 0 {
			quotient = quotient.Add(step)
		}
	case RoundToNearestOrEven:
		if half > 0 || (half == 0 && isOdd(quotient)) {
			quotient = quotient.Add(step)
		}
	}

	return quotient.Mul(increment)
}

func isOdd(integer decimal.Decimal) bool {
	return !integer.Mod(decimalTwo).IsZero()
}

// leadingExponent returns the power of ten of the most significant digit of value.
// Zero reports 0.
func leadingExponent(value decimal.Decimal) int32 {
	if value.IsZero() {
		return 0
	}
	coefficient := value.Coefficient()
	digits := len(coefficient.Abs(coefficient).String())
	return int32(digits) + value.Exponent() - 1
}

// fractionDigits counts the digits after the decimal point of an exact decimal text.
func fractionDigits(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			return len(text) - i - 1
		}
	}
	return 0
}
