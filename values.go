package formatstyle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ValueKind identifies which numeric representation a Value carries
type ValueKind uint8

const (
	IntegerKind ValueKind = iota
	FloatKind
	DecimalKind
)

// Value is a closed union over the numeric inputs the formatters accept.
type Value struct {
	kind    ValueKind
	integer int64
	float   float64
	decimal decimal.Decimal
	// negativeZero renders a minus sign on a zero magnitude
	negativeZero bool
}

// Int wraps an integer input
func Int(v int64) Value {
	return Value{kind: IntegerKind, integer: v}
}

// Float wraps a floating-point input
func Float(v float64) Value {
	return Value{kind: FloatKind, float: v}
}

// Decimal wraps an arbitrary-precision decimal input
func Decimal(v decimal.Decimal) Value {
	return Value{kind: DecimalKind, decimal: v}
}

func negativeZeroValue() Value {
	return Value{kind: DecimalKind, decimal: decimal.Zero, negativeZero: true}
}

// Kind reports the representation carried by v
func (v Value) Kind() ValueKind {
	return v.kind
}

// Decimal converts v to an exact decimal. Non-finite floats cannot be converted.
func (v Value) Decimal() (decimal.Decimal, error) {
	switch v.kind {
	case IntegerKind:
		return decimal.NewFromInt(v.integer), nil
	case FloatKind:
		if math.IsNaN(v.float) || math.IsInf(v.float, 0) {
			return decimal.Zero, fmt.Errorf("formatstyle: non-finite value %v", v.float)
		}
		return decimal.NewFromFloat(v.float), nil
	case DecimalKind:
		return v.decimal, nil
	default:
		panic(fmt.Sprintf("formatstyle: unknown value kind %d", v.kind))
	}
}

// Negative reports whether the value is below zero, including an explicit negative zero.
func (v Value) Negative() bool {
	switch v.kind {
	case IntegerKind:
		return v.integer < 0
	case FloatKind:
		return v.float < 0 || (v.float == 0 && math.Signbit(v.float))
	case DecimalKind:
		return v.negativeZero || v.decimal.Sign() < 0
	default:
		panic(fmt.Sprintf("formatstyle: unknown value kind %d", v.kind))
	}
}

// String returns the unlocalized textual representation of v.
func (v Value) String() string {
	switch v.kind {
	case IntegerKind:
		return strconv.FormatInt(v.integer, 10)
	case FloatKind:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case DecimalKind:
		if v.negativeZero {
			return "-" + v.decimal.String()
		}
		return v.decimal.String()
	default:
		panic(fmt.Sprintf("formatstyle: unknown value kind %d", v.kind))
	}
}
