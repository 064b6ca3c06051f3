package formatstyle

import (
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DurationUnit is a calendar-free time unit. Larger units compare greater.
type DurationUnit uint8

const (
	Nanoseconds DurationUnit = iota + 1
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Weeks
)

// AllDurationUnits lists every unit from largest to smallest
var AllDurationUnits = []DurationUnit{Weeks, Days, Hours, Minutes, Seconds, Milliseconds, Microseconds, Nanoseconds}

// unitAttoseconds is the fixed size of each unit in attoseconds (1e-18 s).
var unitAttoseconds = map[DurationUnit]decimal.Decimal{
	Nanoseconds:  decimal.New(1, 9),
	Microseconds: decimal.New(1, 12),
	Milliseconds: decimal.New(1, 15),
	Seconds:      decimal.New(1, 18),
	Minutes:      decimal.New(6, 19),
	Hours:        decimal.New(36, 20),
	Days:         decimal.New(864, 20),
	Weeks:        decimal.New(6048, 20),
}

// divisionPlaces bounds the fraction digits kept when converting attoseconds
// into a unit. Attoseconds need 18 digits against seconds.
const divisionPlaces = 24

var durationUnitNames = map[DurationUnit]string{
	Nanoseconds:  "nanosecond",
	Microseconds: "microsecond",
	Milliseconds: "millisecond",
	Seconds:      "second",
	Minutes:      "minute",
	Hours:        "hour",
	Days:         "day",
	Weeks:        "week",
}

func (u DurationUnit) String() string {
	return durationUnitNames[u]
}

// cldrKey is the unit identifier used by CLDR unit patterns
func (u DurationUnit) cldrKey() string {
	return "duration-" + durationUnitNames[u]
}

func (u DurationUnit) size() decimal.Decimal {
	return unitAttoseconds[u]
}

func (u DurationUnit) valid() bool {
	_, ok := unitAttoseconds[u]
	return ok
}

// Duration is a signed span with attosecond resolution. Seconds and Attoseconds
// are summed, so mixed signs are allowed.
type Duration struct {
	Seconds     int64
	Attoseconds int64
}

// FromStd converts a time.Duration
func FromStd(d time.Duration) Duration {
	return Duration{
		Seconds:     int64(d / time.Second),
		Attoseconds: int64(d%time.Second) * 1_000_000_000,
	}
}

func (d Duration) attoseconds() decimal.Decimal {
	return decimal.NewFromInt(d.Seconds).Shift(18).Add(decimal.NewFromInt(d.Attoseconds))
}

// UnitValue is one entry of a decomposition.
type UnitValue struct {
	Unit  DurationUnit
	Value decimal.Decimal
	// SignedZero marks a negative duration whose leading unit rounded to zero
	SignedZero bool
}

// Negative reports whether this entry carries the duration's minus sign
func (v UnitValue) Negative() bool {
	return v.SignedZero || v.Value.Sign() < 0
}

// Float64 returns the value as a float. A signed zero reports -0.1 so
// renderers that only see floats still emit a minus sign.
func (v UnitValue) Float64() float64 {
	if v.SignedZero {
		return -0.1
	}
	return v.Value.InexactFloat64()
}

// DurationFormatPlan lists unit values from the most to the least significant unit.
type DurationFormatPlan []UnitValue

// Units returns the units present in the plan
func (p DurationFormatPlan) Units() []DurationUnit {
	return lo.Map(p, func(v UnitValue, _ int) DurationUnit { return v.Unit })
}

// Negative reports whether the plan describes a negative duration
func (p DurationFormatPlan) Negative() bool {
	return lo.SomeBy(p, func(v UnitValue) bool { return v.Negative() })
}

// DecomposeOptions drive Decompose.
type DecomposeOptions struct {
	// Units allowed in the output. Empty means seconds only.
	Units []DurationUnit
	// Rounding applies to the smallest unit. Zero means RoundToNearestOrEven.
	Rounding RoundingRule
	// MaxFractionLength bounds fraction digits kept on the smallest unit; negative is unbounded.
	MaxFractionLength int
	// RoundingIncrement snaps the smallest unit to multiples of itself when non-zero.
	RoundingIncrement decimal.Decimal
	// MaxUnitCount caps the number of entries; zero is unlimited.
	MaxUnitCount int
	// DropZeroUnits removes entries whose value is zero.
	DropZeroUnits bool
}

// Decompose splits d into per-unit magnitudes.
//
// Larger units take truncated integer quotients; the smallest unit keeps the
// rounded remainder. The total is rounded in terms of the smallest unit before
// the walk, which yields the same digits as rounding the remainder but lets a
// carry (59.6 s -> 1 min) reach the larger units.
func Decompose(d Duration, opts DecomposeOptions) DurationFormatPlan {
	units := sortedUnits(opts.Units)
	total := d.attoseconds()
	negative := total.Sign() < 0

	plan := decompose(total.Abs(), units, opts)

	if opts.MaxUnitCount > 0 && len(plan) > opts.MaxUnitCount {
		start := len(units) - 1
		for _, entry := range plan {
			if !entry.Value.IsZero() {
				start = slices.Index(units, entry.Unit)
				break
			}
		}
		end := min(start+opts.MaxUnitCount, len(units))
		plan = decompose(total.Abs(), units[start:end], opts)
	}

	if negative {
		applySign(plan)
	}
	return plan
}

func decompose(magnitude decimal.Decimal, units []DurationUnit, opts DecomposeOptions) DurationFormatPlan {
	smallest := units[len(units)-1]
	remaining := roundSmallest(magnitude.DivRound(smallest.size(), divisionPlaces), opts).Mul(smallest.size())

	plan := make(DurationFormatPlan, 0, len(units))
	for i, unit := range units {
		if i == len(units)-1 {
			plan = append(plan, UnitValue{Unit: unit, Value: remaining.DivRound(unit.size(), divisionPlaces)})
			break
		}
		quotient, rest := remaining.QuoRem(unit.size(), 0)
		plan = append(plan, UnitValue{Unit: unit, Value: quotient})
		remaining = rest
	}

	for i := range plan {
		plan[i].Value = normalizeZero(plan[i].Value)
	}

	if opts.DropZeroUnits {
		nonZero := lo.Filter(plan, func(v UnitValue, _ int) bool { return !v.Value.IsZero() })
		if len(nonZero) == 0 {
			return DurationFormatPlan{{Unit: smallest, Value: decimal.Zero}}
		}
		plan = nonZero
	}
	return plan
}

func roundSmallest(value decimal.Decimal, opts DecomposeOptions) decimal.Decimal {
	rule := opts.Rounding.orDefault()
	if !opts.RoundingIncrement.IsZero() {
		value = roundToIncrement(value, opts.RoundingIncrement, rule)
	}
	if opts.MaxFractionLength >= 0 {
		value = roundToPlaces(value, int32(opts.MaxFractionLength), rule)
	}
	return value
}

func applySign(plan DurationFormatPlan) {
	for i := range plan {
		if !plan[i].Value.IsZero() {
			plan[i].Value = plan[i].Value.Neg()
			return
		}
	}
	plan[0].SignedZero = true
}

// sortedUnits dedupes units and orders them from largest to smallest.
func sortedUnits(units []DurationUnit) []DurationUnit {
	set := mapset.NewThreadUnsafeSet[DurationUnit]()
	for _, unit := range units {
		if unit.valid() {
			set.Add(unit)
		}
	}
	if set.Cardinality() == 0 {
		return []DurationUnit{Seconds}
	}

	sorted := set.ToSlice()
	slices.SortFunc(sorted, func(a, b DurationUnit) int {
		return b.size().Cmp(a.size())
	})
	return sorted
}

// normalizeZero strips the exponent noise of a zero so it prints as "0"
func normalizeZero(value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}
	return value
}
