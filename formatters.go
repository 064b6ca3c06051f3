package formatstyle

import (
	"github.com/samber/lo"
)

// Unlocalized renderings used when the engine or the locale data cannot serve a
// request. They never fail.

// FormatPlain returns the raw textual form of v
func FormatPlain(v Value) string {
	return v.String()
}

func plainPercent(v Value) string {
	d, err := v.Decimal()
	if err != nil {
		return v.String() + "%"
	}
	if v.Negative() && d.IsZero() {
		return "-0%"
	}
	return d.Shift(2).String() + "%"
}

// plainUnitPattern labels a unit with its English name
func plainUnitPattern(unit DurationUnit, plural bool) string {
	return "{0} " + unit.String() + lo.Ternary(plural, "s", "")
}
