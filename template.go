package formatstyle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is looked up in map contexts to find the locale
	LocaleKey string
	// DurationUnits are the units used by format_duration
	DurationUnits []DurationUnit
	DurationWidth UnitWidth
}

// TemplateHelpers exposes formatter helpers for text/template and html/template.
// Every helper takes the locale, or a map holding it under LocaleKey, first.
func TemplateHelpers(f *Formatter, cfg HelperConfig) map[string]any {
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}
	if len(cfg.DurationUnits) == 0 {
		cfg.DurationUnits = []DurationUnit{Hours, Minutes, Seconds}
	}

	localeOf := func(ctx any) string {
		return templateLocale(ctx, cfg.LocaleKey)
	}

	return map[string]any{
		"current_locale": localeOf,
		"format_number": func(ctx any, v any, fraction ...int) string {
			value, ok := templateValue(v)
			if !ok {
				return fmt.Sprint(v)
			}
			if f == nil {
				return FormatPlain(value)
			}
			config := NewNumberFormatConfiguration()
			if len(fraction) > 0 {
				config = config.Precision(FractionLength(fraction[0], fraction[0]))
			}
			return f.Number(localeOf(ctx), value, config)
		},
		"format_percent": func(ctx any, v any) string {
			value, ok := templateValue(v)
			if !ok {
				return fmt.Sprint(v)
			}
			if f == nil {
				return plainPercent(value)
			}
			return f.Percent(localeOf(ctx), value, NewNumberFormatConfiguration())
		},
		"format_list": func(ctx any, items ...string) string {
			if f == nil {
				return AssembleList(items, ListPatterns{})
			}
			return f.List(localeOf(ctx), items, ListAnd, UnitWidthWide)
		},
		"format_duration": func(ctx any, d time.Duration) string {
			if f == nil {
				return d.String()
			}
			return f.Duration(localeOf(ctx), FromStd(d), DurationUnitsStyle{
				Units: cfg.DurationUnits,
				Width: cfg.DurationWidth,
			})
		},
	}
}

func templateLocale(ctx any, key string) string {
	switch v := ctx.(type) {
	case string:
		return v
	case map[string]string:
		return v[key]
	case map[string]any:
		if locale, ok := v[key].(string); ok {
			return locale
		}
	}
	return ""
}

func templateValue(v any) (Value, bool) {
	switch n := v.(type) {
	case Value:
		return n, true
	case int:
		return Int(int64(n)), true
	case int32:
		return Int(int64(n)), true
	case int64:
		return Int(n), true
	case float32:
		return Float(float64(n)), true
	case float64:
		return Float(n), true
	case decimal.Decimal:
		return Decimal(n), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return Value{}, false
		}
		return Decimal(d), true
	default:
		return Value{}, false
	}
}
