package formatstyle

import (
	"errors"
	"strings"

	"go.uber.org/multierr"
)

// Cache key kinds
const (
	cacheKindSkeleton = "skeleton"
	cacheKindPattern  = "pattern"
)

// CacheKey identifies a cached handle: the compiled skeleton or source pattern
// plus the locale it was opened for.
type CacheKey struct {
	Kind   string
	Source string
	Locale string
}

// Formatter renders numbers, percentages, lists and durations for a locale.
// It never fails: engine or locale data problems degrade to unlocalized text
// and are reported to the logger.
type Formatter struct {
	engine        Engine
	patterns      PatternProvider
	registry      *LocaleRegistry
	cache         *FormatterCache[CacheKey, Handle]
	defaultLocale string
	logger        Logger
}

func (f *Formatter) locale(locale string) string {
	if locale = normalizeLocale(locale); locale != "" {
		return locale
	}
	return f.defaultLocale
}

// render formats v with the cached handle for key. A cache flush closes the
// handles it drops, so a caller holding one of them sees ErrHandleClosed; the
// handle is then reopened once.
func (f *Formatter) render(key CacheKey, open func() (Handle, error), v Value) (string, []FieldPosition, error) {
	for attempt := 0; ; attempt++ {
		h, err := f.cache.GetOrCreate(key, open)
		if err != nil {
			return "", nil, err
		}
		text, fields, err := h.FormatFields(v)
		if attempt == 0 && errors.Is(err, ErrHandleClosed) {
			continue
		}
		return text, fields, err
	}
}

func (f *Formatter) renderSkeleton(skeleton, locale string, v Value) (string, []FieldPosition, error) {
	key := CacheKey{Kind: cacheKindSkeleton, Source: skeleton, Locale: locale}
	return f.render(key, func() (Handle, error) {
		return f.engine.Open(skeleton, locale)
	}, v)
}

// closeEvicted releases a handle dropped by the cache
func (f *Formatter) closeEvicted(key CacheKey, h Handle) {
	if err := h.Close(); err != nil {
		f.logger.Debugf("close %s handle %q for %q: %v", key.Kind, key.Source, key.Locale, err)
	}
}

// Number formats v with configuration c
func (f *Formatter) Number(locale string, v Value, c NumberFormatConfiguration) string {
	text, _ := f.NumberFields(locale, v, c)
	return text
}

// NumberFields formats v and reports the position of every field in the result.
// The fallback rendering carries no fields.
func (f *Formatter) NumberFields(locale string, v Value, c NumberFormatConfiguration) (string, []FieldPosition) {
	locale = f.locale(locale)
	skeleton := CompileSkeleton(c)

	text, fields, err := f.renderSkeleton(skeleton, locale, v)
	if err != nil {
		f.logger.Debugf("format %s with %q for %q: %v", v, skeleton, locale, err)
		return FormatPlain(v), nil
	}
	return text, fields
}

// Percent scales v by 100 and wraps it in the locale percent pattern.
func (f *Formatter) Percent(locale string, v Value, c NumberFormatConfiguration) string {
	text, _ := f.PercentFields(locale, v, c)
	return text
}

func (f *Formatter) PercentFields(locale string, v Value, c NumberFormatConfiguration) (string, []FieldPosition) {
	locale = f.locale(locale)
	skeleton := CompileSkeleton(c.Scale(100))

	number, fields, err := f.renderSkeleton(skeleton, locale, v)
	if err != nil {
		f.logger.Debugf("format percent %s for %q: %v", v, locale, err)
		return plainPercent(v), nil
	}

	pattern := f.registry.Symbols(locale).PercentPattern
	prefix, suffix, ok := strings.Cut(pattern, "{0}")
	if !ok {
		prefix, suffix = "", "%"
	}

	w := &fieldWriter{}
	writePercentAffix(w, prefix)
	w.literal(number)
	writePercentAffix(w, suffix)
	w.fields = append(w.fields, shiftFields(fields, utf16Len(prefix))...)
	return w.String(), w.positions()
}

func writePercentAffix(w *fieldWriter, affix string) {
	trimmed := strings.TrimSpace(affix)
	if trimmed == "" {
		w.literal(affix)
		return
	}
	lead := affix[:strings.Index(affix, trimmed)]
	w.literal(lead)
	w.write(FieldPercent, trimmed)
	w.literal(affix[len(lead)+len(trimmed):])
}

// Pattern formats v with a spreadsheet-style pattern such as "#,##0.00".
// Handles are cached under the pattern text.
func (f *Formatter) Pattern(locale string, v Value, pattern string) string {
	locale = f.locale(locale)

	key := CacheKey{Kind: cacheKindPattern, Source: pattern, Locale: locale}
	text, _, err := f.render(key, func() (Handle, error) {
		parsed, err := ConfigurationFromPattern(pattern)
		if err != nil {
			return nil, err
		}
		inner, err := f.engine.Open(CompileSkeleton(parsed.Configuration), locale)
		if err != nil {
			return nil, err
		}
		return &patternHandle{Handle: inner, prefix: parsed.Prefix, suffix: parsed.Suffix}, nil
	}, v)
	if err != nil {
		f.logger.Debugf("format %s with pattern %q for %q: %v", v, pattern, locale, err)
		return FormatPlain(v)
	}
	return text
}

// List joins items with the locale list patterns of listType and width
func (f *Formatter) List(locale string, items []string, listType ListType, width UnitWidth) string {
	locale = f.locale(locale)
	patterns, err := LoadListPatterns(f.patterns, locale, listType, width, len(items))
	if err != nil {
		f.logger.Debugf("list patterns %s/%s for %q: %v", listType, width, locale, err)
	}
	return AssembleList(items, patterns)
}

// Registry exposes the locale data used by the formatter
func (f *Formatter) Registry() *LocaleRegistry {
	return f.registry
}

// CacheStats reports the handle cache counters
func (f *Formatter) CacheStats() CacheStats {
	return f.cache.Stats()
}

// Close drops every cached handle and closes it. The formatter stays usable;
// later calls open new handles.
func (f *Formatter) Close() error {
	var errs []error
	f.cache.Purge(func(_ CacheKey, h Handle) {
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
	})
	return multierr.Combine(errs...)
}
