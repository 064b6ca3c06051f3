package formatstyle

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(t *testing.T, opts ...Option) *Formatter {
	t.Helper()
	f, err := NewFormatter(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

type failingEngine struct {
	err   error
	opens int
}

func (e *failingEngine) Open(string, string) (Handle, error) {
	e.opens++
	return nil, e.err
}

type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debugf(template string, _ ...any) {
	l.debug = append(l.debug, template)
}

func (l *recordingLogger) Warnf(template string, _ ...any) {
	l.warn = append(l.warn, template)
}

func TestFormatterNumber(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name   string
		locale string
		value  Value
		config NumberFormatConfiguration
		want   string
	}{
		{
			name:   "default grouping",
			locale: "en",
			value:  Int(1000000),
			config: NewNumberFormatConfiguration(),
			want:   "1,000,000",
		},
		{
			name:   "grouping never",
			locale: "en",
			value:  Int(1000000),
			config: NewNumberFormatConfiguration().Grouping(GroupingNever),
			want:   "1000000",
		},
		{
			name:   "fraction length",
			locale: "en",
			value:  Float(3.14159),
			config: NewNumberFormatConfiguration().Precision(FractionLength(2, 2)),
			want:   "3.14",
		},
		{
			name:   "fraction length zero keeps the sign of negative zero",
			locale: "en",
			value:  Float(-0.001),
			config: NewNumberFormatConfiguration().Precision(FractionLength(0, 0)),
			want:   "-0",
		},
		{
			name:   "integer length pads",
			locale: "en",
			value:  Int(5),
			config: NewNumberFormatConfiguration().Precision(IntegerLength(3, 3)),
			want:   "005",
		},
		{
			name:   "significant digits",
			locale: "en",
			value:  Float(1234.5678),
			config: NewNumberFormatConfiguration().Precision(SignificantDigitsRange(1, 3)),
			want:   "1,230",
		},
		{
			name:   "sign always without zero",
			locale: "en",
			value:  Int(0),
			config: NewNumberFormatConfiguration().Sign(SignAlways(false)),
			want:   "0",
		},
		{
			name:   "sign always including zero",
			locale: "en",
			value:  Int(0),
			config: NewNumberFormatConfiguration().Sign(SignAlways(true)),
			want:   "+0",
		},
		{
			name:   "sign never",
			locale: "en",
			value:  Int(-42),
			config: NewNumberFormatConfiguration().Sign(SignNever()),
			want:   "42",
		},
		{
			name:   "decimal separator always",
			locale: "en",
			value:  Int(7),
			config: NewNumberFormatConfiguration().DecimalSeparator(DecimalSeparatorAlways),
			want:   "7.",
		},
		{
			name:   "rounding increment",
			locale: "en",
			value:  Float(1.23),
			config: NewNumberFormatConfiguration().RoundingIncrementFloat(0.05),
			want:   "1.25",
		},
		{
			name:   "rounding rule",
			locale: "en",
			value:  Float(2.5),
			config: NewNumberFormatConfiguration().Precision(FractionLength(0, 0)).Rounding(RoundToNearestOrAwayFromZero),
			want:   "3",
		},
		{
			name:   "scientific",
			locale: "en",
			value:  Int(12345),
			config: NewNumberFormatConfiguration().Notation(NotationScientific),
			want:   "1.2345E4",
		},
		{
			name:   "compact",
			locale: "en",
			value:  Int(1234),
			config: NewNumberFormatConfiguration().Notation(NotationCompactName),
			want:   "1.2K",
		},
		{
			name:   "scale",
			locale: "en",
			value:  Decimal(decimal.RequireFromString("1.5")),
			config: NewNumberFormatConfiguration().ScaleDecimal(decimal.NewFromInt(1000)),
			want:   "1,500",
		},
		{
			name:   "spanish",
			locale: "es",
			value:  Float(12345.5),
			config: NewNumberFormatConfiguration(),
			want:   "12.345,5",
		},
		{
			name:   "underscore locale",
			locale: "de_DE",
			value:  Float(1234.5),
			config: NewNumberFormatConfiguration(),
			want:   "1.234,5",
		},
		{
			name:   "empty locale uses the default",
			locale: "",
			value:  Float(1234.5),
			config: NewNumberFormatConfiguration(),
			want:   "1,234.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Number(tt.locale, tt.value, tt.config))
		})
	}
}

func TestFormatterDefaultLocaleOption(t *testing.T) {
	f := newTestFormatter(t, WithDefaultLocale("de"))
	assert.Equal(t, "1.234,5", f.Number("", Float(1234.5), NewNumberFormatConfiguration()))
}

func TestFormatterNumberFields(t *testing.T) {
	f := newTestFormatter(t)

	text, fields := f.NumberFields("en", Int(1234), NewNumberFormatConfiguration())
	require.Equal(t, "1,234", text)
	assert.Equal(t, []FieldPosition{
		{Kind: FieldInteger, Begin: 0, End: 5},
		{Kind: FieldGroupingSeparator, Begin: 1, End: 2},
	}, fields)
}

func TestFormatterPercent(t *testing.T) {
	f := newTestFormatter(t)

	assert.Equal(t, "25%", f.Percent("en", Float(0.25), NewNumberFormatConfiguration()))
	assert.Equal(t, "25\u00a0%", f.Percent("es", Float(0.25), NewNumberFormatConfiguration()))
	assert.Equal(t, "12.5%", f.Percent("en", Float(0.125), NewNumberFormatConfiguration()))
	assert.Equal(t, "13%", f.Percent("en", Float(0.125), NewNumberFormatConfiguration().Precision(FractionLength(0, 0)).Rounding(RoundToNearestOrAwayFromZero)))

	text, fields := f.PercentFields("de", Float(0.5), NewNumberFormatConfiguration())
	require.Equal(t, "50\u00a0%", text)
	assert.Equal(t, []FieldPosition{
		{Kind: FieldInteger, Begin: 0, End: 2},
		{Kind: FieldPercent, Begin: 3, End: 4},
	}, fields)
}

func TestFormatterFallsBackToPlainText(t *testing.T) {
	engine := &failingEngine{err: ErrEngineUnavailable}
	logger := &recordingLogger{}
	f := newTestFormatter(t, WithEngine(engine), WithLogger(logger))

	assert.Equal(t, "1234.5", f.Number("en", Float(1234.5), NewNumberFormatConfiguration()))
	assert.Equal(t, "25%", f.Percent("en", Float(0.25), NewNumberFormatConfiguration()))
	assert.Equal(t, "-0%", f.Percent("en", negativeZeroValue(), NewNumberFormatConfiguration()))
	assert.Equal(t, "42", f.Pattern("en", Int(42), "#,##0"))

	text, fields := f.NumberFields("en", Int(7), NewNumberFormatConfiguration())
	assert.Equal(t, "7", text)
	assert.Nil(t, fields)

	// failed opens are retried, never cached
	assert.Equal(t, 5, engine.opens)
	assert.NotEmpty(t, logger.debug)
	assert.Equal(t, 0, f.CacheStats().Size)
}

func TestFormatterFallsBackOnFormatErrors(t *testing.T) {
	f := newTestFormatter(t)
	assert.Equal(t, "NaN", f.Number("en", Float(math.NaN()), NewNumberFormatConfiguration()))
}

func TestFormatterCachesHandles(t *testing.T) {
	f := newTestFormatter(t)
	config := NewNumberFormatConfiguration().Precision(FractionLength(2, 2))

	f.Number("en", Int(1), config)
	f.Number("en", Int(2), config)
	f.Number("es", Int(3), config)

	stats := f.CacheStats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)

	require.NoError(t, f.Close())
	assert.Equal(t, 0, f.CacheStats().Size)

	// still usable after close
	assert.Equal(t, "1.00", f.Number("en", Int(1), config))
}

func TestFormatterCacheLimitOption(t *testing.T) {
	f := newTestFormatter(t, WithCacheLimit(2))

	for _, locale := range []string{"en", "es", "de"} {
		f.Number(locale, Int(1), NewNumberFormatConfiguration())
	}
	assert.Equal(t, 1, f.CacheStats().Size)
	assert.Equal(t, int64(1), f.CacheStats().Flushes)
}

type countingEngine struct {
	inner  Engine
	opened int
	closed int
}

func (e *countingEngine) Open(skeleton, locale string) (Handle, error) {
	h, err := e.inner.Open(skeleton, locale)
	if err != nil {
		return nil, err
	}
	e.opened++
	return &countingHandle{Handle: h, engine: e}, nil
}

type countingHandle struct {
	Handle
	engine *countingEngine
}

func (h *countingHandle) Close() error {
	h.engine.closed++
	return h.Handle.Close()
}

func TestFormatterClosesFlushedHandles(t *testing.T) {
	engine := &countingEngine{inner: NewXTextEngine(nil)}
	f, err := NewFormatter(WithEngine(engine), WithCacheLimit(2))
	require.NoError(t, err)

	for _, locale := range []string{"en", "es", "de"} {
		f.Number(locale, Int(1), NewNumberFormatConfiguration())
	}
	assert.Equal(t, 3, engine.opened)
	assert.Equal(t, 2, engine.closed)

	require.NoError(t, f.Close())
	assert.Equal(t, 3, engine.closed)
}

// staleOnceEngine hands out one handle that reports itself closed, the way a
// handle flushed by another goroutine would.
type staleOnceEngine struct {
	inner  Engine
	onUse  func()
	served bool
}

func (e *staleOnceEngine) Open(skeleton, locale string) (Handle, error) {
	if !e.served {
		e.served = true
		return &staleHandle{onUse: e.onUse}, nil
	}
	return e.inner.Open(skeleton, locale)
}

type staleHandle struct {
	onUse func()
}

func (h *staleHandle) Format(v Value) (string, error) {
	text, _, err := h.FormatFields(v)
	return text, err
}

func (h *staleHandle) FormatFields(Value) (string, []FieldPosition, error) {
	h.onUse()
	return "", nil, ErrHandleClosed
}

func (h *staleHandle) Close() error { return nil }

func TestFormatterReopensHandleClosedByFlush(t *testing.T) {
	engine := &staleOnceEngine{inner: NewXTextEngine(nil)}
	f := newTestFormatter(t, WithEngine(engine))
	engine.onUse = func() { f.cache.Purge(nil) }

	assert.Equal(t, "1,234.5", f.Number("en", Float(1234.5), NewNumberFormatConfiguration()))
	assert.Equal(t, int64(2), f.CacheStats().Misses)
}

func TestFormatterPattern(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name    string
		locale  string
		value   Value
		pattern string
		want    string
	}{
		{name: "grouped fixed", locale: "en", value: Float(1234.5), pattern: "#,##0.00", want: "1,234.50"},
		{name: "localized symbols", locale: "de", value: Float(1234.5), pattern: "#,##0.00", want: "1.234,50"},
		{name: "no grouping", locale: "en", value: Int(1234), pattern: "0", want: "1234"},
		{name: "optional fraction", locale: "en", value: Float(2.5), pattern: "0.##", want: "2.5"},
		{name: "percent", locale: "en", value: Float(0.256), pattern: "0.0%", want: "25.6%"},
		{name: "padded integer", locale: "en", value: Int(7), pattern: "000", want: "007"},
		{name: "general", locale: "en", value: Float(1234.5), pattern: "General", want: "1,234.5"},
		{name: "empty pattern falls back", locale: "en", value: Float(1234.5), pattern: "", want: "1234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Pattern(tt.locale, tt.value, tt.pattern))
		})
	}
}

func TestFormatterList(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name     string
		locale   string
		items    []string
		listType ListType
		width    UnitWidth
		want     string
	}{
		{name: "and", locale: "en", items: []string{"a", "b", "c"}, listType: ListAnd, width: UnitWidthWide, want: "a, b, and c"},
		{name: "and pair", locale: "en", items: []string{"a", "b"}, listType: ListAnd, width: UnitWidthWide, want: "a and b"},
		{name: "and short", locale: "en", items: []string{"a", "b", "c"}, listType: ListAnd, width: UnitWidthAbbreviated, want: "a, b, & c"},
		{name: "or", locale: "en", items: []string{"a", "b", "c"}, listType: ListOr, width: UnitWidthWide, want: "a, b, or c"},
		{name: "spanish and", locale: "es", items: []string{"a", "b", "c"}, listType: ListAnd, width: UnitWidthWide, want: "a, b y c"},
		{name: "german or", locale: "de", items: []string{"a", "b"}, listType: ListOr, width: UnitWidthWide, want: "a oder b"},
		{name: "missing short style uses wide", locale: "de", items: []string{"a", "b"}, listType: ListAnd, width: UnitWidthAbbreviated, want: "a und b"},
		{name: "regional locale", locale: "es-MX", items: []string{"a", "b"}, listType: ListAnd, width: UnitWidthWide, want: "a y b"},
		{name: "single", locale: "en", items: []string{"a"}, listType: ListAnd, width: UnitWidthWide, want: "a"},
		{name: "empty", locale: "en", items: nil, listType: ListAnd, width: UnitWidthWide, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.List(tt.locale, tt.items, tt.listType, tt.width))
		})
	}
}

type erroringPatternProvider struct{}

func (erroringPatternProvider) ListPattern(string, ListType, UnitWidth, ListPatternKind) (string, error) {
	return "", errors.New("no data")
}

func TestFormatterListWithoutPatterns(t *testing.T) {
	logger := &recordingLogger{}
	f := newTestFormatter(t, WithPatternProvider(erroringPatternProvider{}), WithLogger(logger))

	assert.Equal(t, "a, b, c", f.List("en", []string{"a", "b", "c"}, ListAnd, UnitWidthWide))
	assert.Len(t, logger.debug, 1)
}

func TestFormatterRegistry(t *testing.T) {
	f := newTestFormatter(t)
	require.NotNil(t, f.Registry())
	assert.True(t, f.Registry().Has("en"))
}
