package formatstyle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleRegistryBuiltins(t *testing.T) {
	registry := NewLocaleRegistry()

	assert.Equal(t, []string{"de", "en", "es"}, registry.Locales())
	assert.True(t, registry.Has("en"))
	assert.True(t, registry.Has("es-MX"))
	assert.False(t, registry.Has("fi"))

	assert.Equal(t, ",", registry.Symbols("de").Decimal)
	assert.Equal(t, "{0}K", registry.CompactPatterns("en")[3])
	assert.Equal(t, "h:mm:ss", registry.TimePatterns("en").HMS)
}

func TestLocaleRegistryInheritsFromParents(t *testing.T) {
	registry := NewLocaleRegistry(WithRegistryBundle("es-MX", LocaleBundle{
		Symbols: NumberSymbols{Decimal: ".", Group: ","},
	}))

	mx := registry.Bundle("es_MX")
	assert.Equal(t, "es-MX", mx.Locale)
	assert.Equal(t, ".", mx.Symbols.Decimal)
	assert.Equal(t, "{0}\u00a0%", mx.Symbols.PercentPattern)

	pattern, ok := registry.UnitPattern("es-MX", "duration-hour", unitLengthLong, "other")
	require.True(t, ok)
	assert.Equal(t, "{0} horas", pattern)
}

func TestLocaleRegistryResolverChain(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("gsw", "de")

	registry := NewLocaleRegistry(WithRegistryResolver(resolver))

	assert.True(t, registry.Has("gsw"))
	assert.Equal(t, ",", registry.Symbols("gsw").Decimal)

	piece, err := registry.ListPattern("gsw", ListAnd, UnitWidthWide, ListPatternPair)
	require.NoError(t, err)
	assert.Equal(t, "{0} und {1}", piece)
}

func TestLocaleRegistrySeedsResolverWithParents(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	NewLocaleRegistry(
		WithRegistryResolver(resolver),
		WithRegistryBundle("pt-PT", LocaleBundle{Symbols: NumberSymbols{Decimal: ","}}),
	)

	assert.Equal(t, []string{"pt"}, resolver.Resolve("pt-PT"))
}

func TestLocaleRegistryRegisterInvalidatesResolved(t *testing.T) {
	registry := NewLocaleRegistry()
	assert.Equal(t, ".", registry.Symbols("en").Decimal)

	registry.Register("en", LocaleBundle{Symbols: NumberSymbols{Decimal: "\u00b7"}})
	assert.Equal(t, "\u00b7", registry.Symbols("en").Decimal)
	assert.Equal(t, ",", registry.Symbols("en").Group)

	registry.Register("", LocaleBundle{Symbols: NumberSymbols{Decimal: "x"}})
	assert.Equal(t, []string{"de", "en", "es"}, registry.Locales())
}

func TestLocaleRegistryListPattern(t *testing.T) {
	registry := NewLocaleRegistry()

	tests := []struct {
		name     string
		locale   string
		listType ListType
		width    UnitWidth
		kind     ListPatternKind
		want     string
	}{
		{name: "english end", locale: "en", listType: ListAnd, width: UnitWidthWide, kind: ListPatternEnd, want: "{0}, and {1}"},
		{name: "english short", locale: "en", listType: ListAnd, width: UnitWidthAbbreviated, kind: ListPatternPair, want: "{0} & {1}"},
		{name: "condensed uses narrow", locale: "en", listType: ListUnits, width: UnitWidthCondensed, kind: ListPatternEnd, want: "{0} {1}"},
		{name: "missing width uses wide", locale: "es", listType: ListOr, width: UnitWidthNarrow, kind: ListPatternPair, want: "{0} o {1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece, err := registry.ListPattern(tt.locale, tt.listType, tt.width, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, piece)
		})
	}

	_, err := NewLocaleRegistry(WithoutBuiltinBundles()).ListPattern("en", ListAnd, UnitWidthWide, ListPatternPair)
	require.ErrorIs(t, err, ErrPatternUnavailable)
}

func TestLocaleRegistryListPatternEndFallsBackToPair(t *testing.T) {
	registry := NewLocaleRegistry(WithoutBuiltinBundles(), WithRegistryBundle("en", LocaleBundle{
		Lists: map[string]ListPatterns{"standard": {Pair: "{0} + {1}"}},
	}))

	piece, err := registry.ListPattern("en", ListAnd, UnitWidthWide, ListPatternEnd)
	require.NoError(t, err)
	assert.Equal(t, "{0} + {1}", piece)
}

func TestLocaleRegistryUnitPattern(t *testing.T) {
	registry := NewLocaleRegistry(WithRegistryBundle("fi", LocaleBundle{
		Symbols: NumberSymbols{Decimal: ",", Group: "\u00a0"},
	}))

	tests := []struct {
		name     string
		locale   string
		unit     string
		length   string
		category string
		want     string
		ok       bool
	}{
		{name: "exact category", locale: "en", unit: "duration-minute", length: unitLengthLong, category: "one", want: "{0} minute", ok: true},
		{name: "other category", locale: "de", unit: "duration-minute", length: unitLengthLong, category: "other", want: "{0} Minuten", ok: true},
		{name: "missing category uses other", locale: "en", unit: "duration-week", length: unitLengthShort, category: "few", want: "{0} wks", ok: true},
		{name: "locale without labels uses english", locale: "fi", unit: "duration-day", length: unitLengthNarrow, category: "one", want: "{0}d", ok: true},
		{name: "unknown unit", locale: "en", unit: "duration-century", length: unitLengthLong, category: "one", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := registry.UnitPattern(tt.locale, tt.unit, tt.length, tt.category)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocaleRegistryProbesUnknownLocales(t *testing.T) {
	registry := NewLocaleRegistry(WithoutBuiltinBundles())

	symbols := registry.Symbols("en")
	assert.Equal(t, ".", symbols.Decimal)
	assert.Equal(t, ",", symbols.Group)
	assert.Equal(t, "E", symbols.Exponential)
	assert.Equal(t, defaultTimePatterns, registry.TimePatterns("en"))
}

func TestLocaleBundleMerge(t *testing.T) {
	base := LocaleBundle{
		Locale:  "en",
		Symbols: NumberSymbols{Decimal: ".", Group: ","},
		Lists:   map[string]ListPatterns{"standard": {Pair: "{0} and {1}", End: "{0}, and {1}"}},
		Units: map[string]UnitPatterns{
			unitLengthLong: {"duration-hour": {"one": "{0} hour", "other": "{0} hours"}},
		},
		Compact: map[int]string{3: "{0}K"},
	}
	over := LocaleBundle{
		Symbols: NumberSymbols{Group: "'"},
		Lists:   map[string]ListPatterns{"standard": {Pair: "{0} & {1}"}},
		Units: map[string]UnitPatterns{
			unitLengthLong: {"duration-hour": {"other": "{0} hrs"}},
		},
		Compact: map[int]string{6: "{0}M"},
	}

	merged := base.Merge(over)

	assert.Equal(t, "en", merged.Locale)
	assert.Equal(t, NumberSymbols{Decimal: ".", Group: "'"}, merged.Symbols)
	assert.Equal(t, ListPatterns{Pair: "{0} & {1}", End: "{0}, and {1}"}, merged.Lists["standard"])
	assert.Equal(t, map[string]string{"one": "{0} hour", "other": "{0} hrs"}, merged.Units[unitLengthLong]["duration-hour"])
	assert.Equal(t, map[int]string{3: "{0}K", 6: "{0}M"}, merged.Compact)

	// the receiver is untouched
	assert.Equal(t, "{0} hours", base.Units[unitLengthLong]["duration-hour"]["other"])
	assert.Len(t, base.Compact, 1)
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("es_MX", "es-419", "", "es", "es_MX", "es")

	assert.Equal(t, []string{"es-419", "es"}, resolver.Resolve("es-MX"))
	assert.Nil(t, resolver.Resolve("fr"))

	chain := resolver.Resolve("es-MX")
	chain[0] = "changed"
	assert.Equal(t, []string{"es-419", "es"}, resolver.Resolve("es-MX"))

	var nilResolver *StaticFallbackResolver
	assert.Nil(t, nilResolver.Resolve("en"))
}

func TestLocaleParentChain(t *testing.T) {
	assert.Equal(t, []string{"es-419", "es"}, localeParentChain("es-MX"))
	assert.Equal(t, []string{"de"}, localeParentChain("de-AT"))
	assert.Empty(t, localeParentChain("en"))
	assert.Empty(t, localeParentChain(""))
	assert.Equal(t, "es", baseLanguage("es-MX"))
	assert.Equal(t, "pt-BR", normalizeLocale(" pt_BR "))
}

func TestLocaleRegistryBoundsResolvedBundles(t *testing.T) {
	registry := NewLocaleRegistry()

	for i := 0; i < resolvedCacheLimit; i++ {
		registry.Bundle(fmt.Sprintf("en-x-p%d", i))
	}
	assert.Len(t, registry.resolved, resolvedCacheLimit)

	// a cached locale is served without flushing
	registry.Bundle("en-x-p0")
	assert.Len(t, registry.resolved, resolvedCacheLimit)

	bundle := registry.Bundle("de-x-extra")
	assert.Equal(t, ",", bundle.Symbols.Decimal)
	assert.Len(t, registry.resolved, 1)
}
