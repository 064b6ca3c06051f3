package formatstyle

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

type localeRegistryConfig struct {
	resolver FallbackResolver
	bundles  map[string]LocaleBundle
	builtins bool
}

// LocaleRegistryOption configures a LocaleRegistry
type LocaleRegistryOption func(*localeRegistryConfig)

func WithRegistryResolver(resolver FallbackResolver) LocaleRegistryOption {
	return func(c *localeRegistryConfig) {
		c.resolver = resolver
	}
}

// WithRegistryBundle merges bundle over the data already known for locale
func WithRegistryBundle(locale string, bundle LocaleBundle) LocaleRegistryOption {
	return func(c *localeRegistryConfig) {
		locale = normalizeLocale(locale)
		if locale == "" {
			return
		}
		if c.bundles == nil {
			c.bundles = make(map[string]LocaleBundle)
		}
		c.bundles[locale] = c.bundles[locale].Merge(bundle)
	}
}

// WithoutBuiltinBundles starts the registry empty
func WithoutBuiltinBundles() LocaleRegistryOption {
	return func(c *localeRegistryConfig) {
		c.builtins = false
	}
}

// resolvedCacheLimit bounds the resolved bundles kept per registry; like the
// handle cache, the whole map is dropped when a new locale would exceed it.
const resolvedCacheLimit = DefaultCacheLimit

// LocaleRegistry stores locale bundles and resolves lookups along fallback chains.
// Resolved bundles are cached until the next registration or until the
// cache fills up.
type LocaleRegistry struct {
	mu       sync.RWMutex
	bundles  map[string]LocaleBundle
	resolved map[string]LocaleBundle
	resolver FallbackResolver
}

var _ PatternProvider = (*LocaleRegistry)(nil)

// NewLocaleRegistry seeds a registry with the built-in bundles
func NewLocaleRegistry(opts ...LocaleRegistryOption) *LocaleRegistry {
	cfg := localeRegistryConfig{builtins: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &LocaleRegistry{
		bundles:  make(map[string]LocaleBundle),
		resolver: cfg.resolver,
	}
	if cfg.builtins {
		maps.Copy(registry.bundles, builtinBundles())
	}
	for locale, bundle := range cfg.bundles {
		registry.Register(locale, bundle)
	}
	registry.seedFallbacks()

	return registry
}

// Register merges bundle into the data stored for locale
func (r *LocaleRegistry) Register(locale string, bundle LocaleBundle) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bundles == nil {
		r.bundles = make(map[string]LocaleBundle)
	}
	existing, ok := r.bundles[locale]
	if !ok {
		existing = LocaleBundle{Locale: locale}
	}
	merged := existing.Merge(bundle)
	merged.Locale = locale
	r.bundles[locale] = merged
	r.invalidateLocked()
}

// Locales returns the registered locales, sorted
func (r *LocaleRegistry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.bundles))
}

// Has reports whether locale or one of its fallbacks has registered data.
func (r *LocaleRegistry) Has(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.candidateLocales(normalizeLocale(locale)) {
		if _, ok := r.bundles[candidate]; ok {
			return true
		}
	}
	return false
}

// Bundle returns the data for locale merged along its fallback chain.
// Symbols missing from every bundle are discovered from golang.org/x/text.
func (r *LocaleRegistry) Bundle(locale string) LocaleBundle {
	key := normalizeLocale(locale)

	r.mu.RLock()
	if r.resolved != nil {
		if cached, ok := r.resolved[key]; ok {
			r.mu.RUnlock()
			return cached
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.resolved[key]; ok {
		return cached
	}
	if r.resolved == nil || len(r.resolved) >= resolvedCacheLimit {
		r.resolved = make(map[string]LocaleBundle)
	}

	result := LocaleBundle{Locale: key}
	candidates := r.candidateLocales(key)

	// least specific first so the requested locale wins
	for i := len(candidates) - 1; i >= 0; i-- {
		if bundle, ok := r.bundles[candidates[i]]; ok {
			result = result.Merge(bundle)
		}
	}
	result.Locale = key

	if !result.Symbols.complete() {
		result.Symbols = probeSymbols(key).merge(result.Symbols)
	}
	result.Symbols = result.Symbols.withDefaults()
	result.TimePatterns = defaultTimePatterns.merge(result.TimePatterns)

	r.resolved[key] = result
	return result
}

// Symbols returns the number symbols of locale
func (r *LocaleRegistry) Symbols(locale string) NumberSymbols {
	return r.Bundle(locale).Symbols
}

// CompactPatterns returns the short compact patterns of locale keyed by power of ten
func (r *LocaleRegistry) CompactPatterns(locale string) map[int]string {
	return r.Bundle(locale).Compact
}

// TimePatterns returns the positional duration layouts of locale
func (r *LocaleRegistry) TimePatterns(locale string) DurationTimePatterns {
	return r.Bundle(locale).TimePatterns
}

// ListPattern returns one piece of a list pattern. A missing narrow or short
// style falls back to the wide style of the same list type.
func (r *LocaleRegistry) ListPattern(locale string, listType ListType, width UnitWidth, kind ListPatternKind) (string, error) {
	bundle := r.Bundle(locale)

	for _, style := range []string{listStyleKey(listType, width), listType.String()} {
		patterns, ok := bundle.Lists[style]
		if !ok {
			continue
		}
		piece := patterns.piece(kind)
		if piece == "" && kind == ListPatternEnd {
			piece = patterns.Pair
		}
		if piece != "" {
			return piece, nil
		}
	}

	return "", fmt.Errorf("%w: %s %s for %q", ErrPatternUnavailable, listStyleKey(listType, width), kind, locale)
}

// UnitPattern returns the label pattern of unit at length for a plural category.
// Missing categories fall back to "other"; locales without unit data use English.
func (r *LocaleRegistry) UnitPattern(locale, unit, length, category string) (string, bool) {
	lookup := func(bundle LocaleBundle) (string, bool) {
		forms := bundle.Units[length][unit]
		if pattern := forms[category]; pattern != "" {
			return pattern, true
		}
		if pattern := forms["other"]; pattern != "" {
			return pattern, true
		}
		return "", false
	}

	if pattern, ok := lookup(r.Bundle(locale)); ok {
		return pattern, true
	}
	if baseLanguage(locale) == "en" {
		return "", false
	}
	return lookup(r.Bundle("en"))
}

func (r *LocaleRegistry) invalidateLocked() {
	r.resolved = nil
}

// candidateLocales lists locale, its resolver chain, its parents and its base
// language, without repeats.
func (r *LocaleRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	add := func(candidate string) {
		candidate = normalizeLocale(candidate)
		if candidate == "" || slices.Contains(chain, candidate) {
			return
		}
		chain = append(chain, candidate)
	}

	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(locale) {
			add(fallback)
		}
	}
	for _, parent := range localeParentChain(locale) {
		add(parent)
	}
	add(baseLanguage(locale))

	return chain
}

// seedFallbacks fills empty chains of a static resolver with the CLDR parents
// of every registered locale.
func (r *LocaleRegistry) seedFallbacks() {
	resolver, ok := r.resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	for _, locale := range r.Locales() {
		if !strings.Contains(locale, "-") {
			continue
		}
		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}
		if parents := localeParentChain(locale); len(parents) > 0 {
			resolver.Set(locale, parents...)
		}
	}
}
