package formatstyle

import (
	"fmt"
	"maps"
	"slices"
)

// Config captures formatter setup
type Config struct {
	DefaultLocale string
	Engine        Engine
	Patterns      PatternProvider
	Resolver      FallbackResolver
	Logger        Logger

	cacheLimit   int
	singleFlight bool

	localeDataPaths []string
	localeOverrides map[string]string
	bundles         map[string]LocaleBundle
	disableBuiltins bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = DiscardLogger
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when a call passes none
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithEngine replaces the golang.org/x/text engine
func WithEngine(engine Engine) Option {
	return func(c *Config) error {
		c.Engine = engine
		return nil
	}
}

// WithPatternProvider replaces the locale registry as the source of list patterns
func WithPatternProvider(provider PatternProvider) Option {
	return func(c *Config) error {
		c.Patterns = provider
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithCacheLimit sets how many handles are kept before the cache flushes
func WithCacheLimit(limit int) Option {
	return func(c *Config) error {
		if limit <= 0 {
			return fmt.Errorf("%w: cache limit must be positive, got %d", ErrInvalidConfiguration, limit)
		}
		c.cacheLimit = limit
		return nil
	}
}

// WithCacheSingleFlight builds each handle at most once under concurrent misses
func WithCacheSingleFlight() Option {
	return func(c *Config) error {
		c.singleFlight = true
		return nil
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithLocaleData loads bundles from JSON or YAML files or directories
func WithLocaleData(paths ...string) Option {
	return func(c *Config) error {
		c.localeDataPaths = append(c.localeDataPaths, paths...)
		return nil
	}
}

// WithLocaleDataOverride applies a single-bundle file to locale after all other data
func WithLocaleDataOverride(locale, path string) Option {
	return func(c *Config) error {
		if normalizeLocale(locale) == "" || path == "" {
			return fmt.Errorf("%w: override needs a locale and a path", ErrInvalidConfiguration)
		}
		if c.localeOverrides == nil {
			c.localeOverrides = make(map[string]string)
		}
		c.localeOverrides[locale] = path
		return nil
	}
}

// WithLocaleBundle merges bundle over the built-in data for locale
func WithLocaleBundle(locale string, bundle LocaleBundle) Option {
	return func(c *Config) error {
		locale = normalizeLocale(locale)
		if locale == "" {
			return fmt.Errorf("%w: bundle needs a locale", ErrInvalidConfiguration)
		}
		if c.bundles == nil {
			c.bundles = make(map[string]LocaleBundle)
		}
		c.bundles[locale] = c.bundles[locale].Merge(bundle)
		return nil
	}
}

// WithoutBuiltinLocaleData starts from an empty registry
func WithoutBuiltinLocaleData() Option {
	return func(c *Config) error {
		c.disableBuiltins = true
		return nil
	}
}

// BuildFormatter wires the registry, engine and cache described by cfg.
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfiguration)
	}

	registry, err := cfg.buildRegistry()
	if err != nil {
		return nil, err
	}

	engine := cfg.Engine
	if engine == nil {
		engine = NewXTextEngine(registry)
	}

	patterns := cfg.Patterns
	if patterns == nil {
		patterns = registry
	}

	logger := cfg.Logger
	if logger == nil {
		logger = DiscardLogger
	}

	cacheOpts := []CacheOption{
		WithCacheCapacity(cfg.cacheLimit),
		WithCacheLogger(logger),
	}
	if cfg.singleFlight {
		cacheOpts = append(cacheOpts, WithSingleFlight())
	}

	f := &Formatter{
		engine:        engine,
		patterns:      patterns,
		registry:      registry,
		defaultLocale: cfg.DefaultLocale,
		logger:        logger,
	}
	cacheOpts = append(cacheOpts, WithCacheEvict(f.closeEvicted))
	f.cache = NewFormatterCache[CacheKey, Handle](cacheOpts...)
	return f, nil
}

func (cfg *Config) buildRegistry() (*LocaleRegistry, error) {
	opts := []LocaleRegistryOption{WithRegistryResolver(cfg.Resolver)}
	if cfg.disableBuiltins {
		opts = append(opts, WithoutBuiltinBundles())
	}

	if len(cfg.localeDataPaths) > 0 || len(cfg.localeOverrides) > 0 {
		loader := NewLocaleDataLoader(cfg.localeDataPaths...)
		for locale, path := range cfg.localeOverrides {
			loader.AddOverride(locale, path)
		}
		loaded, err := loader.Load()
		if err != nil {
			return nil, err
		}
		for _, locale := range slices.Sorted(maps.Keys(loaded)) {
			opts = append(opts, WithRegistryBundle(locale, loaded[locale]))
		}
	}

	// explicit bundles win over files
	for _, locale := range slices.Sorted(maps.Keys(cfg.bundles)) {
		opts = append(opts, WithRegistryBundle(locale, cfg.bundles[locale]))
	}

	return NewLocaleRegistry(opts...), nil
}

// NewFormatter builds a Formatter from options
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter()
}
