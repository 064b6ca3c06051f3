package formatstyle

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocaleDataLoader reads locale bundles from JSON or YAML files.
//
// A data file maps locale codes to bundles:
//
//	en:
//	  symbols: {decimal: ".", group: ","}
//	  lists:
//	    standard: {"2": "{0} and {1}", end: "{0}, and {1}"}
//
// An override file holds a single bundle for one locale and is applied last.
type LocaleDataLoader struct {
	paths     []string
	overrides map[string]string
}

// NewLocaleDataLoader creates a loader for files or directories of files
func NewLocaleDataLoader(paths ...string) *LocaleDataLoader {
	return &LocaleDataLoader{
		paths:     append([]string(nil), paths...),
		overrides: make(map[string]string),
	}
}

// AddOverride adds a locale-specific override file
func (l *LocaleDataLoader) AddOverride(locale, path string) {
	if l.overrides == nil {
		l.overrides = make(map[string]string)
	}
	l.overrides[normalizeLocale(locale)] = path
}

// Load decodes every configured file. Later files win over earlier ones.
func (l *LocaleDataLoader) Load() (map[string]LocaleBundle, error) {
	bundles := make(map[string]LocaleBundle)
	if l == nil {
		return bundles, nil
	}

	for _, path := range l.paths {
		files, err := dataFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("%w: read %s: %v", ErrLocaleData, file, err)
			}

			decoded, err := decodeLocaleData(file, data)
			if err != nil {
				return nil, err
			}
			mergeBundles(bundles, decoded)
		}
	}

	for _, locale := range slices.Sorted(maps.Keys(l.overrides)) {
		if err := l.loadOverride(bundles, locale, l.overrides[locale]); err != nil {
			return nil, err
		}
	}

	return bundles, nil
}

func (l *LocaleDataLoader) loadOverride(bundles map[string]LocaleBundle, locale, path string) error {
	if locale == "" {
		return fmt.Errorf("%w: override %s has no locale", ErrLocaleData, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read override for %q: %v", ErrLocaleData, locale, err)
	}

	var bundle LocaleBundle
	if err := unmarshalByExtension(path, data, &bundle); err != nil {
		return fmt.Errorf("%w: parse override for %q: %v", ErrLocaleData, locale, err)
	}

	bundle.Locale = locale
	bundles[locale] = bundles[locale].Merge(bundle)
	return nil
}

// dataFiles expands a directory into its JSON and YAML files, sorted by name.
func dataFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocaleData, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocaleData, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !supportedDataFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func supportedDataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decodeLocaleData(path string, data []byte) (map[string]LocaleBundle, error) {
	var raw map[string]LocaleBundle
	if err := unmarshalByExtension(path, data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLocaleData, path, err)
	}

	result := make(map[string]LocaleBundle, len(raw))
	for locale, bundle := range raw {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return nil, fmt.Errorf("%w: empty locale in %s", ErrLocaleData, path)
		}
		if err := validateBundle(bundle); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrLocaleData, path, normalized, err)
		}
		bundle.Locale = normalized
		result[normalized] = result[normalized].Merge(bundle)
	}
	return result, nil
}

func unmarshalByExtension(path string, data []byte, out any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported extension %s", ext)
	}
}

// validateBundle rejects list patterns that cannot join two items.
func validateBundle(bundle LocaleBundle) error {
	for style, patterns := range bundle.Lists {
		for _, kind := range []ListPatternKind{ListPatternPair, ListPatternStart, ListPatternMiddle, ListPatternEnd} {
			piece := patterns.piece(kind)
			if piece != "" && !validListPattern(piece) {
				return fmt.Errorf("list %s %s pattern %q needs {0} and {1}", style, kind, piece)
			}
		}
	}
	return nil
}

func mergeBundles(dest, source map[string]LocaleBundle) {
	for locale, bundle := range source {
		dest[locale] = dest[locale].Merge(bundle)
	}
}
