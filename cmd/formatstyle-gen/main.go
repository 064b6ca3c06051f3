package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type listPatterns struct {
	Pair   string
	Start  string
	Middle string
	End    string
}

type bundlePayload struct {
	Locale string
	// Lists is keyed by CLDR list style ("standard", "unit-short")
	Lists map[string]listPatterns
	// Units is keyed by length, then unit type, then plural count
	Units map[string]map[string]map[string]string
}

// listStyles are the CLDR list pattern types the formatters read
var listStyles = []string{
	"standard", "standard-short", "standard-narrow",
	"or", "or-short", "or-narrow",
	"unit", "unit-short", "unit-narrow",
}

var unitLengths = []string{"long", "short", "narrow"}

var durationUnits = []string{
	"duration-week",
	"duration-day",
	"duration-hour",
	"duration-minute",
	"duration-second",
	"duration-millisecond",
	"duration-microsecond",
	"duration-nanosecond",
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "formatstyle-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "formatstyle", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "locale_data_gen.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or separate with commas to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	bundles := make([]bundlePayload, 0, len(cfg.locales))
	for _, locale := range lo.Uniq(cfg.locales) {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	slices.SortFunc(bundles, func(a, b bundlePayload) int {
		return strings.Compare(a.Locale, b.Locale)
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, errors.New("missing LDML data")
	}

	payload.Lists = extractListPatterns(ldml)
	payload.Units = extractDurationUnits(ldml)
	if len(payload.Lists) == 0 && len(payload.Units) == 0 {
		return payload, errors.New("no list or unit data")
	}
	return payload, nil
}

// findLDML prefers the resolved tree, which carries inherited values, and falls
// back to the raw file of the closest parent.
func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	if ldml, err := data.LDML(candidate); err == nil && ldml != nil {
		return ldml
	}
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return data.RawLDML("root")
}

func extractListPatterns(ldml *cldr.LDML) map[string]listPatterns {
	result := make(map[string]listPatterns)
	if ldml == nil || ldml.ListPatterns == nil {
		return result
	}

	for _, pattern := range ldml.ListPatterns.ListPattern {
		style := "standard"
		if common := pattern.GetCommon(); common != nil && common.Type != "" {
			style = common.Type
		}
		if !slices.Contains(listStyles, style) {
			continue
		}

		var patterns listPatterns
		for _, part := range pattern.ListPatternPart {
			if part == nil {
				continue
			}
			switch strings.ToLower(part.Type) {
			case "2":
				patterns.Pair = part.Data()
			case "start":
				patterns.Start = part.Data()
			case "middle":
				patterns.Middle = part.Data()
			case "end":
				patterns.End = part.Data()
			}
		}

		if patterns.Pair != "" {
			result[style] = patterns
		}
	}

	return result
}

func extractDurationUnits(ldml *cldr.LDML) map[string]map[string]map[string]string {
	result := make(map[string]map[string]map[string]string)
	if ldml == nil || ldml.Units == nil {
		return result
	}

	for _, length := range ldml.Units.UnitLength {
		if length == nil {
			continue
		}
		lengthType := "long"
		if common := length.GetCommon(); common != nil && common.Type != "" {
			lengthType = common.Type
		}
		if !slices.Contains(unitLengths, lengthType) {
			continue
		}

		for _, unit := range length.Unit {
			if unit == nil {
				continue
			}
			unitType := ""
			if common := unit.GetCommon(); common != nil {
				unitType = common.Type
			}
			if !slices.Contains(durationUnits, unitType) {
				continue
			}

			forms := make(map[string]string)
			for _, pattern := range unit.UnitPattern {
				if pattern == nil {
					continue
				}
				count := lo.Ternary(pattern.Count == "", "other", pattern.Count)
				// inflected variants follow the nominative entry for the same count
				if _, exists := forms[count]; exists {
					continue
				}
				forms[count] = pattern.Data()
			}
			if len(forms) == 0 {
				continue
			}

			if result[lengthType] == nil {
				result[lengthType] = make(map[string]map[string]string)
			}
			result[lengthType][unitType] = forms
		}
	}

	return result
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by formatstyle-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var generatedBundles = map[string]LocaleBundle{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)

		buf.WriteString("\t\tLists: map[string]ListPatterns{\n")
		for _, style := range sortedKeys(bundle.Lists) {
			patterns := bundle.Lists[style]
			fmt.Fprintf(&buf, "\t\t\t%q: {\n", style)
			fmt.Fprintf(&buf, "\t\t\t\tPair: %q,\n", patterns.Pair)
			fmt.Fprintf(&buf, "\t\t\t\tStart: %q,\n", patterns.Start)
			fmt.Fprintf(&buf, "\t\t\t\tMiddle: %q,\n", patterns.Middle)
			fmt.Fprintf(&buf, "\t\t\t\tEnd: %q,\n", patterns.End)
			buf.WriteString("\t\t\t},\n")
		}
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t\tUnits: map[string]UnitPatterns{\n")
		for _, length := range sortedKeys(bundle.Units) {
			fmt.Fprintf(&buf, "\t\t\t%q: {\n", length)
			units := bundle.Units[length]
			for _, unit := range sortedKeys(units) {
				forms := units[unit]
				pairs := lo.Map(sortedKeys(forms), func(count string, _ int) string {
					return fmt.Sprintf("%q: %q", count, forms[count])
				})
				fmt.Fprintf(&buf, "\t\t\t\t%q: {%s},\n", unit, strings.Join(pairs, ", "))
			}
			buf.WriteString("\t\t\t},\n")
		}
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedLocales = []string{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q,\n", bundle.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedLocales lists the locales with built-in CLDR bundles\n")
	buf.WriteString("func GeneratedLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
