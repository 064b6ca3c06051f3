package formatstyle

import (
	"bytes"
	"testing"
	"text/template"
	"time"
)

func TestTemplateHelpersRender(t *testing.T) {
	f, err := NewFormatter()
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}
	defer f.Close()

	helpers := TemplateHelpers(f, HelperConfig{LocaleKey: "lang"})

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "number from context", text: `{{format_number . .amount}}`, want: "1,234.5"},
		{name: "number with fraction", text: `{{format_number . .amount 2}}`, want: "1,234.50"},
		{name: "explicit locale", text: `{{format_number "de" .amount}}`, want: "1.234,5"},
		{name: "percent", text: `{{format_percent . .ratio}}`, want: "25%"},
		{name: "list", text: `{{format_list . "a" "b" "c"}}`, want: "a, b, and c"},
		{name: "duration", text: `{{format_duration . .elapsed}}`, want: "1 hour, 30 minutes"},
		{name: "current locale", text: `{{current_locale .}}`, want: "en"},
	}

	data := map[string]any{
		"lang":    "en",
		"amount":  1234.5,
		"ratio":   0.25,
		"elapsed": 90 * time.Minute,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.New(tt.name).Funcs(helpers).Parse(tt.text)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateHelpersValues(t *testing.T) {
	f, err := NewFormatter()
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}
	defer f.Close()

	helpers := TemplateHelpers(f, HelperConfig{})

	formatNumber, ok := helpers["format_number"].(func(any, any, ...int) string)
	if !ok {
		t.Fatalf("format_number helper signature mismatch: %T", helpers["format_number"])
	}

	ctx := map[string]string{"locale": "es"}
	if got := formatNumber(ctx, int64(12345)); got != "12.345" {
		t.Fatalf("int64 = %q", got)
	}
	if got := formatNumber("en", "1234.25"); got != "1,234.25" {
		t.Fatalf("decimal string = %q", got)
	}
	if got := formatNumber("en", "not a number"); got != "not a number" {
		t.Fatalf("unparsable string = %q", got)
	}
	if got := formatNumber("en", struct{}{}); got != "{}" {
		t.Fatalf("unsupported value = %q", got)
	}
}

func TestTemplateHelpersWithoutFormatter(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	formatNumber := helpers["format_number"].(func(any, any, ...int) string)
	if got := formatNumber("en", 1234.5); got != "1234.5" {
		t.Fatalf("plain number = %q", got)
	}

	formatPercent := helpers["format_percent"].(func(any, any) string)
	if got := formatPercent("en", 0.25); got != "25%" {
		t.Fatalf("plain percent = %q", got)
	}

	formatList := helpers["format_list"].(func(any, ...string) string)
	if got := formatList("en", "a", "b", "c"); got != "a, b, c" {
		t.Fatalf("plain list = %q", got)
	}

	formatDuration := helpers["format_duration"].(func(any, time.Duration) string)
	if got := formatDuration("en", 90*time.Minute); got != "1h30m0s" {
		t.Fatalf("plain duration = %q", got)
	}
}
