package formatstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationFromPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		skeleton string
		percent  bool
	}{
		{pattern: "#,##0.00", skeleton: ".00 integer-width/+0"},
		{pattern: "0", skeleton: "precision-integer integer-width/+0 group-off"},
		{pattern: "0.0##", skeleton: ".0## integer-width/+0 group-off"},
		{pattern: "000", skeleton: "precision-integer integer-width/+000 group-off"},
		{pattern: "0%", skeleton: "scale/100 precision-integer integer-width/+0 group-off", percent: true},
		{pattern: "General", skeleton: ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			parsed, err := ConfigurationFromPattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.skeleton, CompileSkeleton(parsed.Configuration))
			assert.Equal(t, tt.percent, parsed.Percent)
		})
	}
}

func TestConfigurationFromPatternAffixes(t *testing.T) {
	parsed, err := ConfigurationFromPattern("0.00%")
	require.NoError(t, err)
	assert.Empty(t, parsed.Prefix)
	assert.Equal(t, "%", parsed.Suffix)
}

func TestConfigurationFromPatternErrors(t *testing.T) {
	for _, pattern := range []string{"", "   "} {
		_, err := ConfigurationFromPattern(pattern)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestPatternHandleFields(t *testing.T) {
	parsed, err := ConfigurationFromPattern("0.0%")
	require.NoError(t, err)

	inner, err := NewXTextEngine(nil).Open(CompileSkeleton(parsed.Configuration), "en")
	require.NoError(t, err)
	h := &patternHandle{Handle: inner, prefix: parsed.Prefix, suffix: parsed.Suffix}
	defer h.Close()

	text, fields, err := h.FormatFields(Float(0.125))
	require.NoError(t, err)
	assert.Equal(t, "12.5%", text)
	assert.Equal(t, []FieldPosition{
		{Kind: FieldInteger, Begin: 0, End: 2},
		{Kind: FieldDecimalSeparator, Begin: 2, End: 3},
		{Kind: FieldFraction, Begin: 3, End: 4},
		{Kind: FieldPercent, Begin: 4, End: 5},
	}, fields)
}
