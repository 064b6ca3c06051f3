package formatstyle

import (
	"slices"
	"unicode/utf16"
)

// Engine renders compiled skeletons for a locale.
type Engine interface {
	// Open builds a handle for skeleton and locale. Construction may be expensive;
	// callers cache the result.
	Open(skeleton, locale string) (Handle, error)
}

// Handle is an opened, immutable formatter. It is safe for concurrent use until closed.
type Handle interface {
	Format(v Value) (string, error)
	FormatFields(v Value) (string, []FieldPosition, error)
	Close() error
}

// FieldKind identifies the role of a span in formatted output
type FieldKind uint8

const (
	FieldSign FieldKind = iota + 1
	FieldInteger
	FieldGroupingSeparator
	FieldDecimalSeparator
	FieldFraction
	FieldExponentSymbol
	FieldExponentSign
	FieldExponent
	FieldCompact
	FieldPercent
	FieldUnit
)

var fieldKindNames = map[FieldKind]string{
	FieldSign:              "sign",
	FieldInteger:           "integer",
	FieldGroupingSeparator: "group",
	FieldDecimalSeparator:  "decimal",
	FieldFraction:          "fraction",
	FieldExponentSymbol:    "exponent-symbol",
	FieldExponentSign:      "exponent-sign",
	FieldExponent:          "exponent",
	FieldCompact:           "compact",
	FieldPercent:           "percent",
	FieldUnit:              "unit",
}

func (k FieldKind) String() string {
	return fieldKindNames[k]
}

// FieldPosition locates a field in formatted text. Offsets count UTF-16 code
// units, End exclusive.
type FieldPosition struct {
	Kind  FieldKind
	Begin int
	End   int
}

// utf16Len counts the UTF-16 code units of s
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// fieldWriter assembles output text while recording field spans.
type fieldWriter struct {
	buf    []byte
	offset int
	fields []FieldPosition
}

func (w *fieldWriter) write(kind FieldKind, text string) {
	if text == "" {
		return
	}
	size := utf16Len(text)
	if kind != 0 {
		if n := len(w.fields); n > 0 && w.fields[n-1].Kind == kind && w.fields[n-1].End == w.offset {
			w.fields[n-1].End += size
		} else {
			w.fields = append(w.fields, FieldPosition{Kind: kind, Begin: w.offset, End: w.offset + size})
		}
	}
	w.buf = append(w.buf, text...)
	w.offset += size
}

func (w *fieldWriter) literal(text string) {
	w.write(0, text)
}

// mark records a field covering everything written since begin
func (w *fieldWriter) mark(kind FieldKind, begin int) {
	if begin < w.offset {
		w.fields = append(w.fields, FieldPosition{Kind: kind, Begin: begin, End: w.offset})
	}
}

// positions returns the fields ordered by start, enclosing spans first
func (w *fieldWriter) positions() []FieldPosition {
	slices.SortStableFunc(w.fields, func(a, b FieldPosition) int {
		if a.Begin != b.Begin {
			return a.Begin - b.Begin
		}
		return b.End - a.End
	})
	return w.fields
}

func (w *fieldWriter) String() string {
	return string(w.buf)
}

// shiftFields moves every span by delta code units.
func shiftFields(fields []FieldPosition, delta int) []FieldPosition {
	if delta == 0 {
		return fields
	}
	shifted := make([]FieldPosition, len(fields))
	for i, f := range fields {
		shifted[i] = FieldPosition{Kind: f.Kind, Begin: f.Begin + delta, End: f.End + delta}
	}
	return shifted
}
