package formatstyle

import (
	"strings"
)

const (
	stemScale            = "scale/"
	stemIncrement        = "precision-increment/"
	stemIntegerWidth     = "integer-width/"
	stemPrecisionInteger = "precision-integer"
	stemGroupOff         = "group-off"
	stemDecimalAlways    = "decimal-always"
	stemScientific       = "scientific"
	stemCompactShort     = "compact-short"
	stemSignAlways       = "sign-always"
	stemSignExceptZero   = "sign-except-zero"
	stemSignAuto         = "sign-auto"
	stemSignNever        = "sign-never"
	stemRoundingMode     = "rounding-mode-"
)

var roundingModeStems = map[RoundingRule]string{
	RoundAwayFromZero:            "rounding-mode-up",
	RoundToNearestOrAwayFromZero: "rounding-mode-half-up",
	RoundToNearestOrEven:         "rounding-mode-half-even",
	RoundUp:                      "rounding-mode-ceiling",
	RoundDown:                    "rounding-mode-floor",
	RoundTowardZero:              "rounding-mode-down",
}

// CompileSkeleton turns a configuration into the instruction string consumed by an Engine.
// The output is deterministic, so it doubles as a cache key.
func CompileSkeleton(c NumberFormatConfiguration) string {
	tokens := []string{
		scaleToken(c),
		precisionToken(c),
		groupingToken(c.grouping),
		signToken(c.sign),
		decimalSeparatorToken(c.decimalSeparator),
		roundingModeToken(c.rounding),
		notationToken(c.notation),
	}

	var b strings.Builder
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	}
	return strings.TrimSpace(b.String())
}

// scaleToken writes the multiplicand as exact decimal text so no binary float noise reaches the engine
func scaleToken(c NumberFormatConfiguration) string {
	if !c.hasScale() {
		return ""
	}
	return stemScale + c.scale.String()
}

func precisionToken(c NumberFormatConfiguration) string {
	p := c.precision

	if c.hasIncrement() {
		token := stemIncrement + paddedIncrement(c)
		if p.kind == PrecisionIntegerAndFraction {
			if stem := integerStem(p.minInt, p.maxInt); stem != "" {
				token += " " + stem
			}
		}
		return token
	}

	switch p.kind {
	case PrecisionSignificantDigits:
		return significantStem(p.minSig, p.maxSig)
	case PrecisionIntegerAndFraction:
		fraction := fractionStem(p.minFrac, p.maxFrac)
		integer := integerStem(p.minInt, p.maxInt)
		switch {
		case fraction == "":
			return integer
		case integer == "":
			return fraction
		default:
			return fraction + " " + integer
		}
	default:
		return ""
	}
}

// paddedIncrement pads the increment with zeros when the configured minimum
// fraction length asks for more digits than the increment carries.
func paddedIncrement(c NumberFormatConfiguration) string {
	text := c.increment.Abs().String()
	if c.precision.kind != PrecisionIntegerAndFraction || !c.precision.minFrac.set {
		return text
	}

	missing := c.precision.minFrac.value - fractionDigits(text)
	if missing <= 0 {
		return text
	}
	if !strings.Contains(text, ".") {
		text += "."
	}
	return text + strings.Repeat("0", missing)
}

func significantStem(min int, max bound) string {
	stem := strings.Repeat("@", min)
	if !max.set {
		return stem + "+"
	}
	if extra := max.value - min; extra > 0 {
		stem += strings.Repeat("#", extra)
	}
	return stem
}

func fractionStem(min, max bound) string {
	if !min.set && !max.set {
		return ""
	}
	if max.set && max.value == 0 {
		return stemPrecisionInteger
	}

	required := 0
	if min.set {
		required = min.value
	}

	stem := "." + strings.Repeat("0", required)
	if !max.set {
		return stem + "+"
	}
	if extra := max.value - required; extra > 0 {
		stem += strings.Repeat("#", extra)
	}
	return stem
}

func integerStem(min, max bound) string {
	if !min.set && !max.set {
		return ""
	}

	required := 0
	if min.set {
		required = min.value
	}
	zeros := strings.Repeat("0", required)

	if !max.set {
		return stemIntegerWidth + "+" + zeros
	}

	hashes := ""
	if extra := max.value - required; extra > 0 {
		hashes = strings.Repeat("#", extra)
	}
	return stemIntegerWidth + hashes + zeros
}

func groupingToken(g Grouping) string {
	if g == GroupingNever {
		return stemGroupOff
	}
	return ""
}

func signToken(s SignDisplayStrategy) string {
	if !s.set {
		return ""
	}
	switch {
	case !s.negative:
		return stemSignNever
	case s.positive && s.zero:
		return stemSignAlways
	case s.positive:
		return stemSignExceptZero
	default:
		return stemSignAuto
	}
}

func decimalSeparatorToken(d DecimalSeparatorStrategy) string {
	if d == DecimalSeparatorAlways {
		return stemDecimalAlways
	}
	return ""
}

func roundingModeToken(rule RoundingRule) string {
	return roundingModeStems[rule]
}

func notationToken(n Notation) string {
	switch n {
	case NotationScientific:
		return stemScientific
	case NotationCompactName:
		return stemCompactShort
	default:
		return ""
	}
}
