// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
	"strings"
)

// Thresholds for switching to scientific notation.
const (
	sciLarge    = 1e8
	sciSmall    = 1e-4
	sciMaxRatio = 1e3
)

// floatFormat is a per-array element formatter. All elements of one array
// share the notation and the paddings, which is what keeps columns aligned.
type floatFormat struct {
	prec     int
	sci      bool
	padLeft  int // width of the integer part (with sign), or of the mantissa integer in sci mode
	padRight int // width of the fractional part
	expWidth int // exponent digits in sci mode, at least 2
	sign     bool
}

// newFloatFormat inspects vals and fixes notation and paddings.
// sign forces an explicit '+' for non-negative values (imaginary parts).
func newFloatFormat(vals []float64, o Options, sign bool) floatFormat {
	f := floatFormat{prec: o.Precision, sign: sign}
	f.sci = useScientific(vals, o)
	for _, v := range vals {
		intPart, frac, exp := f.split(v)
		if len(intPart) > f.padLeft {
			f.padLeft = len(intPart)
		}
		if len(frac) > f.padRight {
			f.padRight = len(frac)
		}
		if d := len(exp) - 2; d > f.expWidth {
			f.expWidth = d
		}
	}

	return f
}

// useScientific mirrors the NumPy rule on the finite non-zero magnitudes.
func useScientific(vals []float64, o Options) bool {
	var minV, maxV float64
	seen := false
	for _, v := range vals {
		a := math.Abs(v)
		if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			continue
		}
		if !seen {
			minV, maxV, seen = a, a, true
			continue
		}
		minV = math.Min(minV, a)
		maxV = math.Max(maxV, a)
	}
	if !seen {
		return false
	}
	if maxV >= sciLarge {
		return true
	}
	if o.SuppressSmall {
		return false
	}

	return minV < sciSmall || maxV/minV > sciMaxRatio
}

// split returns the integer part (with sign), the trimmed fractional digits
// and the exponent suffix ("" in fixed mode) of v.
// A negative zero loses its sign unless an explicit sign is requested, so
// imaginary parts keep "-0." like numpy.
func (f floatFormat) split(v float64) (intPart, frac, exp string) {
	switch {
	case math.IsNaN(v):
		return "nan", "", ""
	case math.IsInf(v, 1):
		return f.signed("inf"), "", ""
	case math.IsInf(v, -1):
		return "-inf", "", ""
	}

	var s string
	if f.sci {
		s = strconv.FormatFloat(v, 'e', f.prec, 64)
		if k := strings.IndexByte(s, 'e'); k >= 0 {
			s, exp = s[:k], s[k:]
		}
	} else {
		s = strconv.FormatFloat(v, 'f', f.prec, 64)
	}
	if k := strings.IndexByte(s, '.'); k >= 0 {
		intPart, frac = s[:k], strings.TrimRight(s[k+1:], "0")
	} else {
		intPart = s
	}
	if intPart == "-0" && !f.sign && strings.Trim(frac, "0") == "" {
		intPart = "0"
		if f.sci {
			exp = "e+00"
		}
	}

	return f.signed(intPart), frac, exp
}

func (f floatFormat) signed(s string) string {
	if f.sign && !strings.HasPrefix(s, "-") {
		return "+" + s
	}

	return s
}

// format renders v with the shared paddings.
func (f floatFormat) format(v float64) string {
	intPart, frac, exp := f.split(v)
	var b strings.Builder
	if pad := f.padLeft - len(intPart); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(intPart)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if pad := f.padRight + 1; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		return b.String()
	}
	b.WriteByte('.')
	b.WriteString(frac)
	fill := " "
	if f.sci {
		fill = "0"
	}
	if pad := f.padRight - len(frac); pad > 0 {
		b.WriteString(strings.Repeat(fill, pad))
	}
	if pad := f.expWidth - (len(exp) - 2); exp != "" && pad > 0 {
		exp = exp[:2] + strings.Repeat("0", pad) + exp[2:]
	}
	b.WriteString(exp)

	return b.String()
}

// Float renders a single value with the given options.
func Float(v float64, opts ...Option) string {
	o := gatherOptions(opts...)

	return newFloatFormat([]float64{v}, o, false).format(v)
}
