// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleSegments is the polyline resolution of the unit circle.
const circleSegments = 128

var pointColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Formats lists the accepted output formats.
func Formats() []string { return []string{"png", "svg", "pdf"} }

// Points maps each eigenvalue to (Re, Im).
func Points(values []complex128) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X, xys[i].Y = real(v), imag(v)
	}

	return xys
}

// Plot builds the scatter plot of values.
//
// Errors:
//   - ErrNoValues for an empty slice.
//   - ErrNonFinite when any component is NaN or ±Inf.
func Plot(values []complex128, opts ...Option) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	for i, v := range values {
		if isNonFinite(real(v)) || isNonFinite(imag(v)) {
			return nil, fmt.Errorf("value %d (%v): %w", i, v, ErrNonFinite)
		}
	}
	o := gatherOptions(opts...)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())

	if o.unitCircle {
		circle, err := plotter.NewLine(unitCircle())
		if err != nil {
			return nil, err
		}
		circle.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		circle.LineStyle.Color = color.Gray{Y: 0x99}
		p.Add(circle)
	}

	xys := Points(values)
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Color = pointColor
	p.Add(sc)
	p.Legend.Add("λ", sc)

	if o.labels {
		names := make([]string, len(values))
		for i, v := range values {
			names[i] = label(v, o.precision)
		}
		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return nil, err
		}
		lb.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
		p.Add(lb)
	}

	return p, nil
}

// Save plots values into path; the extension picks the format.
func Save(values []complex128, path string, opts ...Option) error {
	if _, err := formatOf(path); err != nil {
		return err
	}
	p, err := Plot(values, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)

	return p.Save(o.width, o.height, path)
}

// Write renders the plot in the given format ("png", "svg", "pdf") to w.
func Write(w io.Writer, values []complex128, format string, opts ...Option) error {
	format = strings.ToLower(format)
	if !supported(format) {
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	p, err := Plot(values, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}

func formatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supported(ext) {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	return ext, nil
}

func supported(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}

	return false
}

func unitCircle() plotter.XYs {
	xys := make(plotter.XYs, circleSegments+1)
	for i := range xys {
		t := 2 * math.Pi * float64(i) / circleSegments
		xys[i].X, xys[i].Y = math.Cos(t), math.Sin(t)
	}

	return xys
}

func label(v complex128, prec int) string {
	re := strconv.FormatFloat(real(v), 'g', prec, 64)
	if imag(v) == 0 {
		return re
	}
	im := strconv.FormatFloat(imag(v), 'g', prec, 64)
	if imag(v) > 0 {
		im = "+" + im
	}

	return re + im + "i"
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
