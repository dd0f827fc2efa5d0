// SPDX-License-Identifier: MIT
package spectrum_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/matrixtools/spectrum"
)

var rotation = []complex128{complex(0, 1), complex(0, -1)}

func TestPoints(t *testing.T) {
	t.Parallel()

	xys := spectrum.Points([]complex128{complex(2, 0), complex(-1, 0.5)})
	require.Len(t, xys, 2)
	require.Equal(t, 2.0, xys[0].X)
	require.Equal(t, 0.0, xys[0].Y)
	require.Equal(t, -1.0, xys[1].X)
	require.Equal(t, 0.5, xys[1].Y)
}

func TestPlot(t *testing.T) {
	t.Parallel()

	p, err := spectrum.Plot(rotation, spectrum.WithTitle("rotation"), spectrum.WithUnitCircle(true), spectrum.WithLabels(3))
	require.NoError(t, err)
	require.Equal(t, "rotation", p.Title.Text)
	require.Equal(t, "Re", p.X.Label.Text)
	require.Equal(t, "Im", p.Y.Label.Text)

	_, err = spectrum.Plot(nil)
	require.ErrorIs(t, err, spectrum.ErrNoValues)

	_, err = spectrum.Plot([]complex128{complex(math.NaN(), 0)})
	require.ErrorIs(t, err, spectrum.ErrNonFinite)
	_, err = spectrum.Plot([]complex128{complex(0, math.Inf(1))})
	require.ErrorIs(t, err, spectrum.ErrNonFinite)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	cases := map[string][]byte{
		"svg": []byte("<svg"),
		"png": []byte("\x89PNG"),
		"PDF": []byte("%PDF"),
	}
	for format, magic := range cases {
		format, magic := format, magic
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, spectrum.Write(&buf, rotation, format, spectrum.WithSize(2*vg.Inch, 2*vg.Inch)))
			require.True(t, bytes.Contains(buf.Bytes()[:min(buf.Len(), 512)], magic), "missing %q header", magic)
		})
	}

	var buf bytes.Buffer
	require.ErrorIs(t, spectrum.Write(&buf, rotation, "gif"), spectrum.ErrUnsupportedFormat)
	require.ErrorIs(t, spectrum.Write(&buf, nil, "svg"), spectrum.ErrNoValues)
	require.Zero(t, buf.Len())
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "spectrum.png")
	require.NoError(t, spectrum.Save([]complex128{1, 2, 3}, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	bad := filepath.Join(dir, "spectrum.bmp")
	require.ErrorIs(t, spectrum.Save(rotation, bad), spectrum.ErrUnsupportedFormat)
	_, err = os.Stat(bad)
	require.True(t, os.IsNotExist(err))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { spectrum.WithSize(0, vg.Inch) })
	require.Panics(t, func() { spectrum.WithLabels(-1) })
	require.Equal(t, []string{"png", "svg", "pdf"}, spectrum.Formats())
}
