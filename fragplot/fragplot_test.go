package fragplot

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frag "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/config"
)

func systems(Te *testing.T) []*frag.Object {
	Te.Helper()
	objs, err := frag.LoadObjects(context.Background(), []string{"../testdata/ureas_O", "../testdata/ureas_S"}, frag.ProcessOptions{})
	require.NoError(Te, err)
	return objs
}

//small returns the default settings with a small, low resolution figure.
func small(Te *testing.T) *Settings {
	Te.Helper()
	s := DefaultSettings()
	s.FigSize = [2]float64{4, 3}
	s.DPI = 30
	require.NoError(Te, s.Init())
	return s
}

func assertFiles(Te *testing.T, names []string) {
	Te.Helper()
	for _, n := range names {
		info, err := os.Stat(n)
		if assert.NoError(Te, err, n) {
			assert.NotZero(Te, info.Size(), n)
		}
	}
}

func TestParseColour(Te *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{"red", color.RGBA{R: 255, A: 255}, false},
		{" Black ", color.RGBA{A: 255}, false},
		{"#0000ff", color.RGBA{B: 255, A: 255}, false},
		{"#00f", nil, true},
		{"#gg0000", nil, true},
		{"octarine", nil, true},
	}
	for _, tt := range tests {
		c, err := ParseColour(tt.in)
		if tt.err {
			assert.Error(Te, err, tt.in)
			continue
		}
		require.NoError(Te, err, tt.in)
		assert.Equal(Te, tt.want, c, tt.in)
	}
}

func TestParseLineStyle(Te *testing.T) {
	d, err := ParseLineStyle("solid")
	require.NoError(Te, err)
	assert.Empty(Te, d)
	d, err = ParseLineStyle("--")
	require.NoError(Te, err)
	assert.Len(Te, d, 2)
	d, err = ParseLineStyle("DashDot")
	require.NoError(Te, err)
	assert.Len(Te, d, 4)
	_, err = ParseLineStyle("wavy")
	assert.Error(Te, err)
}

func TestSettingsFromConfig(Te *testing.T) {
	s := DefaultSettings()
	assert.Equal(Te, "bondlength_1", s.Coord)
	assert.Equal(Te, "max", s.PeakType)
	assert.Equal(Te, []float64{-20, 20}, s.YLim)
	assert.Empty(Te, s.XLim)
	assert.Equal(Te, [2]float64{10, 8}, s.FigSize)
	assert.Equal(Te, "png", s.Format)
	assert.Equal(Te, 250, s.DPI)
	assert.Len(Te, s.colours, len(s.Colours))
	assert.Equal(Te, s.colour(0), s.colour(len(s.Colours)), "colours are reused")

	c := config.Default()
	require.NoError(Te, c.Set(config.Shared, "stat_point_type", "none"))
	require.NoError(Te, c.Set(config.Figure, "format", ".SVG"))
	s, err := SettingsFromConfig(c)
	require.NoError(Te, err)
	assert.Equal(Te, "", s.PeakType)
	assert.Equal(Te, "svg", s.Format)

	require.NoError(Te, c.Set(config.Shared, "colours", "red, octarine"))
	_, err = SettingsFromConfig(c)
	assert.Error(Te, err)

	bad := DefaultSettings()
	bad.PeakType = "saddle"
	assert.Error(Te, bad.Init())
	bad = DefaultSettings()
	bad.YLim = []float64{1}
	assert.Error(Te, bad.Init())
}

func TestSoloPlotter(Te *testing.T) {
	objs := systems(Te)
	dir := Te.TempDir()
	sp, err := NewSoloPlotter(dir, objs[0], small(Te))
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(dir, "ureas_O"), sp.Dir)

	names, err := sp.Plot()
	require.NoError(Te, err)
	assert.Equal(Te, []string{
		filepath.Join(sp.Dir, "ASM_EnergyTotal_Int_StrainTotal.png"),
		filepath.Join(sp.Dir, "EDA_Int_Elstat_OI_Pauli_Disp.png"),
		filepath.Join(sp.Dir, "Overlaps.png"),
		filepath.Join(sp.Dir, "Populations.png"),
		filepath.Join(sp.Dir, "EnergyGaps.png"),
	}, names)
	assertFiles(Te, names)

	_, err = NewSoloPlotter(dir, nil, nil)
	assert.Error(Te, err)
}

func TestMultiPlotter(Te *testing.T) {
	objs := systems(Te)
	s := small(Te)
	s.ReverseX = true
	s.VLine = 2.0
	s.XLim = []float64{1.6, 2.3}
	require.NoError(Te, s.Init())
	m, err := NewMultiPlotter("ureas", Te.TempDir(), objs, s)
	require.NoError(Te, err)

	names, err := m.Plot()
	require.NoError(Te, err)
	assert.Len(Te, names, 11)
	assert.Contains(Te, names, filepath.Join(m.Dir, "EDA_Int_Elstat_OI_Pauli.png"), "Disp is missing in ureas_S")
	assert.Contains(Te, names, filepath.Join(m.Dir, "Strain_StrainTotal_frag1Strain_frag2Strain.png"))
	assert.Contains(Te, names, filepath.Join(m.Dir, "Stabilization.png"))
	assert.Contains(Te, names, filepath.Join(m.Dir, "EDA_Pauli.png"))
	assertFiles(Te, names)

	name, err := m.PlotArbitraryKeys("Bond", []string{"EnergyTotal", "IrrepOI_1"}, []float64{-40, 5})
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(m.Dir, "Bond.png"), name)

	_, err = m.PlotArbitraryKeys("Nothing", []string{"nope"}, nil)
	assert.True(Te, errors.Is(err, ErrNothingToPlot))

	peak, err := m.MaxPeakCoord()
	require.NoError(Te, err)
	assert.InDelta(Te, 2.3, peak, 1e-9)

	_, err = NewMultiPlotter("none", Te.TempDir(), nil, s)
	assert.Error(Te, err)
}

func TestVectorFormat(Te *testing.T) {
	objs := systems(Te)
	s := small(Te)
	s.Format = "svg"
	require.NoError(Te, s.Init())
	m, err := NewMultiPlotter("svg", Te.TempDir(), objs, s)
	require.NoError(Te, err)
	name, err := m.PlotASM("EnergyTotal")
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(m.Dir, "ASM_EnergyTotal.svg"), name)
	assertFiles(Te, []string{name})
}

func TestPlotMultipleGraphs(Te *testing.T) {
	objs := systems(Te)
	s := small(Te)
	dir := Te.TempDir()
	var panels []*MultiPlotter
	for _, name := range []string{"a", "b", "c", "d"} {
		p, err := NewMultiPlotter(name, dir, objs, s)
		require.NoError(Te, err)
		panels = append(panels, p)
	}
	pic := filepath.Join(dir, "molecule.png")
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.Set(3, 3, color.Black)
	f, err := os.Create(pic)
	require.NoError(Te, err)
	require.NoError(Te, png.Encode(f, img))
	require.NoError(Te, f.Close())

	name, err := panels[0].PlotMultipleGraphs(panels, "asm", nil, []string{pic, "", pic, ""})
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(panels[0].Dir, "Combined_EnergyTotal_Int_StrainTotal.png"), name)
	assertFiles(Te, []string{name})

	_, err = panels[0].PlotMultipleGraphs(panels, "nmr", nil, nil)
	assert.Error(Te, err)
	_, err = panels[0].PlotMultipleGraphs(panels, "eda", nil, []string{pic})
	assert.Error(Te, err)
	_, err = panels[0].PlotMultipleGraphs(nil, "eda", nil, nil)
	assert.True(Te, errors.Is(err, ErrNothingToPlot))
}
