package interpolate

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frag "github.com/rmera/gofrag"
)

const coord = "bondlength_1"

func systems(Te *testing.T) []*frag.Object {
	Te.Helper()
	objs, err := frag.LoadObjects(context.Background(), []string{"../testdata/ureas_O", "../testdata/ureas_S"}, frag.ProcessOptions{})
	require.NoError(Te, err)
	return objs
}

func TestData(Te *testing.T) {
	objs := systems(Te)
	row, err := Data(objs[0], coord, 1.85)
	require.NoError(Te, err)
	assert.Equal(Te, "ureas_O", row.Name)
	assert.NotContains(Te, row.Keys, coord)
	assert.InDelta(Te, 0.6, row.Values["EnergyTotal"], 1e-9)
	assert.InDelta(Te, -12.0, row.Values["Int"], 1e-9)
	assert.InDelta(Te, 0.245, row.Values["overlap_1"], 1e-9)

	row, err = Data(objs[0], coord, 2.3)
	require.NoError(Te, err, "the ends of the range are valid")
	assert.InDelta(Te, -0.3, row.Values["EnergyTotal"], 1e-9)

	row, err = Data(objs[0], "IRC", 1.5)
	require.NoError(Te, err)
	assert.InDelta(Te, 2.25, row.Values[coord], 1e-9)

	_, err = Data(objs[0], coord, 3.0)
	assert.Error(Te, err)
	_, err = Data(objs[0], "angle_1", 2.0)
	assert.Error(Te, err)
}

func TestDataRepeatedCoordinate(Te *testing.T) {
	x := []float64{2.0, 1.9, 1.9, 1.8}
	e := []float64{0, 1, 5, 2}
	t, err := frag.NewTable("IRC", []float64{1, 2, 3, 4}, []string{coord, "EnergyTotal"}, [][]float64{x, e})
	require.NoError(Te, err)
	o := frag.NewObject(t, &frag.Input{Name: "rounded"})

	row, err := Data(o, coord, 1.85)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.5, row.Values["EnergyTotal"], 1e-9, "the first of the repeated points is used")
	row, err = Data(o, coord, 1.9)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, row.Values["EnergyTotal"], 1e-9)

	flat, err := frag.NewTable("IRC", []float64{1, 2}, []string{coord, "EnergyTotal"}, [][]float64{{1.9, 1.9}, {0, 1}})
	require.NoError(Te, err)
	_, err = Data(frag.NewObject(flat, nil), coord, 1.9)
	assert.Error(Te, err)
}

func TestNearestTwoPoints(Te *testing.T) {
	tests := []struct {
		name  string
		x     []float64
		point float64
		want  [2]int
		err   bool
	}{
		{"decreasing", []float64{2.3, 2.2, 2.1, 2.0}, 2.15, [2]int{1, 2}, false},
		{"increasing", []float64{1, 2, 3, 4}, 3.5, [2]int{2, 3}, false},
		{"on a point", []float64{1, 2, 3, 4}, 2, [2]int{0, 1}, false},
		{"below", []float64{1, 2, 3}, 0.5, [2]int{}, true},
		{"at the end", []float64{1, 2, 3}, 3, [2]int{}, true},
		{"one point", []float64{1}, 1, [2]int{}, true},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(Te *testing.T) {
			got, err := nearestTwoPoints(tt.x, tt.point)
			if tt.err {
				assert.Error(Te, err)
				return
			}
			require.NoError(Te, err)
			assert.Equal(Te, tt.want, got)
		})
	}
}

func TestSystemsRun(Te *testing.T) {
	objs := systems(Te)
	s := New(objs, coord, 1.85, Keys{})
	assert.Equal(Te, DefaultKeys, s.Keys)
	require.NoError(Te, s.Run())
	require.Len(Te, s.Results, 2)

	o := s.Results[0]
	assert.Equal(Te, "ureas_O", o.Name)
	assert.Equal(Te, [2]int{4, 5}, o.Indices)
	assert.InDelta(Te, 1.9, o.Coords[0], 1e-9)
	assert.InDelta(Te, 0.6, o.Values["EnergyTotal"], 1e-9)
	assert.InDelta(Te, 12.6, o.Values["StrainTotal"], 1e-9)
	assert.InDelta(Te, -14.5, o.Values["Elstat"], 1e-9)

	require.Len(Te, o.Orbitals, 1)
	p := o.Orbitals[0]
	assert.Equal(Te, "frag1 HOMO & frag2 LUMO", p.Label)
	assert.InDelta(Te, 0.245, p.Overlap, 1e-9)
	assert.InDelta(Te, 0.232*frag.HartreeToEV, p.Gap, 1e-9)
	assert.InDelta(Te, -0.291*frag.HartreeToEV, p.MO1, 1e-9)
	assert.InDelta(Te, 1.885, p.Pop1, 1e-9)
	assert.InDelta(Te, 0.105, p.Pop2, 1e-9)
	assert.InDelta(Te, 0.245*0.245/(0.232*frag.HartreeToEV)*100, p.Stabilization(), 1e-9)

	assert.InDelta(Te, -0.66, s.Results[1].Values["EnergyTotal"], 1e-9)
}

func TestStabilizationZeroGap(Te *testing.T) {
	assert.Equal(Te, 0.0, OrbitalPair{Overlap: 0.3}.Stabilization())
}

func TestPeakPoint(Te *testing.T) {
	objs := systems(Te)
	p, err := PeakPoint(objs, coord, "max")
	require.NoError(Te, err)
	assert.InDelta(Te, 2.30001, p, 1e-12)
	//ureas_S peaks at the first point, which can't be interpolated.
	assert.Error(Te, New(objs, coord, p, Keys{}).Run())

	p, err = PeakPoint(objs[:1], coord, "max")
	require.NoError(Te, err)
	assert.InDelta(Te, 1.80001, p, 1e-12)
	assert.NoError(Te, New(objs[:1], coord, p, Keys{}).Run())

	_, err = PeakPoint(nil, coord, "max")
	assert.Error(Te, err)
}

func TestWriteReport(Te *testing.T) {
	objs := systems(Te)
	s := New(objs, coord, 1.85, Keys{ASM: []string{"EnergyTotal", "Nothing"}, EDA: DefaultKeys.EDA})
	require.NoError(Te, s.Run())
	var buf bytes.Buffer
	require.NoError(Te, s.WriteReport(&buf))
	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.Equal(Te, "----------  Interpolation at 1.85 A  ----------", lines[0])
	assert.Contains(Te, out, "ureas_O,[5 6],1.900,1.800\n")
	assert.Contains(Te, out, "System,EnergyTotal,Nothing\nureas_O,0.60,-\n")
	assert.NotContains(Te, out, "Extra Strain Decomposition")
	assert.Contains(Te, out, "ureas_O,-12.00,-14.50,")
	assert.Contains(Te, out, "Orbital Analysis\n#1\n")
	assert.Contains(Te, out, "ureas_O,frag1 HOMO & frag2 LUMO,")
	assert.Contains(Te, out, ",-7.92,-1.61,6.31,")
}
