package frag

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallResults = `#IRC bondlength EnergyTotal Disp
1 2.0 -1.5 0.0
2 1.9 -1.0 0.0

3 1.8 0.5 0.0
`

func TestReadData(Te *testing.T) {
	t, err := ReadData("testdata/ureas_O/pyfrag_ureas_O.txt")
	require.NoError(Te, err)

	assert.Equal(Te, "IRC", t.IndexName)
	assert.Equal(Te, 8, t.Len())
	assert.False(Te, t.Has("bondlength"))
	assert.True(Te, t.Has("bondlength_1"))
	cols := t.Columns()
	assert.Equal(Te, "bondlength_1", cols[0], "renaming keeps the column order")
	assert.Len(Te, cols, 16)
	e, err := t.Column("EnergyTotal")
	require.NoError(Te, err)
	assert.Equal(Te, 0.7, e[5])
	assert.Equal(Te, []float64{1, 2, 3, 4, 5, 6, 7, 8}, t.Index())
}

func TestReadResultsKeepsNumberedColumns(Te *testing.T) {
	Te.Parallel()
	text := "#IRC bondlength bondlength_2 angle\n1 1.0 2.0 90\n"
	t, err := ReadResults(strings.NewReader(text))
	require.NoError(Te, err)
	assert.Equal(Te, []string{"bondlength", "bondlength_2", "angle_1"}, t.Columns())
}

func TestReadResultsErrors(Te *testing.T) {
	Te.Parallel()
	for name, text := range map[string]string{
		"empty":        "",
		"short row":    "#IRC a b\n1 2\n",
		"not a number": "#IRC a\n1 x\n",
		"repeated":     "#IRC a a\n1 2 3\n",
	} {
		_, err := ReadResults(strings.NewReader(text))
		var perr *ResultsProcessingError
		assert.True(Te, errors.As(err, &perr), "%s: got %v", name, err)
	}
}

func TestReadDataCompressed(Te *testing.T) {
	Te.Parallel()
	dir := Te.TempDir()

	gzName := filepath.Join(dir, "pyfrag_small.txt.gz")
	f, err := os.Create(gzName)
	require.NoError(Te, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(smallResults))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	require.NoError(Te, f.Close())

	zstName := filepath.Join(dir, "pyfrag_small.txt.zst")
	f, err = os.Create(zstName)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(smallResults))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, f.Close())

	for _, name := range []string{gzName, zstName} {
		t, err := ReadData(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, 3, t.Len(), name)
		assert.Equal(Te, []string{"bondlength_1", "EnergyTotal", "Disp"}, t.Columns(), name)
	}
}

func TestReadDataMissing(Te *testing.T) {
	_, err := ReadData("testdata/nothing.txt")
	var perr *ResultsProcessingError
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, "read_data", perr.Section)
}

func TestTableOperations(Te *testing.T) {
	Te.Parallel()
	t, err := ReadResults(strings.NewReader(smallResults))
	require.NoError(Te, err)

	head := t.Head(2)
	assert.Equal(Te, 2, head.Len())
	assert.Equal(Te, 3, t.Len())

	dropped := t.Drop("Disp")
	assert.Equal(Te, []string{"bondlength_1", "EnergyTotal"}, dropped.Columns())
	assert.True(Te, t.Has("Disp"))

	del := t.DeleteRow(1)
	e, _ := del.Column("EnergyTotal")
	assert.Equal(Te, []float64{-1.5, 0.5}, e)

	row := t.Row(2)
	assert.Equal(Te, map[string]float64{"bondlength_1": 1.8, "EnergyTotal": 0.5, "Disp": 0}, row)

	c, _ := t.Column("EnergyTotal")
	c[0] = 100
	orig, _ := t.Column("EnergyTotal")
	assert.Equal(Te, -1.5, orig[0], "Column returns a copy")

	_, err = t.Column("nope")
	assert.Error(Te, err)
	assert.Equal(Te, []string{"bondlength_1"}, t.ColumnsWithPrefix("bond"))

	_, err = NewTable("IRC", []float64{1, 2}, []string{"a"}, [][]float64{{1}})
	assert.Error(Te, err)
}
