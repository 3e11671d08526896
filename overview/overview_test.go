package overview

import (
	"bytes"
	"context"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frag "github.com/rmera/gofrag"
)

func TestRender(Te *testing.T) {
	objs, err := frag.LoadObjects(context.Background(), []string{"../testdata/ureas_O", "../testdata/ureas_S"}, frag.ProcessOptions{})
	require.NoError(Te, err)

	var buf bytes.Buffer
	require.NoError(Te, Render(&buf, objs, "bondlength_1", "EnergyTotal"))
	img, err := png.Decode(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, Width, img.Bounds().Dx())
	assert.Equal(Te, Height, img.Bounds().Dy())

	name := filepath.Join(Te.TempDir(), "overview.png")
	assert.NoError(Te, RenderFile(name, objs, "IRC", "Int"))

	assert.Error(Te, Render(&buf, nil, "bondlength_1", "EnergyTotal"))
	assert.Error(Te, Render(&buf, objs, "bondlength_1", "Nope"))
	assert.Error(Te, Render(&buf, objs, "angle_1", "EnergyTotal"))
}
