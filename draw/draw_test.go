package draw

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sites = []geom.Point2D{
	{X: -190, Y: 90}, {X: -145, Y: 120}, {X: -120, Y: -45},
	{X: -60, Y: -120}, {X: -20, Y: 190}, {X: 60, Y: -10},
	{X: 80, Y: -190}, {X: 100, Y: 140}, {X: 190, Y: -60},
}

var boundary = []geom.Point2D{{X: 100, Y: 100}, {X: -100, Y: 100}, {X: -100, Y: -100}, {X: 100, Y: -100}}

func TestRender(t *testing.T) {
	triangulation, err := delaunay.Triangulate2D(sites)
	require.NoError(t, err)
	diagram, err := voronoi.FromDelaunay2D(triangulation)
	require.NoError(t, err)
	meshes, err := diagram.ClippedMeshes(context.Background(), boundary)
	require.NoError(t, err)

	img, err := Render(Scene{
		Meshes:        meshes,
		Diagram:       diagram,
		Triangulation: triangulation,
		Boundary:      boundary,
	}, 2)
	require.NoError(t, err)

	// 380 units wide and tall, plus padding on both sides
	bounds := img.Bounds()
	assert.Equal(t, 2*380+2*padding, bounds.Dx())
	assert.Equal(t, 2*380+2*padding, bounds.Dy())
}

func TestRenderNothing(t *testing.T) {
	_, err := Render(Scene{}, 1)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	triangulation, err := delaunay.Triangulate2D(sites)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "triangulation.png")
	require.NoError(t, SavePNG(Scene{Triangulation: triangulation}, 1, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
