package voronoi

import (
	"context"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/osuushi/mosaic/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var squareBoundary = []geom.Point2D{{X: 200, Y: 200}, {X: -200, Y: 200}, {X: -200, Y: -200}, {X: 200, Y: -200}}

func TestClippedMeshes(t *testing.T) {
	scene := loadFixture(t, "forty_four_sites")
	require.Equal(t, squareBoundary, scene.Boundary)

	diagram := diagramFromFixture(t, "forty_four_sites")
	meshes, err := diagram.ClippedMeshes(context.Background(), scene.Boundary)
	require.NoError(t, err)
	assert.Len(t, meshes, 18)

	for i := 1; i < len(meshes); i++ {
		assert.Less(t, meshes[i-1].Cell, meshes[i].Cell, "meshes come back in cell order")
	}
}

// Cut cells keep the origin of the whole cell rather than moving to the middle
// of what is left.
func TestClippedMeshesKeepCellOrigin(t *testing.T) {
	diagram := diagramFromFixture(t, "forty_four_sites")
	clipped, err := diagram.ClippedMeshes(context.Background(), squareBoundary)
	require.NoError(t, err)
	whole, err := diagram.Meshes(context.Background())
	require.NoError(t, err)
	origins := map[int]r3.Vector{}
	for _, m := range whole {
		origins[m.Cell] = m.Mesh.Origin
	}

	for _, m := range clipped {
		center := geom.Centroid2D(diagram.Polygon(diagram.Cells[m.Cell]))
		assert.Equal(t, r3.Vector{X: center.X, Y: center.Y}, m.Mesh.Origin)
		assert.Equal(t, origins[m.Cell], m.Mesh.Origin)
		for _, uv := range m.Mesh.UVs {
			assert.True(t, uv.X >= 0 && uv.X <= 1 && uv.Y >= 0 && uv.Y <= 1, "%v", uv)
		}
	}
}

func TestClippedMeshesWorkerCountDoesNotMatter(t *testing.T) {
	diagram := diagramFromFixture(t, "forty_four_sites")
	serial, err := diagram.ClippedMeshes(context.Background(), squareBoundary, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := diagram.ClippedMeshes(context.Background(), squareBoundary, WithWorkers(8))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(serial, parallel))
}

func TestClippedMeshesCancelled(t *testing.T) {
	diagram := diagramFromFixture(t, "forty_four_sites")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := diagram.ClippedMeshes(ctx, squareBoundary)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClippedMeshesRejectsClockwiseBoundary(t *testing.T) {
	diagram := diagramFromFixture(t, "nine_sites")
	clockwise := []geom.Point2D{squareBoundary[3], squareBoundary[2], squareBoundary[1], squareBoundary[0]}
	_, err := diagram.ClippedMeshes(context.Background(), clockwise)
	assert.Error(t, err)
	_, err = diagram.ClippedMeshes(context.Background(), squareBoundary[:2])
	assert.Error(t, err)
}

func TestClipInsideIsIdempotent(t *testing.T) {
	cell := []geom.Point2D{{X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10}, {X: 10, Y: -10}}
	clipped, ok := Clip(cell, squareBoundary)
	require.True(t, ok)
	assert.Equal(t, cell, clipped)

	again, ok := Clip(clipped, squareBoundary)
	require.True(t, ok)
	assert.Equal(t, cell, again)
}

func TestClipInsideCellsOfFixture(t *testing.T) {
	diagram := diagramFromFixture(t, "forty_four_sites")
	inside := 0
	for _, cell := range diagram.Cells {
		polygon := diagram.Polygon(cell)
		allInside := true
		for _, p := range polygon {
			allInside = allInside && geom.Within(p, squareBoundary)
		}
		if !allInside {
			continue
		}
		inside++
		clipped, ok := Clip(polygon, squareBoundary)
		require.True(t, ok)
		assert.Equal(t, polygon, clipped, "%s", cell)
	}
	assert.Greater(t, inside, 0)
}

func TestClipOutside(t *testing.T) {
	cell := []geom.Point2D{{X: 300, Y: 300}, {X: 250, Y: 300}, {X: 250, Y: 250}}
	clipped, ok := Clip(cell, squareBoundary)
	assert.False(t, ok)
	assert.Nil(t, clipped)
}

func TestClipStraddling(t *testing.T) {
	// Square centred on the boundary's top right corner
	cell := []geom.Point2D{{X: 250, Y: 250}, {X: 150, Y: 250}, {X: 150, Y: 150}, {X: 250, Y: 150}}
	clipped, ok := Clip(cell, squareBoundary)
	require.True(t, ok)

	expected := []geom.Point2D{{X: 200, Y: 200}, {X: 150, Y: 200}, {X: 150, Y: 150}, {X: 200, Y: 150}}
	sortedPoints := cmpopts.SortSlices(func(a, b geom.Point2D) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	assert.Empty(t, cmp.Diff(expected, clipped, sortedPoints))
	assert.True(t, geom.IsCCW(clipped))
}

func TestClipBoundaryCornerInsideCell(t *testing.T) {
	// Square around the boundary's bottom left corner
	cell := []geom.Point2D{{X: -250, Y: -250}, {X: -150, Y: -250}, {X: -150, Y: -150}, {X: -250, Y: -150}}
	clipped, ok := Clip(cell, squareBoundary)
	require.True(t, ok)
	assert.Contains(t, clipped, geom.Point2D{X: -200, Y: -200})
	assert.Contains(t, clipped, geom.Point2D{X: -150, Y: -200})
	assert.Contains(t, clipped, geom.Point2D{X: -200, Y: -150})
	assert.Contains(t, clipped, geom.Point2D{X: -150, Y: -150})
	assert.Len(t, clipped, 4)
	assert.True(t, geom.IsCCW(clipped))
}

func TestClipDropsCellsWithEveryVertexOutside(t *testing.T) {
	// Covers the corner, but classification only looks at the cell's vertices
	cell := []geom.Point2D{{X: -300, Y: -300}, {X: -100, Y: -300}, {X: -300, Y: -100}}
	_, ok := Clip(cell, squareBoundary)
	assert.False(t, ok)
}

// Edges are cut against the whole line through each boundary side, so a cell
// edge passing beside a boundary corner picks up a point past that corner.
func TestClipCutsAgainstBoundaryLines(t *testing.T) {
	cell := []geom.Point2D{{X: 190, Y: 190}, {X: 250, Y: 350}, {X: 100, Y: 300}, {X: 100, Y: 150}}
	clipped, ok := Clip(cell, squareBoundary)
	require.True(t, ok)

	expected := []geom.Point2D{
		{X: 190, Y: 190}, {X: 193.75, Y: 200}, {X: 200, Y: 650.0 / 3}, {X: 100, Y: 200}, {X: 100, Y: 150},
	}
	assert.Empty(t, cmp.Diff(expected, clipped, cmpopts.EquateApprox(0, 1e-9)))
	assert.False(t, geom.Within(clipped[2], squareBoundary), "%v", clipped[2])
}
