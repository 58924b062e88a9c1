package voronoi

import (
	"embed"
	"testing"

	"github.com/osuushi/mosaic/svgio"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Sites are the circles, in document order; the boundary, if any, is the
// polygon.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) *svgio.Scene {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	scene, err := svgio.Read(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)
	return scene
}
