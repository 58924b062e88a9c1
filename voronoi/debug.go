package voronoi

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/mosaic/dbg"
)

// Cells print with a readable name per site. Open cells are yellow, closed
// ones green.
func cellName(site interface{}, open bool) string {
	name := dbg.Name(site)
	if open {
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}

func (c Cell2D) String() string {
	return fmt.Sprintf("Cell2D(%s site=%d vertices=%v)", cellName(c.Site, c.Open), c.Site, c.Vertices)
}

func (c Cell3D) String() string {
	return fmt.Sprintf("Cell3D(%s site=%d vertices=%d edges=%d)", cellName(c.Site, c.Open), c.Site, len(c.Vertices), len(c.Edges))
}
