package game

import (
	"github.com/samdwyer/warquest/internal/grid"
	"github.com/samdwyer/warquest/internal/ui"
)

// Region names used for narration.
const (
	RegionSystem = "system"
	RegionCombat = "combat"
)

// uiRows is the height of the message area below the world.
const uiRows = 8

// newLayout places the message area under a cols x rows world: the system
// log on the left half and the combat log on the right, both bordered so
// the chrome template fills their top rows.
func newLayout(cols, rows int) (*ui.UI, error) {
	origin := grid.Coord{Col: 0, Row: rows}
	layout := ui.New(origin, cols, uiRows)

	left := cols / 2
	system := ui.NewRegion(origin, left, uiRows, true)
	combat := ui.NewRegion(grid.Coord{Col: left, Row: rows}, cols-left, uiRows, true)

	if err := layout.AddRegion(RegionSystem, system); err != nil {
		return nil, err
	}
	if err := layout.AddRegion(RegionCombat, combat); err != nil {
		return nil, err
	}
	return layout, nil
}
