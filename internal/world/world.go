package world

import (
	"github.com/samdwyer/warquest/internal/grid"
	"github.com/samdwyer/warquest/internal/ui"
)

// World holds the tile map, the player and every other actor.
type World struct {
	tiles    *TileMap
	player   *Entity
	entities []*Entity
}

// New creates a world. Entity placements are trusted and not checked
// against the terrain. Roster order decides ties in ClosestEntity.
func New(tiles *TileMap, player *Entity, roster []*Entity) *World {
	entities := make([]*Entity, len(roster))
	copy(entities, roster)
	return &World{
		tiles:    tiles,
		player:   player,
		entities: entities,
	}
}

// Tiles returns the world's tile map.
func (w *World) Tiles() *TileMap {
	return w.tiles
}

// Player returns the player entity.
func (w *World) Player() *Entity {
	return w.player
}

// Entities returns a copy of the non-player roster, in roster order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// MovePlayer steps the player one cell in direction d. Moves off the grid
// or into solid terrain are ignored. It reports whether the player moved.
func (w *World) MovePlayer(d grid.Direction) bool {
	next := w.player.Position.Add(d)
	if next == w.player.Position {
		return false
	}
	if !w.tiles.CanMoveTo(next.Col, next.Row) {
		return false
	}
	w.player.Position = next
	return true
}

// ClosestEntity returns the non-player entity nearest to the player by
// Manhattan distance; the earliest in roster order wins ties. With an empty
// roster it returns the player itself, which callers treat as no target.
func (w *World) ClosestEntity() *Entity {
	closest := w.player
	best := -1
	for _, e := range w.entities {
		d := grid.Distance(e.Position, w.player.Position)
		if best < 0 || d < best {
			closest = e
			best = d
		}
	}
	return closest
}

// Render repaints the whole world: terrain, then other entities, then the
// player on top. Entities outside the tile map are not drawn.
func (w *World) Render(s ui.Surface) {
	for row := 0; row < w.tiles.Rows(); row++ {
		for col := 0; col < w.tiles.Cols(); col++ {
			tile, _ := w.tiles.At(col, row)
			draw(s, grid.Coord{Col: col, Row: row}, tile.Rune())
		}
	}

	for _, e := range w.entities {
		if !w.tiles.InBounds(e.Position.Col, e.Position.Row) {
			continue
		}
		draw(s, e.Position, e.Rune)
	}

	draw(s, w.player.Position, w.player.Rune)
}

func draw(s ui.Surface, at grid.Coord, r Rune) {
	s.MoveTo(at.Col, at.Row)
	s.SetForeground(r.Foreground)
	s.SetBackground(r.Background)
	s.Print(r.String())
}
