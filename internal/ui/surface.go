package ui

// Surface is the set of drawing primitives the game needs from a display.
type Surface interface {
	// MoveTo places the cursor at the given cell.
	MoveTo(col, row int)
	SetForeground(c Color)
	SetBackground(c Color)
	// Print writes text at the cursor and advances it.
	Print(text string)
}
