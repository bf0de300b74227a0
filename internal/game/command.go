package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/warquest/internal/grid"
)

// CommandKind identifies a logical player command.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMove
	CommandHail
	CommandQuit
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandMove:
		return "move"
	case CommandHail:
		return "hail"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one turn's worth of player intent, independent of key codes.
type Command struct {
	Kind      CommandKind
	Direction grid.Direction // Only meaningful for CommandMove
}

// Move returns a move command in direction d.
func Move(d grid.Direction) Command {
	return Command{Kind: CommandMove, Direction: d}
}

// Hail returns a hail command.
func Hail() Command {
	return Command{Kind: CommandHail}
}

// Quit returns a quit command.
func Quit() Command {
	return Command{Kind: CommandQuit}
}

// keyToCommand maps a tcell key event to a logical command.
func keyToCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return Move(grid.North)
	case tcell.KeyDown:
		return Move(grid.South)
	case tcell.KeyRight:
		return Move(grid.East)
	case tcell.KeyLeft:
		return Move(grid.West)
	case tcell.KeyEnter:
		return Hail()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'K':
			return Move(grid.North)
		case 'j', 'J':
			return Move(grid.South)
		case 'l', 'L':
			return Move(grid.East)
		case 'h', 'H':
			return Move(grid.West)
		case 't', 'T':
			return Hail()
		case 'q', 'Q':
			return Quit()
		}
	}
	return Command{}
}
