package game

import "fmt"

// Action is a single ply. Player actions are the four moves and four builds;
// monster actions are the four moves and Stay.
type Action uint8

const (
	NoAction Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	BuildUp
	BuildDown
	BuildLeft
	BuildRight
	Stay
)

var (
	up    = Delta{Row: -1}
	down  = Delta{Row: 1}
	left  = Delta{Col: -1}
	right = Delta{Col: 1}
)

// directions lists the four directions in generation order, each with its
// move and its paired build.
var directions = []struct {
	delta Delta
	move  Action
	build Action
}{
	{up, MoveUp, BuildUp},
	{down, MoveDown, BuildDown},
	{left, MoveLeft, BuildLeft},
	{right, MoveRight, BuildRight},
}

// IsMove reports whether the action translates the acting agent.
func (a Action) IsMove() bool {
	return a >= MoveUp && a <= MoveRight
}

// IsBuild reports whether the action places a wall.
func (a Action) IsBuild() bool {
	return a >= BuildUp && a <= BuildRight
}

// Delta returns the direction the action points in. Stay has a zero delta.
func (a Action) Delta() Delta {
	switch a {
	case MoveUp, BuildUp:
		return up
	case MoveDown, BuildDown:
		return down
	case MoveLeft, BuildLeft:
		return left
	case MoveRight, BuildRight:
		return right
	case Stay:
		return Delta{}
	default:
		panic(fmt.Sprintf("action %d has no direction", a))
	}
}

// String returns the keyboard code of the action: w/s/a/d to move, the same
// letter followed by b to build, and the empty string to stay.
func (a Action) String() string {
	switch a {
	case MoveUp:
		return "w"
	case MoveDown:
		return "s"
	case MoveLeft:
		return "a"
	case MoveRight:
		return "d"
	case BuildUp:
		return "wb"
	case BuildDown:
		return "sb"
	case BuildLeft:
		return "ab"
	case BuildRight:
		return "db"
	case Stay:
		return ""
	case NoAction:
		return "none"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// ParseAction maps a keyboard code back to its action.
func ParseAction(code string) (Action, error) {
	for a := MoveUp; a <= Stay; a++ {
		if a.String() == code {
			return a, nil
		}
	}
	return NoAction, fmt.Errorf("unknown action code %q", code)
}
