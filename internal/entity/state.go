package entity

// State is the outcome of a board at a given moment.
type State uint8

const (
	StateIncomplete State = iota
	StateWinA
	StateWinB
	StateDraw
)

func (that State) IsTerminal() bool {
	return that != StateIncomplete
}

// Winner - returns the winning side, SideNone for draws and unfinished boards.
func (that State) Winner() Side {
	switch that {
	case StateWinA:
		return SideA
	case StateWinB:
		return SideB
	default:
		return SideNone
	}
}

func (that State) String() string {
	switch that {
	case StateWinA:
		return "win " + MarkA
	case StateWinB:
		return "win " + MarkB
	case StateDraw:
		return "draw"
	default:
		return "incomplete"
	}
}

// Position addresses a cell by zero-based row and column, row 0 is the top row.
type Position struct {
	Row int
	Col int
}

// Tally holds the session counters.
type Tally struct {
	WinsA int
	WinsB int
	Draws int
}

// Record - counts one finished round. Incomplete states are ignored.
func (that *Tally) Record(state State) {
	switch state {
	case StateWinA:
		that.WinsA++
	case StateWinB:
		that.WinsB++
	case StateDraw:
		that.Draws++
	case StateIncomplete:
	}
}

func (that Tally) Total() int {
	return that.WinsA + that.WinsB + that.Draws
}

// Add - sums two tallies.
func (that Tally) Add(other Tally) Tally {
	return Tally{
		WinsA: that.WinsA + other.WinsA,
		WinsB: that.WinsB + other.WinsB,
		Draws: that.Draws + other.Draws,
	}
}
