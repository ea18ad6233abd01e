package game

// Color identifies a side. Empty doubles as the "no disc" cell value and the
// "draw / nobody" winner value.
type Color int

const (
	Empty Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Move identifies a legal transition. A move is only meaningful relative to
// the state it was generated from.
type Move interface {
	String() string
}

// Pass is the distinguished move a side plays when it has no legal move and
// the game is not over. Only the driver plays it; searchers never generate it.
var Pass Move = pass{}

type pass struct{}

func (pass) String() string { return "pass" }

// State should be immutable - operations on State always return a new copy.
type State interface {
	// Player is the side to move.
	Player() Color
	// LegalMoves enumerates the legal moves in a stable order. It may be
	// empty: either the game is over or the side to move must pass.
	LegalMoves() []Move
	// Play applies a move and returns the successor state without mutating
	// the receiver.
	Play(Move) State
	// GameOver reports whether neither side has a legal move.
	GameOver() bool
	// Score is the static evaluation from a fixed perspective: positive
	// values favor Black.
	Score() int
}

// Evaluate scores a state from one agent's perspective: higher is better for
// that agent regardless of its color.
type Evaluate func(State) int

// EvaluateFor adjusts the fixed-perspective Score to the given side. Black
// consumes the raw score, White negates it.
func EvaluateFor(c Color) Evaluate {
	return func(s State) int {
		if c == White {
			return -s.Score()
		}
		return s.Score()
	}
}
