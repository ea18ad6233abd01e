package game

import (
	"fmt"
	"strings"
)

const BoardSize = 8

// directions covers the 8 rays a placed disc can flip along.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Position is an Othello move: the cell where the mover places a disc.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), p.Row+1)
}

// Board is the full Othello position: the grid plus the side to move.
type Board struct {
	cells [BoardSize][BoardSize]Color
	turn  Color
}

// NewBoard returns the standard starting position with Black to move.
func NewBoard() *Board {
	b := &Board{turn: Black}
	mid := BoardSize / 2
	b.cells[mid-1][mid-1], b.cells[mid][mid] = White, White
	b.cells[mid-1][mid], b.cells[mid][mid-1] = Black, Black
	return b
}

func (b *Board) Player() Color { return b.turn }

// Cell returns the disc at the given coordinates, or Empty.
func (b *Board) Cell(row, col int) Color {
	return b.cells[row][col]
}

// flipsAlong counts the opponent discs bracketed from (row, col) along one
// direction, or 0 if the ray is not bracketed by a mover disc.
func (b *Board) flipsAlong(row, col, dr, dc int, mover Color) int {
	opponent := mover.Opponent()
	n := 0
	r, c := row+dr, col+dc
	for r >= 0 && r < BoardSize && c >= 0 && c < BoardSize && b.cells[r][c] == opponent {
		n++
		r, c = r+dr, c+dc
	}
	if n == 0 || r < 0 || r >= BoardSize || c < 0 || c >= BoardSize || b.cells[r][c] != mover {
		return 0
	}
	return n
}

func (b *Board) isLegal(row, col int, mover Color) bool {
	if b.cells[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.flipsAlong(row, col, d[0], d[1], mover) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves enumerates the side to move's legal moves in row-major order.
func (b *Board) LegalMoves() []Move {
	return b.movesFor(b.turn)
}

func (b *Board) movesFor(mover Color) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.isLegal(row, col, mover) {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Play clones the board, applies the move for the side to move, and hands the
// turn to the opponent. Playing Pass only flips the turn. Playing an illegal
// position returns the clone unchanged apart from the turn, so callers must
// only pass moves obtained from LegalMoves.
func (b *Board) Play(move Move) State {
	next := *b
	next.turn = b.turn.Opponent()

	pos, ok := move.(Position)
	if !ok {
		return &next
	}

	next.cells[pos.Row][pos.Col] = b.turn
	for _, d := range directions {
		n := b.flipsAlong(pos.Row, pos.Col, d[0], d[1], b.turn)
		r, c := pos.Row+d[0], pos.Col+d[1]
		for i := 0; i < n; i++ {
			next.cells[r][c] = b.turn
			r, c = r+d[0], c+d[1]
		}
	}
	return &next
}

// GameOver reports whether neither side has a legal move.
func (b *Board) GameOver() bool {
	return len(b.movesFor(Black)) == 0 && len(b.movesFor(White)) == 0
}

// Score is the disc differential: positive favors Black.
func (b *Board) Score() int {
	score := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case Black:
				score++
			case White:
				score--
			}
		}
	}
	return score
}

// Winner returns the leading side, or Empty on a tie.
func (b *Board) Winner() Color {
	score := b.Score()
	switch {
	case score > 0:
		return Black
	case score < 0:
		return White
	default:
		return Empty
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case Black:
				sb.WriteString(" O")
			case White:
				sb.WriteString(" X")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
