package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"othello/game"
)

// Human prompts on its output stream with the board and the indexed legal
// moves, then reads a move index from its input stream, re-prompting until
// the index is valid.
type Human struct {
	color game.Color
	in    *bufio.Scanner
	out   io.Writer
}

func NewHuman(color game.Color, in io.Reader, out io.Writer) *Human {
	return &Human{color: color, in: bufio.NewScanner(in), out: out}
}

func (h *Human) ChooseMove(state game.State) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, false
	}

	fmt.Fprintf(h.out, "%v%s to move\n", state, h.color)
	for i, move := range moves {
		fmt.Fprintf(h.out, "%d: %s\n", i, move)
	}
	for {
		fmt.Fprint(h.out, "Please choose a move: ")
		if !h.in.Scan() {
			// Input exhausted; yield rather than loop forever.
			return nil, false
		}
		i, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil || i < 0 || i >= len(moves) {
			fmt.Fprintf(h.out, "invalid choice %q\n", h.in.Text())
			continue
		}
		return moves[i], true
	}
}
