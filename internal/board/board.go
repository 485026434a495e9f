package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const Size = 9

// WinCombos lists the 3 rows, 3 columns and 2 diagonals of the grid.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is one position of a 3x3 game. It is a value: Apply returns a new
// Board and never touches the receiver, so positions can be copied freely.
type Board struct {
	cells  [Size]Mark
	winner Mark
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// AvailableMoves - returns the indices of empty cells in ascending order.
func (that Board) AvailableMoves() []int {
	moves := make([]int, 0, Size)
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// Apply - returns a copy of the board with mark placed on move.
// The winner is checked only through the played cell; once set it is kept.
func (that Board) Apply(move int, mark Mark) (Board, error) {
	if move < 0 || move >= Size {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, move)
	}

	if mark == Empty || !mark.valid() {
		return that, fmt.Errorf("%w: cannot place %d", apperror.ErrInvalidMark, mark)
	}

	if that.cells[move] != Empty {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, move)
	}

	next := that
	next.cells[move] = mark

	if next.winner == Empty && next.HasWinnerAt(move, mark) {
		next.winner = mark
	}

	return next, nil
}

// HasWinnerAt - reports whether mark on move completes a row, a column or,
// for even cells only, a diagonal. The cell at move counts as holding mark.
func (that Board) HasWinnerAt(move int, mark Mark) bool {
	if move < 0 || move >= Size || mark == Empty {
		return false
	}

	owns := func(i int) bool {
		return i == move || that.cells[i] == mark
	}

	row := move / 3 * 3
	if owns(row) && owns(row+1) && owns(row+2) {
		return true
	}

	col := move % 3
	if owns(col) && owns(col+3) && owns(col+6) {
		return true
	}

	// both diagonals only pass through the corners and the center
	if move%2 == 0 {
		if owns(0) && owns(4) && owns(8) {
			return true
		}
		if owns(2) && owns(4) && owns(6) {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Winner - returns the mark that completed a line, if any.
func (that Board) Winner() (Mark, bool) {
	return that.winner, that.winner != Empty
}

// IsTerminal reports a recorded winner or a full board.
func (that Board) IsTerminal() bool {
	return that.winner != Empty || that.IsFull()
}

func (that Board) Cell(move int) (Mark, error) {
	if move < 0 || move >= Size {
		return Empty, fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, move)
	}

	return that.cells[move], nil
}

func (that Board) Cells() [Size]Mark {
	return that.cells
}

// FromCells - builds a board from an arbitrary position. Unlike Apply it
// scans every line, and rejects positions where both marks own a line.
func FromCells(cells [Size]Mark) (Board, error) {
	for i, cell := range cells {
		if !cell.valid() {
			return Board{}, fmt.Errorf("%w: cell %d holds %d", apperror.ErrInvalidMark, i, cell)
		}
	}

	var winner Mark
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a == Empty || a != b || b != c {
			continue
		}

		if winner != Empty && winner != a {
			return Board{}, fmt.Errorf("%w: both players have a line", apperror.ErrInvalidBoard)
		}
		winner = a
	}

	return Board{cells: cells, winner: winner}, nil
}

// Parse - reads a row-major position such as "X.O.X...O".
// Separators "/" and "|" are ignored.
func Parse(s string) (Board, error) {
	var cells [Size]Mark

	i := 0
	for _, r := range s {
		if r == '/' || r == '|' {
			continue
		}

		if i == Size {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", apperror.ErrInvalidBoard, Size, s)
		}

		mark, err := ParseMark(string(r))
		if err != nil {
			return Board{}, err
		}

		cells[i] = mark
		i++
	}

	if i != Size {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Size, i)
	}

	return FromCells(cells)
}

// String renders the board as three rows, e.g. "| X | O |   |".
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		sb.WriteString("|")
		for col := 0; col < 3; col++ {
			cell := that.cells[row*3+col].String()
			if cell == "" {
				cell = " "
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
