package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Mark is the content of a cell: Empty or one of the two player symbols.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) valid() bool {
	return that <= O
}

// ParseMark - reads a mark from its text form, "-", "." and " " mean Empty.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(s) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	case "", "-", ".", " ":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// ParsePlayerMark is ParseMark that rejects Empty.
func ParsePlayerMark(s string) (Mark, error) {
	mark, err := ParseMark(s)
	if err != nil {
		return Empty, err
	}

	if mark == Empty {
		return Empty, fmt.Errorf("%w: player mark is required", apperror.ErrInvalidMark)
	}

	return mark, nil
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark
	return nil
}
