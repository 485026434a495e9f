package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange       = errors.New("cell index out of range")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameNotFound     = errors.New("game not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)
