package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

const (
	WithBotType = "bot"
)

// Game is a stored match between a human and the solver bot.
type Game struct {
	ID      string      `json:"id"`
	Board   board.Board `json:"board"`
	Winner  string      `json:"winner"`
	Status  string      `json:"status"`
	Turn    board.Mark  `json:"player_turn"`
	Players []*Player   `json:"players,omitempty"`
	Type    string      `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  board.New(),
		Turn:   board.X,
		Status: StatusOngoing,
		Type:   gameType,
	}
}

// MakeTurn - applies a move for playerMark and hands the turn over.
func (that *Game) MakeTurn(playerMark board.Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.Apply(cell, playerMark)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = next
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner.String()
		that.Status = StatusFinished
		that.Turn = board.Empty
		return
	}

	if that.Board.IsFull() {
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = board.Empty
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer - returns the bot seat, nil when the game has none.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}
