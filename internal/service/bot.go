package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

var ErrBotNotFound = errors.New("bot player not found")

type solver interface {
	Analyze(b board.Board, player, opponent board.Mark) (search.Analysis, error)
}

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
	solver solver
}

// NewBotService - the bot always plays the solver's best move.
func NewBotService(logger *slog.Logger, solver solver) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		solver: solver,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	analysis, err := that.solver.Analyze(game.Board, botPlayer.Mark, botPlayer.Mark.Opponent())
	if err != nil {
		return fmt.Errorf("failed to analyze board: %w", err)
	}

	if !analysis.Found {
		return apperror.ErrNoAvailableMoves
	}

	if err = game.MakeTurn(botPlayer.Mark, analysis.Move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "gameID", game.ID, "cell", analysis.Move, "score", analysis.Score)

	return nil
}
