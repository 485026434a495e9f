package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

type GamePlayService interface {
	NewGameWithBot(ctx context.Context, playerID string, playerMark board.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (search.Analysis, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
	solver      solver
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService, solver solver) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
		solver:      solver,
	}
}

// NewGameWithBot - starts a game against the solver. The bot opens when the
// player chose O.
func (that *gamePlayService) NewGameWithBot(ctx context.Context, playerID string, playerMark board.Mark) (*entity.Game, error) {
	if playerMark != board.X && playerMark != board.O {
		return nil, fmt.Errorf("%w: player must be X or O", apperror.ErrInvalidMark)
	}

	if playerID == "" {
		playerID = uuid.NewString()
	}

	game, err := that.gameService.CreateGame(ctx, entity.WithBotType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.Players = []*entity.Player{
		{ID: playerID, Mark: playerMark, GameID: game.ID},
		entity.NewBotPlayer(game.ID, playerMark.Opponent()),
	}

	if game.Turn != playerMark {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game with bot: %w", err)
	}

	that.logger.Info("game with bot created", "gameID", game.ID, "playerID", playerID, "mark", playerMark.String())

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human move on cell, then the bot reply.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	human := game.HumanPlayer()
	if human == nil {
		return nil, fmt.Errorf("%w: no human player in game %s", apperror.ErrNotYourTurn, gameID)
	}

	if err = game.MakeTurn(human.Mark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() && game.IsWithBot() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// Hint - returns the solver's view of the position for the human player.
func (that *gamePlayService) Hint(ctx context.Context, gameID string) (search.Analysis, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return search.Analysis{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return search.Analysis{}, apperror.ErrGameFinished
	}

	human := game.HumanPlayer()
	if human == nil || game.Turn != human.Mark {
		return search.Analysis{}, apperror.ErrNotYourTurn
	}

	analysis, err := that.solver.Analyze(game.Board, human.Mark, human.Mark.Opponent())
	if err != nil {
		return search.Analysis{}, fmt.Errorf("failed to analyze board: %w", err)
	}

	return analysis, nil
}
