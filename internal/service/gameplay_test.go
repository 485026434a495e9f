package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	mockedService "github.com/rocketscienceinc/tictactoe-solver/mocks/service"
)

var errRedisDown = errors.New("redis down")

func newGamePlay(t *testing.T) (GamePlayService, *mockedService.MockgameRepo) {
	t.Helper()

	logger := newTestLogger()
	engine := search.NewEngine(logger, true)
	repo := mockedService.NewMockgameRepo(t)

	return NewGamePlayService(logger, NewGameService(repo), NewBotService(logger, engine), engine), repo
}

func TestGamePlayService_NewGameWithBot(t *testing.T) {
	ctx := context.Background()

	t.Run("Player X moves first", func(t *testing.T) {
		// Given: a repository that accepts writes
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Twice()

		// When: the player picks X
		game, err := gamePlay.NewGameWithBot(ctx, "p1", board.X)

		// Then: the board is untouched and it is the player's turn
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, board.New(), game.Board)
		assert.Equal(t, board.X, game.Turn)
		require.Len(t, game.Players, 2)
		assert.Equal(t, "p1", game.HumanPlayer().ID)
		assert.Equal(t, board.O, game.BotPlayer().Mark)
	})

	t.Run("Bot opens when player picks O", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Twice()

		// When: the player picks O without an id
		game, err := gamePlay.NewGameWithBot(ctx, "", board.O)

		// Then: the bot took the top-left corner and an id was generated
		require.NoError(t, err)
		cell, err := game.Board.Cell(0)
		require.NoError(t, err)
		assert.Equal(t, board.X, cell)
		assert.Equal(t, board.O, game.Turn)
		assert.NotEmpty(t, game.HumanPlayer().ID)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		gamePlay, _ := newGamePlay(t)

		_, err := gamePlay.NewGameWithBot(ctx, "p1", board.Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Error when storage fails", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errRedisDown).
			Once()

		_, err := gamePlay.NewGameWithBot(ctx, "p1", board.X)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Human move is answered by the bot", func(t *testing.T) {
		// Given: a stored game where the human plays X
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.X)

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()
		repo.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		// When: the human takes the center
		game, err := gamePlay.MakeTurn(ctx, stored.ID, 4)

		// Then: the bot replied in the corner and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, mustBoard(t, "O../.X./..."), game.Board)
		assert.Equal(t, board.X, game.Turn)
	})

	t.Run("Winning human move skips the bot", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.X)
		stored.Board = mustBoard(t, "XX./OO./...")

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()
		repo.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		game, err := gamePlay.MakeTurn(ctx, stored.ID, 2)

		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
	})

	t.Run("Error on occupied cell does not store anything", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.X)
		stored.Board = mustBoard(t, "X../.O./...")

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()

		_, err := gamePlay.MakeTurn(ctx, stored.ID, 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on unknown game", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)

		repo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return((*entity.Game)(nil), apperror.ErrGameNotFound).
			Once()

		_, err := gamePlay.MakeTurn(ctx, "missing", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.X)
		stored.Status = entity.StatusFinished

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()

		_, err := gamePlay.MakeTurn(ctx, stored.ID, 0)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGamePlayService_Hint(t *testing.T) {
	ctx := context.Background()

	t.Run("Suggests the blocking move", func(t *testing.T) {
		// Given: the human (O) must block the middle row
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.O)
		stored.Board = mustBoard(t, "O../XX./...")
		stored.Turn = board.O

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()

		// When: asking for a hint
		analysis, err := gamePlay.Hint(ctx, stored.ID)

		// Then: the solver points at the block
		require.NoError(t, err)
		assert.Equal(t, 5, analysis.Move)
		assert.Equal(t, search.Draw, analysis.Score)
	})

	t.Run("Error when it is the bot's turn", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		stored := newBotGame(t, board.O)

		repo.EXPECT().GetByID(mock.Anything, stored.ID).Return(stored, nil).Once()

		_, err := gamePlay.Hint(ctx, stored.ID)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	// Given: a repository that fails deletes
	repo := mockedService.NewMockgameRepo(t)
	repo.EXPECT().DeleteByID(mock.Anything, "game1").Return(errRedisDown).Once()

	// When: deleting a game
	err := NewGameService(repo).DeleteGame(ctx, "game1")

	// Then: the storage error is wrapped
	require.ErrorIs(t, err, errRedisDown)
}
