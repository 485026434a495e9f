package search

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

func TestEngine_Analyze(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Returns the best move with diagnostics", func(t *testing.T) {
		// Given: an alpha-beta engine and a position where X can win
		engine := NewEngine(logger, true)
		b := mustParse(t, "XX./OO./...")

		// When: analyzing for X
		analysis, err := engine.Analyze(b, board.X, board.O)

		// Then: the winning move is found with a win score
		require.NoError(t, err)
		assert.True(t, analysis.Found)
		assert.Equal(t, 2, analysis.Move)
		assert.Equal(t, Win, analysis.Score)
		assert.Len(t, analysis.Scores, 5)
		assert.Positive(t, analysis.Stats.Nodes)
	})

	t.Run("Both variants agree", func(t *testing.T) {
		b := mustParse(t, "X...O....")

		plain, err := NewEngine(logger, false).Analyze(b, board.O, board.X)
		require.NoError(t, err)
		pruned, err := NewEngine(logger, true).Analyze(b, board.O, board.X)
		require.NoError(t, err)

		assert.Equal(t, plain.Move, pruned.Move)
		assert.Equal(t, plain.Scores, pruned.Scores)
		assert.LessOrEqual(t, pruned.Stats.Nodes, plain.Stats.Nodes)
	})

	t.Run("Not found on a full board", func(t *testing.T) {
		analysis, err := NewEngine(logger, true).Analyze(mustParse(t, "XOX/XOO/OXX"), board.X, board.O)

		require.NoError(t, err)
		assert.False(t, analysis.Found)
		assert.Empty(t, analysis.Scores)
	})

	t.Run("Error on identical or empty marks", func(t *testing.T) {
		engine := NewEngine(logger, true)

		_, err := engine.Analyze(board.New(), board.X, board.X)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)

		_, err = engine.Analyze(board.New(), board.Empty, board.O)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Error on marks outside X and O", func(t *testing.T) {
		engine := NewEngine(logger, true)

		assert.NotPanics(t, func() {
			_, err := engine.Analyze(board.New(), board.Mark(3), board.O)
			require.ErrorIs(t, err, apperror.ErrInvalidMark)

			_, err = engine.Analyze(board.New(), board.X, board.Mark(7))
			require.ErrorIs(t, err, apperror.ErrInvalidMark)
		})
	})

	t.Run("Reports its variant", func(t *testing.T) {
		assert.True(t, NewEngine(logger, true).UseAlphaBeta())
		assert.False(t, NewEngine(logger, false).UseAlphaBeta())
	})
}
