package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Both variants pick the same opening", func(t *testing.T) {
		// When: running a single round
		report, err := Compare(logger, 1)

		// Then: the moves agree and pruning visits fewer nodes
		require.NoError(t, err)
		assert.Equal(t, 1, report.Rounds)
		assert.Equal(t, 0, report.Minimax.Move)
		assert.Equal(t, report.Minimax.Move, report.AlphaBeta.Move)
		assert.Less(t, report.AlphaBeta.AvgNodes, report.Minimax.AvgNodes)
		assert.True(t, report.AlphaBeta.AlphaBeta)
		assert.False(t, report.Minimax.AlphaBeta)
	})

	t.Run("Error on non-positive rounds", func(t *testing.T) {
		_, err := Compare(logger, 0)

		require.ErrorIs(t, err, ErrInvalidRounds)
	})
}

func TestReport_Speedup(t *testing.T) {
	report := Report{
		Minimax:   Result{AvgDuration: 300},
		AlphaBeta: Result{AvgDuration: 100},
	}

	assert.InDelta(t, 3.0, report.Speedup(), 1e-9)
	assert.Zero(t, Report{}.Speedup())
}
