// Package benchmark times the two search variants against each other.
package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

var ErrInvalidRounds = errors.New("rounds must be positive")

// Result is the average cost of one variant.
type Result struct {
	AlphaBeta   bool          `json:"alpha_beta"`
	AvgDuration time.Duration `json:"avg_duration"`
	AvgNodes    int           `json:"avg_nodes"`
	Move        int           `json:"move"`
}

type Report struct {
	Rounds    int    `json:"rounds"`
	Minimax   Result `json:"minimax"`
	AlphaBeta Result `json:"alpha_beta"`
}

// Speedup is how many times faster alpha-beta ran on average.
func (that Report) Speedup() float64 {
	if that.AlphaBeta.AvgDuration <= 0 {
		return 0
	}

	return float64(that.Minimax.AvgDuration) / float64(that.AlphaBeta.AvgDuration)
}

// Compare - asks both variants for X's opening move on an empty board,
// rounds times each.
func Compare(logger *slog.Logger, rounds int) (Report, error) {
	if rounds <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	log := logger.With("component", "benchmark")

	plain := search.NewEngine(logger, false)
	pruned := search.NewEngine(logger, true)

	var plainTotal, prunedTotal time.Duration
	var plainNodes, prunedNodes int
	var plainMove, prunedMove int

	for i := 0; i < rounds; i++ {
		log.Info("running round", "round", i+1, "rounds", rounds)

		analysis, err := plain.Analyze(board.New(), board.X, board.O)
		if err != nil {
			return Report{}, fmt.Errorf("minimax round %d: %w", i+1, err)
		}
		plainTotal += analysis.Elapsed
		plainNodes += analysis.Stats.Nodes
		plainMove = analysis.Move

		analysis, err = pruned.Analyze(board.New(), board.X, board.O)
		if err != nil {
			return Report{}, fmt.Errorf("alpha-beta round %d: %w", i+1, err)
		}
		prunedTotal += analysis.Elapsed
		prunedNodes += analysis.Stats.Nodes
		prunedMove = analysis.Move
	}

	report := Report{
		Rounds: rounds,
		Minimax: Result{
			AvgDuration: plainTotal / time.Duration(rounds),
			AvgNodes:    plainNodes / rounds,
			Move:        plainMove,
		},
		AlphaBeta: Result{
			AlphaBeta:   true,
			AvgDuration: prunedTotal / time.Duration(rounds),
			AvgNodes:    prunedNodes / rounds,
			Move:        prunedMove,
		},
	}

	log.Info("performance comparison",
		"minimaxAvg", report.Minimax.AvgDuration,
		"minimaxNodes", report.Minimax.AvgNodes,
		"alphaBetaAvg", report.AlphaBeta.AvgDuration,
		"alphaBetaNodes", report.AlphaBeta.AvgNodes,
		"speedup", report.Speedup(),
	)

	return report, nil
}
