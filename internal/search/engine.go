package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

// Analysis is the result of one Engine.Analyze call.
type Analysis struct {
	Move    int           `json:"move"`
	Found   bool          `json:"found"`
	Score   int           `json:"score"`
	Scores  []MoveScore   `json:"scores"`
	Stats   Stats         `json:"stats"`
	Elapsed time.Duration `json:"elapsed"`
}

// Engine runs BestMove with a fixed search variant and records diagnostics.
type Engine struct {
	logger       *slog.Logger
	useAlphaBeta bool
}

func NewEngine(logger *slog.Logger, useAlphaBeta bool) *Engine {
	return &Engine{
		logger:       logger.With("component", "search"),
		useAlphaBeta: useAlphaBeta,
	}
}

func (that *Engine) UseAlphaBeta() bool {
	return that.useAlphaBeta
}

// Analyze - picks the best move for player on b.
func (that *Engine) Analyze(b board.Board, player, opponent board.Mark) (Analysis, error) {
	if !isPlayerMark(player) || !isPlayerMark(opponent) || player == opponent {
		return Analysis{}, fmt.Errorf("%w: player %q, opponent %q", apperror.ErrInvalidMark, player, opponent)
	}

	start := time.Now()

	var stats Stats
	scores := scoreMoves(b, player, opponent, that.useAlphaBeta, &stats)
	move, score, found := pick(scores)

	analysis := Analysis{
		Move:    move,
		Found:   found,
		Score:   score,
		Scores:  scores,
		Stats:   stats,
		Elapsed: time.Since(start),
	}

	that.logger.Debug("position analyzed",
		"alphaBeta", that.useAlphaBeta,
		"player", player.String(),
		"move", move,
		"found", found,
		"score", score,
		"nodes", stats.Nodes,
		"elapsed", analysis.Elapsed,
	)

	return analysis, nil
}

func isPlayerMark(mark board.Mark) bool {
	return mark == board.X || mark == board.O
}
