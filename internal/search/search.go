// Package search solves 3x3 positions by exhaustive game-tree search.
//
// Scores are from the point of view of the player passed to each call:
// Win (1) when player has a line, Loss (-1) when opponent has one, Draw (0)
// on a full board. The maximizing flag alone tracks whose turn it is.
package search

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

const (
	Loss = -1
	Draw = 0
	Win  = 1

	// NegInf and PosInf are the initial alpha and beta of a root call.
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Stats counts the work of one top-level search.
type Stats struct {
	Nodes    int `json:"nodes"`
	MaxDepth int `json:"max_depth"`
}

func (that *Stats) visit(depth int) {
	if that == nil {
		return
	}

	that.Nodes++
	that.MaxDepth = max(that.MaxDepth, depth)
}

// MoveScore is the value of playing Move at the root.
type MoveScore struct {
	Move  int `json:"move"`
	Score int `json:"score"`
}

// Minimax - plain exhaustive minimax without pruning.
func Minimax(b board.Board, maximizing bool, player, opponent board.Mark) int {
	return minimax(b, 0, maximizing, player, opponent, nil)
}

// MinimaxAB - minimax with alpha-beta pruning. It returns the same score as
// Minimax for every input; depth only feeds diagnostics.
func MinimaxAB(b board.Board, depth, alpha, beta int, maximizing bool, player, opponent board.Mark) int {
	return minimaxAB(b, depth, alpha, beta, maximizing, player, opponent, nil)
}

// BestMove - returns the highest scoring move for player, scanning moves in
// ascending order and keeping the earliest on ties. The bool is false only
// when no move is available.
func BestMove(b board.Board, player, opponent board.Mark, useAlphaBeta bool) (int, bool) {
	move, _, ok := pick(ScoreMoves(b, player, opponent, useAlphaBeta))
	return move, ok
}

// ScoreMoves - scores every available move for player, opponent replying next.
func ScoreMoves(b board.Board, player, opponent board.Mark, useAlphaBeta bool) []MoveScore {
	return scoreMoves(b, player, opponent, useAlphaBeta, nil)
}

func scoreMoves(b board.Board, player, opponent board.Mark, useAlphaBeta bool, stats *Stats) []MoveScore {
	moves := b.AvailableMoves()
	scores := make([]MoveScore, 0, len(moves))

	for _, move := range moves {
		child := mustApply(b, move, player)

		var score int
		if useAlphaBeta {
			score = minimaxAB(child, 1, NegInf, PosInf, false, player, opponent, stats)
		} else {
			score = minimax(child, 1, false, player, opponent, stats)
		}

		scores = append(scores, MoveScore{Move: move, Score: score})
	}

	return scores
}

// pick keeps the first strictly better score.
func pick(scores []MoveScore) (int, int, bool) {
	bestScore := NegInf
	bestMove := -1

	for _, s := range scores {
		if s.Score > bestScore {
			bestScore = s.Score
			bestMove = s.Move
		}
	}

	if bestMove < 0 {
		return 0, 0, false
	}

	return bestMove, bestScore, true
}

func terminalScore(b board.Board, player, opponent board.Mark) (int, bool) {
	if winner, ok := b.Winner(); ok {
		switch winner {
		case player:
			return Win, true
		case opponent:
			return Loss, true
		}
	}

	if b.IsFull() {
		return Draw, true
	}

	return 0, false
}

func minimax(b board.Board, depth int, maximizing bool, player, opponent board.Mark, stats *Stats) int {
	stats.visit(depth)

	if score, ok := terminalScore(b, player, opponent); ok {
		return score
	}

	if maximizing {
		best := NegInf
		for _, move := range b.AvailableMoves() {
			score := minimax(mustApply(b, move, player), depth+1, false, player, opponent, stats)
			best = max(best, score)
		}
		return best
	}

	best := PosInf
	for _, move := range b.AvailableMoves() {
		score := minimax(mustApply(b, move, opponent), depth+1, true, player, opponent, stats)
		best = min(best, score)
	}
	return best
}

func minimaxAB(b board.Board, depth, alpha, beta int, maximizing bool, player, opponent board.Mark, stats *Stats) int {
	stats.visit(depth)

	if score, ok := terminalScore(b, player, opponent); ok {
		return score
	}

	if maximizing {
		maxEval := NegInf
		for _, move := range b.AvailableMoves() {
			eval := minimaxAB(mustApply(b, move, player), depth+1, alpha, beta, false, player, opponent, stats)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := PosInf
	for _, move := range b.AvailableMoves() {
		eval := minimaxAB(mustApply(b, move, opponent), depth+1, alpha, beta, true, player, opponent, stats)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}

// mustApply plays a move taken from AvailableMoves, so it can only fail when
// the caller passed an Empty mark.
func mustApply(b board.Board, move int, mark board.Mark) board.Board {
	child, err := b.Apply(move, mark)
	if err != nil {
		panic(fmt.Errorf("search: %w", err))
	}

	return child
}
