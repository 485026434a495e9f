package websocket

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrGameIDRequired = errors.New("game id is required")
	ErrCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, req Payload) (Payload, error) {
	game, err := that.gamePlay.NewGameWithBot(ctx, req.PlayerID, req.Mark)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return Payload{PlayerID: game.HumanPlayer().ID, Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, ErrGameIDRequired
	}

	game, err := that.gamePlay.GetGame(ctx, req.GameID)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to get game: %w", err)
	}

	return Payload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, ErrGameIDRequired
	}

	if req.Cell == nil {
		return Payload{}, ErrCellRequired
	}

	game, err := that.gamePlay.MakeTurn(ctx, req.GameID, *req.Cell)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to make turn: %w", err)
	}

	return Payload{Game: game}, nil
}

func (that *Server) handleHint(ctx context.Context, req Payload) (Payload, error) {
	if req.GameID == "" {
		return Payload{}, ErrGameIDRequired
	}

	analysis, err := that.gamePlay.Hint(ctx, req.GameID)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return Payload{GameID: req.GameID, Hint: &analysis}, nil
}
