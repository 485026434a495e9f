package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

type gamePlayService interface {
	NewGameWithBot(ctx context.Context, playerID string, playerMark board.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (search.Analysis, error)
}

type Handlers interface {
	Ping(ctx echo.Context) error
	Solve(ctx echo.Context) error

	NewGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	Hint(ctx echo.Context) error
}

type handlers struct {
	logger *slog.Logger

	gamePlay  gamePlayService
	alphaBeta bool
}

// NewHandlers - alphaBeta picks the search variant when a solve request does not.
func NewHandlers(logger *slog.Logger, gamePlay gamePlayService, alphaBeta bool) Handlers {
	return &handlers{
		logger:    logger.With("component", "rest"),
		gamePlay:  gamePlay,
		alphaBeta: alphaBeta,
	}
}

type solveRequest struct {
	Board     board.Board `json:"board"`
	Player    board.Mark  `json:"player"`
	Opponent  board.Mark  `json:"opponent"`
	AlphaBeta *bool       `json:"alpha_beta"`
}

type solveResponse struct {
	Move      *int               `json:"move"`
	Score     int                `json:"score"`
	Scores    []search.MoveScore `json:"scores"`
	Nodes     int                `json:"nodes"`
	AlphaBeta bool               `json:"alpha_beta"`
}

type newGameRequest struct {
	PlayerID string `json:"player_id"`
	Mark     string `json:"mark"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// Solve - returns the best move for player on the posted board.
func (that *handlers) Solve(ctx echo.Context) error {
	var req solveRequest
	if err := ctx.Bind(&req); err != nil {
		return that.sendError(ctx, "Solve", err)
	}

	if req.Opponent == board.Empty {
		req.Opponent = req.Player.Opponent()
	}

	alphaBeta := that.alphaBeta
	if req.AlphaBeta != nil {
		alphaBeta = *req.AlphaBeta
	}

	analysis, err := search.NewEngine(that.logger, alphaBeta).Analyze(req.Board, req.Player, req.Opponent)
	if err != nil {
		return that.sendError(ctx, "Solve", err)
	}

	if !analysis.Found {
		return that.sendError(ctx, "Solve", apperror.ErrNoAvailableMoves)
	}

	return ctx.JSON(http.StatusOK, solveResponse{
		Move:      &analysis.Move,
		Score:     analysis.Score,
		Scores:    analysis.Scores,
		Nodes:     analysis.Stats.Nodes,
		AlphaBeta: alphaBeta,
	})
}

func (that *handlers) NewGame(ctx echo.Context) error {
	var req newGameRequest
	if err := ctx.Bind(&req); err != nil {
		return that.sendError(ctx, "NewGame", err)
	}

	mark, err := board.ParsePlayerMark(req.Mark)
	if err != nil {
		return that.sendError(ctx, "NewGame", err)
	}

	game, err := that.gamePlay.NewGameWithBot(ctx.Request().Context(), req.PlayerID, mark)
	if err != nil {
		return that.sendError(ctx, "NewGame", err)
	}

	return ctx.JSON(http.StatusCreated, game)
}

func (that *handlers) GetGame(ctx echo.Context) error {
	game, err := that.gamePlay.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *handlers) MakeTurn(ctx echo.Context) error {
	var req turnRequest
	if err := ctx.Bind(&req); err != nil {
		return that.sendError(ctx, "MakeTurn", err)
	}

	if req.Cell == nil {
		return that.sendError(ctx, "MakeTurn", apperror.ErrOutOfRange)
	}

	game, err := that.gamePlay.MakeTurn(ctx.Request().Context(), ctx.Param("id"), *req.Cell)
	if err != nil {
		return that.sendError(ctx, "MakeTurn", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *handlers) Hint(ctx echo.Context) error {
	analysis, err := that.gamePlay.Hint(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "Hint", err)
	}

	return ctx.JSON(http.StatusOK, analysis)
}

func (that *handlers) sendError(ctx echo.Context, method string, err error) error {
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidBoard):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusUnprocessableEntity
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}
