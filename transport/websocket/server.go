package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

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

type handlerFunc func(ctx context.Context, payload Payload) (Payload, error)

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlayService
	upgrader websocket.Upgrader

	srvMutex sync.Mutex
	srv      *http.Server

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gamePlay gamePlayService) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		gamePlay: gamePlay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		"game:new":  server.handleNewGame,
		"game:get":  server.handleGetGame,
		"game:turn": server.handleGameTurn,
		"game:hint": server.handleHint,
	}

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConn(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	that.srvMutex.Lock()
	if ctx.Err() != nil {
		that.srvMutex.Unlock()
		return nil
	}
	that.srv = srv
	that.srvMutex.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	that.srvMutex.Lock()
	srv := that.srv
	that.srvMutex.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) serveConn(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConn")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages until the client goes away.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = conn.WriteJSON(Message{Payload: Payload{Error: "invalid message"}}); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
			continue
		}

		if err = conn.WriteJSON(that.dispatch(ctx, &message)); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) Message {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return Message{Action: message.Action, Payload: Payload{Error: "unknown action"}}
	}

	payload, err := handler(ctx, message.Payload)
	if err != nil {
		that.logger.Warn("error processing message", "action", message.Action, "error", err)
		return Message{Action: message.Action, Payload: Payload{Error: err.Error()}}
	}

	return Message{Action: message.Action, Payload: payload}
}
