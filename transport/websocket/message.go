package websocket

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	PlayerID string           `json:"player_id,omitempty"`
	Mark     board.Mark       `json:"mark,omitempty"`
	GameID   string           `json:"game_id,omitempty"`
	Cell     *int             `json:"cell,omitempty"`
	Game     *entity.Game     `json:"game,omitempty"`
	Hint     *search.Analysis `json:"hint,omitempty"`
	Error    string           `json:"error,omitempty"`
}
