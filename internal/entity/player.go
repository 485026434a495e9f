package entity

import "github.com/rocketscienceinc/tictactoe-solver/internal/board"

const botPlayerID = "bot"

type Player struct {
	ID     string     `json:"id"`
	Mark   board.Mark `json:"mark,omitempty"`
	GameID string     `json:"game_id,omitempty"`
	Bot    bool       `json:"bot,omitempty"`
}

func NewBotPlayer(gameID string, mark board.Mark) *Player {
	return &Player{
		ID:     botPlayerID,
		Mark:   mark,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
