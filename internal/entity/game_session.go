package entity

import (
	"database/sql"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type GameStatus string

var (
	GameStatusWaiting   = enum.New(GameStatus("waiting"))
	GameStatusActive    = enum.New(GameStatus("active"))
	GameStatusPaused    = enum.New(GameStatus("paused"))
	GameStatusCompleted = enum.New(GameStatus("completed"))
)

type GameSession struct {
	Base

	Name        string
	Description string
	DMUserID    sql.NullString `gorm:"column:dm_user_id;type:uuid"`
	Status      GameStatus
	MaxPlayers  int

	Settings  datatypes.JSONType[GameSettings]
	GameState datatypes.JSONType[GameState]

	CurrentMapID sql.NullString `gorm:"type:uuid"`
}

type GameSettings struct {
	AllowSpectators    bool `json:"allow_spectators"`
	AIDungeonMaster    bool `json:"ai_dungeon_master"`
	TurnTimeoutSeconds int  `json:"turn_timeout_seconds"`
	PublicRolls        bool `json:"public_rolls"`
}

type GameState struct {
	Phase          string   `json:"phase"`
	Round          int      `json:"round"`
	Turn           int      `json:"turn"`
	ActivePlayerID string   `json:"active_player_id,omitempty"`
	Initiative     []string `json:"initiative,omitempty"`
}

// CanTransition lists the status moves the application allows. The store
// itself accepts any move.
func (s GameStatus) CanTransition(to GameStatus) bool {
	switch s {
	case GameStatusWaiting:
		return to == GameStatusActive || to == GameStatusCompleted
	case GameStatusActive:
		return to == GameStatusPaused || to == GameStatusCompleted
	case GameStatusPaused:
		return to == GameStatusActive || to == GameStatusCompleted
	}

	return false
}
