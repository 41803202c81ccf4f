package entity

import (
	"database/sql"
	"time"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
)

type GamePlayerRole string

var (
	GamePlayerRolePlayer   = enum.New(GamePlayerRole("player"))
	GamePlayerRoleCoDM     = enum.New(GamePlayerRole("co_dm"))
	GamePlayerRoleObserver = enum.New(GamePlayerRole("observer"))
)

// GamePlayer seats a user in a game. Observers may sit without a character.
type GamePlayer struct {
	Base

	GameID      string         `gorm:"type:uuid"`
	UserID      string         `gorm:"type:uuid"`
	CharacterID sql.NullString `gorm:"type:uuid"`

	Role     GamePlayerRole
	IsOnline bool
	JoinedAt time.Time
}
