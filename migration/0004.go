package migration

import (
	"time"

	"gorm.io/gorm"
)

type gamePlayer4 struct {
	Base1

	GameID      string        `gorm:"type:uuid;not null;uniqueIndex:idx_game_players_game_user"`
	Game        *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`
	UserID      string        `gorm:"type:uuid;not null;uniqueIndex:idx_game_players_game_user;index"`
	User        *user1        `gorm:"constraint:OnDelete:CASCADE"`
	CharacterID string        `gorm:"type:uuid;not null;index"`
	Character   *character2   `gorm:"constraint:OnDelete:CASCADE"`

	Role     string `gorm:"size:20;not null;default:player;check:role IN ('player','co_dm','observer')"`
	IsOnline bool   `gorm:"not null;default:false"`
	JoinedAt time.Time
}

func (gamePlayer4) TableName() string { return "game_players" }

var migration0004 = &Migration{
	ID:   "0004",
	Name: "create_game_players",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&gamePlayer4{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&gamePlayer4{})
	},
}
