package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gameEvent8 struct {
	Base1

	GameID string        `gorm:"type:uuid;not null;index"`
	Game   *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`

	Type            string `gorm:"size:30;not null;check:type IN ('combat_start','combat_end','level_up','item_found','npc_interaction','quest_update','player_joined','player_left')"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	Data            datatypes.JSON
	PlayersInvolved datatypes.JSON

	IsPublic         bool `gorm:"not null;default:true"`
	VisibleToPlayers bool `gorm:"not null;default:true"`
}

func (gameEvent8) TableName() string { return "game_events" }

var migration0008 = &Migration{
	ID:   "0008",
	Name: "create_game_events",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&gameEvent8{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&gameEvent8{})
	},
}
