package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// current_map_id has no constraint yet: maps does not exist at this point.
// 0006 adds it.
type gameSession3 struct {
	Base1

	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"type:text"`
	DMUserID    *string `gorm:"column:dm_user_id;type:uuid;index"`
	DM          *user1  `gorm:"foreignKey:DMUserID;constraint:OnDelete:SET NULL"`
	Status      string  `gorm:"size:20;not null;default:waiting;check:status IN ('waiting','active','paused','completed')"`
	MaxPlayers  int     `gorm:"not null;default:6"`

	Settings  datatypes.JSON
	GameState datatypes.JSON

	CurrentMapID *string `gorm:"type:uuid"`
}

func (gameSession3) TableName() string { return "game_sessions" }

var migration0003 = &Migration{
	ID:   "0003",
	Name: "create_game_sessions",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&gameSession3{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&gameSession3{})
	},
}
