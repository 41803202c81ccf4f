package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gameAction7 struct {
	Base1

	GameID   string        `gorm:"type:uuid;not null;index"`
	Game     *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`
	PlayerID string        `gorm:"type:uuid;not null;index"`
	Player   *gamePlayer4  `gorm:"constraint:OnDelete:CASCADE"`

	Type        string `gorm:"size:20;not null;check:type IN ('move','attack','cast_spell','use_item','skill_check','interact','rest','custom')"`
	Description string `gorm:"type:text"`
	Data        datatypes.JSON
	Result      datatypes.JSON

	Resolved    bool `gorm:"not null;default:false"`
	AIProcessed bool `gorm:"column:ai_processed;not null;default:false"`
}

func (gameAction7) TableName() string { return "game_actions" }

var migration0007 = &Migration{
	ID:   "0007",
	Name: "create_game_actions",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&gameAction7{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&gameAction7{})
	},
}
