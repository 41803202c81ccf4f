package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type diceRoll9 struct {
	Base1

	GameID   string        `gorm:"type:uuid;not null;index"`
	Game     *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`
	PlayerID string        `gorm:"type:uuid;not null;index"`
	Player   *gamePlayer4  `gorm:"constraint:OnDelete:CASCADE"`

	DiceType     string `gorm:"size:10;not null"`
	DiceCount    int    `gorm:"not null;default:1"`
	Rolls        datatypes.JSON
	Modifier     int    `gorm:"not null;default:0"`
	Result       int    `gorm:"not null"`
	Purpose      string `gorm:"size:100"`
	Advantage    bool   `gorm:"not null;default:false"`
	Disadvantage bool   `gorm:"not null;default:false"`
	IsCritical   bool   `gorm:"not null;default:false"`

	RelatedActionID *string      `gorm:"type:uuid;index"`
	RelatedAction   *gameAction7 `gorm:"constraint:OnDelete:SET NULL"`
}

func (diceRoll9) TableName() string { return "dice_rolls" }

var migration0009 = &Migration{
	ID:   "0009",
	Name: "create_dice_rolls",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&diceRoll9{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&diceRoll9{})
	},
}
