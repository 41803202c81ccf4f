package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type map5 struct {
	Base1

	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"size:20;not null;check:type IN ('dungeon','cave','forest','town','castle','wilderness')"`
	Difficulty  string `gorm:"size:20;not null;default:medium;check:difficulty IN ('easy','medium','hard','deadly')"`
	Theme       string `gorm:"size:20;not null;default:classic;check:theme IN ('classic','dark','ice','fire','undead','celestial')"`
	Width       int    `gorm:"not null"`
	Height      int    `gorm:"not null"`

	Tiles            datatypes.JSON
	Rooms            datatypes.JSON
	NPCs             datatypes.JSON `gorm:"column:npcs"`
	StartingPosition datatypes.JSON

	CreatedBy *string `gorm:"type:uuid;index"`
	Creator   *user1  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	IsPublic  bool    `gorm:"not null;default:false"`
}

func (map5) TableName() string { return "maps" }

var migration0005 = &Migration{
	ID:   "0005",
	Name: "create_maps",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&map5{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&map5{})
	},
}
