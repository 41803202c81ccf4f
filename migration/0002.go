package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type character2 struct {
	Base1

	UserID string `gorm:"type:uuid;not null;index"`
	User   *user1 `gorm:"constraint:OnDelete:CASCADE"`

	Name       string `gorm:"size:100;not null"`
	Class      string `gorm:"size:20;not null;check:class IN ('barbarian','bard','cleric','druid','fighter','monk','paladin','ranger','rogue','sorcerer','warlock','wizard')"`
	Race       string `gorm:"size:20;not null;check:race IN ('human','elf','dwarf','halfling','dragonborn','gnome','half-elf','half-orc','tiefling')"`
	Level      int    `gorm:"not null;default:1"`
	Experience int    `gorm:"not null;default:0"`
	Background string `gorm:"size:100"`

	HitPoints          int `gorm:"not null"`
	MaxHitPoints       int `gorm:"not null"`
	TemporaryHitPoints int `gorm:"not null;default:0"`
	ArmorClass         int `gorm:"not null;default:10"`

	Strength     int `gorm:"not null;default:10"`
	Dexterity    int `gorm:"not null;default:10"`
	Constitution int `gorm:"not null;default:10"`
	Intelligence int `gorm:"not null;default:10"`
	Wisdom       int `gorm:"not null;default:10"`
	Charisma     int `gorm:"not null;default:10"`

	Skills    datatypes.JSON
	Inventory datatypes.JSON
	Spells    datatypes.JSON

	IsActive bool `gorm:"not null;default:true"`
}

func (character2) TableName() string { return "characters" }

var migration0002 = &Migration{
	ID:   "0002",
	Name: "create_characters",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&character2{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&character2{})
	},
}
