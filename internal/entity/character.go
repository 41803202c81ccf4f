package entity

import (
	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type CharacterClass string

var (
	ClassBarbarian = enum.New(CharacterClass("barbarian"))
	ClassBard      = enum.New(CharacterClass("bard"))
	ClassCleric    = enum.New(CharacterClass("cleric"))
	ClassDruid     = enum.New(CharacterClass("druid"))
	ClassFighter   = enum.New(CharacterClass("fighter"))
	ClassMonk      = enum.New(CharacterClass("monk"))
	ClassPaladin   = enum.New(CharacterClass("paladin"))
	ClassRanger    = enum.New(CharacterClass("ranger"))
	ClassRogue     = enum.New(CharacterClass("rogue"))
	ClassSorcerer  = enum.New(CharacterClass("sorcerer"))
	ClassWarlock   = enum.New(CharacterClass("warlock"))
	ClassWizard    = enum.New(CharacterClass("wizard"))
)

type CharacterRace string

var (
	RaceHuman      = enum.New(CharacterRace("human"))
	RaceElf        = enum.New(CharacterRace("elf"))
	RaceDwarf      = enum.New(CharacterRace("dwarf"))
	RaceHalfling   = enum.New(CharacterRace("halfling"))
	RaceDragonborn = enum.New(CharacterRace("dragonborn"))
	RaceGnome      = enum.New(CharacterRace("gnome"))
	RaceHalfElf    = enum.New(CharacterRace("half-elf"))
	RaceHalfOrc    = enum.New(CharacterRace("half-orc"))
	RaceTiefling   = enum.New(CharacterRace("tiefling"))
)

type Character struct {
	Base

	UserID string `gorm:"type:uuid"`

	Name       string
	Class      CharacterClass
	Race       CharacterRace
	Level      int
	Experience int
	Background string

	// Hit points are expected to stay non-negative; the store does not check.
	HitPoints          int
	MaxHitPoints       int
	TemporaryHitPoints int
	ArmorClass         int

	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int

	Skills    datatypes.JSONType[CharacterSkills]
	Inventory datatypes.JSONSlice[InventoryItem]
	Spells    datatypes.JSONSlice[Spell]

	IsActive bool
}

// CharacterSkills maps a skill name to its bonus.
type CharacterSkills map[string]int

type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Equipped bool    `json:"equipped"`
}

type Spell struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	School   string `json:"school"`
	Prepared bool   `json:"prepared"`
}

// AbilityModifier is floor((score-10)/2).
func AbilityModifier(score int) int {
	if score >= 10 {
		return (score - 10) / 2
	}

	return (score - 11) / 2
}
