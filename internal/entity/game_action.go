package entity

import (
	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type GameActionType string

var (
	GameActionTypeMove       = enum.New(GameActionType("move"))
	GameActionTypeAttack     = enum.New(GameActionType("attack"))
	GameActionTypeCastSpell  = enum.New(GameActionType("cast_spell"))
	GameActionTypeUseItem    = enum.New(GameActionType("use_item"))
	GameActionTypeSkillCheck = enum.New(GameActionType("skill_check"))
	GameActionTypeInteract   = enum.New(GameActionType("interact"))
	GameActionTypeRest       = enum.New(GameActionType("rest"))
	GameActionTypeCustom     = enum.New(GameActionType("custom"))
)

// GameAction is a player's declared action. Resolved and AIProcessed move
// independently of each other.
type GameAction struct {
	Base

	GameID   string `gorm:"type:uuid"`
	PlayerID string `gorm:"type:uuid"`

	Type        GameActionType
	Description string
	Data        datatypes.JSONMap
	Result      datatypes.JSONMap

	Resolved    bool
	AIProcessed bool `gorm:"column:ai_processed"`
}
