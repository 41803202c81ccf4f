package entity

import (
	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type GameEventType string

var (
	GameEventTypeCombatStart    = enum.New(GameEventType("combat_start"))
	GameEventTypeCombatEnd      = enum.New(GameEventType("combat_end"))
	GameEventTypeLevelUp        = enum.New(GameEventType("level_up"))
	GameEventTypeItemFound      = enum.New(GameEventType("item_found"))
	GameEventTypeNPCInteraction = enum.New(GameEventType("npc_interaction"))
	GameEventTypeQuestUpdate    = enum.New(GameEventType("quest_update"))
	GameEventTypePlayerJoined   = enum.New(GameEventType("player_joined"))
	GameEventTypePlayerLeft     = enum.New(GameEventType("player_left"))
)

type GameEvent struct {
	Base

	GameID string `gorm:"type:uuid"`

	Type            GameEventType
	Title           string
	Description     string
	Data            datatypes.JSONMap
	PlayersInvolved datatypes.JSONSlice[string]

	IsPublic bool
	// VisibleToPlayers only matters when IsPublic is false.
	VisibleToPlayers bool
}

// VisibleTo reports whether playerID may see the event.
func (e *GameEvent) VisibleTo(playerID string) bool {
	if e.IsPublic {
		return true
	}

	if !e.VisibleToPlayers {
		return false
	}

	for _, id := range e.PlayersInvolved {
		if id == playerID {
			return true
		}
	}

	return false
}
