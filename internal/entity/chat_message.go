package entity

import (
	"database/sql"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type ChatType string

var (
	ChatTypePlayer  = enum.New(ChatType("player"))
	ChatTypeDM      = enum.New(ChatType("dm"))
	ChatTypeSystem  = enum.New(ChatType("system"))
	ChatTypeAI      = enum.New(ChatType("ai"))
	ChatTypeWhisper = enum.New(ChatType("whisper"))
	ChatTypeOOC     = enum.New(ChatType("ooc"))
)

// ChatMessage is soft deleted through IsDeleted.
type ChatMessage struct {
	Base

	GameID string `gorm:"type:uuid"`
	UserID string `gorm:"type:uuid"`

	Content         string
	Type            ChatType
	IsPrivate       bool
	WhisperToUserID sql.NullString `gorm:"type:uuid"`
	IsDeleted       bool

	Metadata datatypes.JSONType[ChatMetadata]
}

type ChatMetadata struct {
	DiceRollID string   `json:"dice_roll_id,omitempty"`
	ActionID   string   `json:"action_id,omitempty"`
	Mentions   []string `json:"mentions,omitempty"`
	Edited     bool     `json:"edited,omitempty"`
}

func NewWhisper(gameID, fromUserID, toUserID, content string) *ChatMessage {
	return &ChatMessage{
		GameID:          gameID,
		UserID:          fromUserID,
		Content:         content,
		Type:            ChatTypeWhisper,
		IsPrivate:       true,
		WhisperToUserID: sql.NullString{String: toUserID, Valid: true},
	}
}
