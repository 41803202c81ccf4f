package entity

import (
	"time"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
)

type InvitationStatus string

var (
	InvitationStatusPending  = enum.New(InvitationStatus("pending"))
	InvitationStatusAccepted = enum.New(InvitationStatus("accepted"))
	InvitationStatusDeclined = enum.New(InvitationStatus("declined"))
	InvitationStatusExpired  = enum.New(InvitationStatus("expired"))
)

type GameInvitation struct {
	Base

	GameID    string `gorm:"type:uuid"`
	InviterID string `gorm:"type:uuid"`
	InviteeID string `gorm:"type:uuid"`
	Status    InvitationStatus
	Message   string
	ExpiresAt *time.Time
}

func (i *GameInvitation) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}
