package migration

import (
	"time"

	"gorm.io/gorm"
)

type gameInvitation16 struct {
	Base1

	GameID    string        `gorm:"type:uuid;not null;uniqueIndex:idx_game_invitations_game_invitee"`
	Game      *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`
	InviterID string        `gorm:"type:uuid;not null;index"`
	Inviter   *user1        `gorm:"constraint:OnDelete:CASCADE"`
	InviteeID string        `gorm:"type:uuid;not null;uniqueIndex:idx_game_invitations_game_invitee;index"`
	Invitee   *user1        `gorm:"constraint:OnDelete:CASCADE"`

	Status    string `gorm:"size:20;not null;default:pending;check:status IN ('pending','accepted','declined','expired')"`
	Message   string `gorm:"type:text"`
	ExpiresAt *time.Time
}

func (gameInvitation16) TableName() string { return "game_invitations" }

var migration0016 = &Migration{
	ID:   "0016",
	Name: "create_game_invitations",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&gameInvitation16{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&gameInvitation16{})
	},
}
