package migration

import (
	"time"

	"gorm.io/gorm"
)

// Tokens are indexed but not unique.
type authToken11 struct {
	Base1

	UserID string `gorm:"type:uuid;not null;index"`
	User   *user1 `gorm:"constraint:OnDelete:CASCADE"`

	Token     string    `gorm:"size:500;not null;index"`
	Type      string    `gorm:"size:20;not null;check:type IN ('access','refresh','reset_password','verify_email')"`
	ExpiresAt time.Time `gorm:"not null"`
	IsRevoked bool      `gorm:"not null;default:false"`
}

func (authToken11) TableName() string { return "auth_tokens" }

var migration0011 = &Migration{
	ID:   "0011",
	Name: "create_auth_tokens",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&authToken11{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&authToken11{})
	},
}
