package migration

import (
	"gorm.io/gorm"
)

type directMessage15 struct {
	Base1

	SenderID   string `gorm:"type:uuid;not null;index"`
	Sender     *user1 `gorm:"constraint:OnDelete:CASCADE"`
	ReceiverID string `gorm:"type:uuid;not null;index"`
	Receiver   *user1 `gorm:"constraint:OnDelete:CASCADE"`
	Content    string `gorm:"type:text;not null"`
	IsRead     bool   `gorm:"not null;default:false"`
}

func (directMessage15) TableName() string { return "direct_messages" }

var migration0015 = &Migration{
	ID:   "0015",
	Name: "create_direct_messages",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&directMessage15{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&directMessage15{})
	},
}
