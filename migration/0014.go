package migration

import (
	"gorm.io/gorm"
)

// The pair is ordered: (a, b) and (b, a) are two different rows.
type friendship14 struct {
	Base1

	RequesterID string `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;check:requester_id <> receiver_id"`
	Requester   *user1 `gorm:"constraint:OnDelete:CASCADE"`
	ReceiverID  string `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index"`
	Receiver    *user1 `gorm:"constraint:OnDelete:CASCADE"`
	Status      string `gorm:"size:20;not null;default:pending;check:status IN ('pending','accepted','blocked')"`
}

func (friendship14) TableName() string { return "friendships" }

var migration0014 = &Migration{
	ID:   "0014",
	Name: "create_friendships",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&friendship14{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&friendship14{})
	},
}
