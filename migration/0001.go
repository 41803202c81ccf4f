package migration

import (
	"time"

	"gorm.io/gorm"
)

type user1 struct {
	Base1

	Email        string `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Username     string `gorm:"size:50;not null;uniqueIndex:idx_users_username"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	AvatarURL    string `gorm:"size:500"`
	Role         string `gorm:"size:20;not null;default:player;check:role IN ('player','dm','admin')"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLogin    *time.Time
}

func (user1) TableName() string { return "users" }

var migration0001 = &Migration{
	ID:   "0001",
	Name: "create_users",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&user1{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&user1{})
	},
}
