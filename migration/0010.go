package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type chatMessage10 struct {
	Base1

	GameID string        `gorm:"type:uuid;not null;index"`
	Game   *gameSession3 `gorm:"constraint:OnDelete:CASCADE"`
	UserID string        `gorm:"type:uuid;not null;index"`
	User   *user1        `gorm:"constraint:OnDelete:CASCADE"`

	Content         string  `gorm:"type:text;not null"`
	Type            string  `gorm:"size:20;not null;default:player;check:type IN ('player','dm','system','ai','whisper','ooc')"`
	IsPrivate       bool    `gorm:"not null;default:false"`
	WhisperToUserID *string `gorm:"type:uuid"`
	WhisperToUser   *user1  `gorm:"foreignKey:WhisperToUserID;constraint:OnDelete:SET NULL"`
	IsDeleted       bool    `gorm:"not null;default:false"`

	Metadata datatypes.JSON
}

func (chatMessage10) TableName() string { return "chat_messages" }

var migration0010 = &Migration{
	ID:   "0010",
	Name: "create_chat_messages",
	Kind: KindCreateTable,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(&chatMessage10{})
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&chatMessage10{})
	},
}
