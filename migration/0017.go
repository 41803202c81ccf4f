package migration

import (
	"time"

	"gorm.io/gorm"
)

type chatMessage17 struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	GameID    string    `gorm:"type:uuid;index:idx_chat_messages_game_created,priority:1"`
	CreatedAt time.Time `gorm:"index:idx_chat_messages_game_created,priority:2"`
}

func (chatMessage17) TableName() string { return "chat_messages" }

const chatTimelineIndex17 = "idx_chat_messages_game_created"

var migration0017 = &Migration{
	ID:   "0017",
	Name: "add_chat_messages_timeline_index",
	Kind: KindAddIndex,
	Up: func(tx *gorm.DB) error {
		return tx.Migrator().CreateIndex(&chatMessage17{}, chatTimelineIndex17)
	},
	Down: func(tx *gorm.DB) error {
		return tx.Migrator().DropIndex(&chatMessage17{}, chatTimelineIndex17)
	},
}
