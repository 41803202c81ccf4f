package entity

type DirectMessage struct {
	Base

	SenderID   string `gorm:"type:uuid"`
	ReceiverID string `gorm:"type:uuid"`
	Content    string
	IsRead     bool
}
