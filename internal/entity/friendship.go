package entity

import "github.com/SW1MD/dnd-proj-sub001/pkg/enum"

type FriendshipStatus string

var (
	FriendshipStatusPending  = enum.New(FriendshipStatus("pending"))
	FriendshipStatusAccepted = enum.New(FriendshipStatus("accepted"))
	FriendshipStatusBlocked  = enum.New(FriendshipStatus("blocked"))
)

// Friendship is directional. (A, B) and (B, A) are different rows.
type Friendship struct {
	Base

	RequesterID string `gorm:"type:uuid"`
	ReceiverID  string `gorm:"type:uuid"`
	Status      FriendshipStatus
}
