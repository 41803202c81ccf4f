package entity

import (
	"time"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type UserRole string

var (
	UserRolePlayer = enum.New(UserRole("player"))
	UserRoleDM     = enum.New(UserRole("dm"))
	UserRoleAdmin  = enum.New(UserRole("admin"))
)

type User struct {
	Base

	Email        string `gorm:"uniqueIndex"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	FirstName    string
	LastName     string
	AvatarURL    string
	Role         UserRole
	IsActive     bool
	LastLogin    *time.Time

	Preferences datatypes.JSONType[UserPreferences]
	Stats       datatypes.JSONType[UserStats]
}

// UserPreferences is the shape of users.preferences.
type UserPreferences struct {
	Theme          string `json:"theme"`
	Notifications  bool   `json:"notifications"`
	SoundEnabled   bool   `json:"sound_enabled"`
	DiceAnimations bool   `json:"dice_animations"`
}

// UserStats is the shape of users.stats.
type UserStats struct {
	GamesPlayed       int     `json:"games_played"`
	CharactersCreated int     `json:"characters_created"`
	DiceRolled        int     `json:"dice_rolled"`
	CriticalHits      int     `json:"critical_hits"`
	HoursPlayed       float64 `json:"hours_played"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Theme:          "dark",
		Notifications:  true,
		SoundEnabled:   true,
		DiceAnimations: true,
	}
}

func NewUser(email, username, passwordHash string) *User {
	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         UserRolePlayer,
		IsActive:     true,
		Preferences:  datatypes.NewJSONType(DefaultUserPreferences()),
		Stats:        datatypes.NewJSONType(UserStats{}),
	}
}
