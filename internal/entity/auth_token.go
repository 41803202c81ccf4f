package entity

import (
	"time"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
)

type AuthTokenType string

var (
	AuthTokenTypeAccess        = enum.New(AuthTokenType("access"))
	AuthTokenTypeRefresh       = enum.New(AuthTokenType("refresh"))
	AuthTokenTypeResetPassword = enum.New(AuthTokenType("reset_password"))
	AuthTokenTypeVerifyEmail   = enum.New(AuthTokenType("verify_email"))
)

type AuthToken struct {
	Base

	UserID    string `gorm:"type:uuid"`
	Token     string
	Type      AuthTokenType
	ExpiresAt time.Time
	IsRevoked bool
}

func (t *AuthToken) Usable(now time.Time) bool {
	return !t.IsRevoked && now.Before(t.ExpiresAt)
}
