package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:50"`
	Email        string    `gorm:"uniqueIndex;size:250"`
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPair is what a successful login/refresh hands back to the
// transport layer. TTLs are relative so the caller can set cookie
// lifetimes without re-parsing the tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	UserID       uuid.UUID
}
