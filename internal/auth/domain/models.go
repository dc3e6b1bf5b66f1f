package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Usuario struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash string       `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Usuario) TableName() string { return "usuarios" }
