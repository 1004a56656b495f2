package model

import (
	"time"
)

type User struct {
	ID             uint64 `gorm:"primaryKey"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password       string `gorm:"type:varchar(255);not null"`
	EmailConfirmed bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string {
	return "users"
}
