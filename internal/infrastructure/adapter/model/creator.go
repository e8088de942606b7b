package model

import (
	"time"
)

// Creator represents the database model for tip recipients
type Creator struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"not null;size:100"`
	PhoneNumber string    `gorm:"not null;size:20"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Creator
func (Creator) TableName() string {
	return "creators"
}
