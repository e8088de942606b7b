package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal represents the database model for creator payouts
type Withdrawal struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	CreatorID        uint64          `gorm:"not null;index"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PhoneNumber      string          `gorm:"not null;size:20"`
	Status           string          `gorm:"not null;size:20"`
	GatewayReceipt   *string         `gorm:"size:64"`
	GatewayRequestID *string         `gorm:"size:128"`
	FailureReason    *string         `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"not null"`
	CompletedAt      *time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}
