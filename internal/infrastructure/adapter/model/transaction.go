package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for tip payments
type Transaction struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	CreatorID        uint64          `gorm:"not null;index:idx_transactions_creator_created,priority:1"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           string          `gorm:"not null;size:20;index"`
	GatewayReceipt   *string         `gorm:"size:64"`
	GatewayRequestID *string         `gorm:"size:128"`
	PayerPhone       string          `gorm:"not null;size:20"`
	PayerName        string          `gorm:"not null;size:50"`
	Message          string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"not null;index:idx_transactions_creator_created,priority:2"`
	UpdatedAt        time.Time       `gorm:"not null"`
	Withdrawn        bool            `gorm:"not null;default:false"`
	WithdrawalID     *uint64

	// Define relationships
	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
