package dto

import "github.com/amirhossein-jamali/tip-processor/internal/domain/entity"

// BalanceResponse represents the API response for a creator's balance
type BalanceResponse struct {
	CreatorID uint64 `json:"creator_id"`
	Available string `json:"available"`
	Pending   string `json:"pending"`
}

// NewBalanceResponse formats both figures with two decimals
func NewBalanceResponse(b *entity.Balance) BalanceResponse {
	return BalanceResponse{
		CreatorID: b.CreatorID,
		Available: entity.FormatAmount(b.Available),
		Pending:   entity.FormatAmount(b.Pending),
	}
}
