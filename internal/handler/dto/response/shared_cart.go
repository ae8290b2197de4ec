package response

import (
	"grocery-pool/internal/usecase/queries"
)

type SharedCartResponse struct {
	ID                  string                   `json:"id"`
	SupermarketID       string                   `json:"supermarket_id"`
	AddressID           string                   `json:"address_id"`
	OrderSlotID         string                   `json:"order_slot_id"`
	Status              string                   `json:"status"`
	SettlementProcessed bool                     `json:"settlement_processed"`
	Contributors        []ContributorResponse    `json:"contributors"`
	Lines               []SharedCartLineResponse `json:"lines"`
	Total               Money                    `json:"total"`
	Settlements         []SettlementJobResponse  `json:"settlements"`
}

type ContributorResponse struct {
	UserID       string `json:"user_id"`
	Contribution Money  `json:"delivery_fee_contribution"`
	Charged      Money  `json:"charged"`
	JoinedAt     int64  `json:"joined_at"`
}

type SharedCartLineResponse struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents Money  `json:"price"`
	Amount     Money  `json:"amount"`
}

type SettlementJobResponse struct {
	ID        string  `json:"id"`
	RunAt     int64   `json:"run_at"`
	Status    string  `json:"status"`
	Attempts  int     `json:"attempts"`
	LastError *string `json:"last_error,omitempty"`
}

func FromSharedCartView(v *queries.SharedCartView) (*SharedCartResponse, error) {
	return fromView[SharedCartResponse](v)
}
