package response

import (
	"grocery-pool/internal/usecase/queries"
)

type OrderSlotResponse struct {
	ID            string `json:"id"`
	SupermarketID string `json:"supermarket_id"`
	Label         string `json:"label"`
}

func FromOrderSlots(slots []queries.OrderSlotView) []OrderSlotResponse {
	res := make([]OrderSlotResponse, len(slots))
	for i, s := range slots {
		res[i] = OrderSlotResponse{
			ID:            s.ID.String(),
			SupermarketID: s.SupermarketID.String(),
			Label:         s.Label,
		}
	}
	return res
}
