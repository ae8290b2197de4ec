package response

import (
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"
)

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	SupermarketID   string              `json:"supermarket_id"`
	SupermarketName string              `json:"supermarket_name"`
	AddressID       string              `json:"address_id"`
	BuildingName    string              `json:"building_name"`
	SlotLabel       string              `json:"slot_label"`
	DeliveryFee     Money               `json:"delivery_fee"`
	Total           Money               `json:"total"`
	Status          string              `json:"status"`
	CartID          *string             `json:"cart_id,omitempty"`
	SharedCartID    *string             `json:"shared_cart_id,omitempty"`
	Lines           []OrderLineResponse `json:"lines"`
	CreatedAt       int64               `json:"created_at"`
	UpdatedAt       int64               `json:"updated_at"`
}

type OrderLineResponse struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photo_url"`
	Quantity   int    `json:"quantity"`
	PriceCents Money  `json:"price"`
	Amount     Money  `json:"amount"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res, err := fromView[OrderResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Lines == nil {
		res.Lines = []OrderLineResponse{}
	}
	return res, nil
}

type OrderListItemResponse struct {
	ID              string `json:"id"`
	SupermarketID   string `json:"supermarket_id"`
	SupermarketName string `json:"supermarket_name"`
	SlotLabel       string `json:"slot_label"`
	Total           Money  `json:"total"`
	Status          string `json:"status"`
	Shared          bool   `json:"shared"`
	CreatedAt       int64  `json:"created_at"`
}

func FromOrderList(items []queries.OrderListItem) ([]OrderListItemResponse, error) {
	res := make([]OrderListItemResponse, 0, len(items))
	if len(items) == 0 {
		return res, nil
	}
	if err := copierCopy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type CancelOrderResponse struct {
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Refunded Money  `json:"refunded"`
}

func FromCancelOrderResult(r *commands.CancelOrderResult) *CancelOrderResponse {
	return &CancelOrderResponse{
		OrderID:  r.OrderID.String(),
		Status:   r.Status,
		Refunded: NewMoney(r.Refunded),
	}
}
