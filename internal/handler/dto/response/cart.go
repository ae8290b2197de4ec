package response

import (
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"
)

type CartResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	SupermarketID string             `json:"supermarket_id"`
	Status        string             `json:"status"`
	Lines         []CartLineResponse `json:"lines"`
	Total         Money              `json:"total"`
	WalletBalance Money              `json:"wallet_balance"`
}

type CartLineResponse struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photo_url"`
	Quantity   int    `json:"quantity"`
	PriceCents Money  `json:"price"`
	Amount     Money  `json:"amount"`
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	res, err := fromView[CartResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Lines == nil {
		res.Lines = []CartLineResponse{}
	}
	return res, nil
}

type CreateCartResponse struct {
	CartID string `json:"cart_id"`
	Reused bool   `json:"reused"`
}

func FromCreateCartResult(r *commands.CreateCartResult) *CreateCartResponse {
	return &CreateCartResponse{CartID: r.CartID.String(), Reused: r.Reused}
}

type EmptyCartResponse struct {
	AlreadyEmpty bool `json:"already_empty"`
}

type CheckoutResponse struct {
	Immediate    bool    `json:"immediate"`
	OrderID      string  `json:"order_id"`
	OrderStatus  string  `json:"order_status"`
	SharedCartID *string `json:"shared_cart_id,omitempty"`
	ScheduledAt  *int64  `json:"scheduled_at,omitempty"`
	Charged      Money   `json:"charged"`
}

func FromSubmitDeliveryResult(r *commands.SubmitDeliveryResult) *CheckoutResponse {
	res := &CheckoutResponse{
		Immediate:   r.Immediate,
		OrderID:     r.OrderID.String(),
		OrderStatus: r.OrderStatus,
		Charged:     NewMoney(r.Charged),
	}
	if r.SharedCartID != nil {
		id := r.SharedCartID.String()
		res.SharedCartID = &id
	}
	if r.ScheduledAt != nil {
		at := r.ScheduledAt.Unix()
		res.ScheduledAt = &at
	}
	return res
}
