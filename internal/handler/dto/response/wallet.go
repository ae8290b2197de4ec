package response

import (
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"
)

type WalletResponse struct {
	UserID  string                `json:"user_id"`
	Balance Money                 `json:"balance"`
	Entries []LedgerEntryResponse `json:"entries"`
}

type LedgerEntryResponse struct {
	ID           string  `json:"id"`
	Amount       Money   `json:"amount"`
	Kind         string  `json:"kind"`
	OrderID      *string `json:"order_id,omitempty"`
	SharedCartID *string `json:"shared_cart_id,omitempty"`
	Note         string  `json:"note"`
	CreatedAt    int64   `json:"created_at"`
}

func FromWalletView(v *queries.WalletView) (*WalletResponse, error) {
	res, err := fromView[WalletResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Entries == nil {
		res.Entries = []LedgerEntryResponse{}
	}
	return res, nil
}

type TopUpResponse struct {
	EntryID string `json:"entry_id"`
	Balance Money  `json:"balance"`
}

func FromTopUpResult(r *commands.TopUpResult) *TopUpResponse {
	return &TopUpResponse{EntryID: r.EntryID.String(), Balance: NewMoney(r.Balance)}
}
