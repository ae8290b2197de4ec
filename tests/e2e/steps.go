//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"

	"grocery-pool/internal/handler/dto/request"
	"grocery-pool/internal/handler/dto/response"
	"grocery-pool/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateCart opens (or reuses) the user's cart and returns its id.
func (s *SharedSuite) CreateCart(userID, supermarketID uuid.UUID) uuid.UUID {
	t := s.T()
	body := request.CreateCartRequest{UserID: userID, SupermarketID: supermarketID}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/carts", body, userID.String())
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, w.Body.String())

	var res response.CreateCartResponse
	httptest.AssertSuccessResponse(t, w, w.Code, &res)
	return uuid.MustParse(res.CartID)
}

func (s *SharedSuite) AddItem(cartID, itemID uuid.UUID, qty int) {
	t := s.T()
	body := request.AddItemRequest{ItemID: itemID, Quantity: qty}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/carts/%s/items", cartID), body, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *SharedSuite) Checkout(cartID, addressID uuid.UUID, deliverySlot string) *response.CheckoutResponse {
	t := s.T()
	w := s.CheckoutRequest(cartID, addressID, deliverySlot)

	var res response.CheckoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Equal(t, http.StatusCreated, w.Code)
	return &res
}

func (s *SharedSuite) CheckoutRequest(cartID, addressID uuid.UUID, deliverySlot string) *nethttptest.ResponseRecorder {
	body := request.CheckoutRequest{AddressID: addressID, DeliverySlot: deliverySlot}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/carts/%s/checkout", cartID), body, "")
}

func (s *SharedSuite) GetWallet(userID uuid.UUID) *response.WalletResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/wallet", userID), nil, userID.String())

	var res response.WalletResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}
