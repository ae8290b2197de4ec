//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/handler/dto/response"
	"grocery-pool/tests/common/dbtest"
	"grocery-pool/tests/common/httptest"
	"grocery-pool/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) placeNowOrder(g dbtest.Grocery, qty int) *response.CheckoutResponse {
	cartID := s.CreateCart(g.UserA, g.SupermarketID)
	s.AddItem(cartID, g.ItemID, qty)
	return s.Checkout(cartID, g.AddressID, "now")
}

func (s *OrderSuite) TestCancelOrder() {
	s.Run("Normal case: cancel refunds the total and restocks", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		placed := s.placeNowOrder(g, 2)
		require.Equal(t, int64(1100), dbtest.BalanceOf(t, s.DB, g.UserA))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders/"+placed.OrderID+"/cancel", nil, "")
		var res response.CancelOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, order.StatusCanceled.String(), res.Status)
		assert.Equal(t, int64(900), res.Refunded.Cents)

		assert.Equal(t, int64(2000), dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Equal(t, dbtest.GroceryStock, dbtest.StockOf(t, s.DB, g.ItemID, g.SupermarketID))

		wallet := s.GetWallet(g.UserA)
		require.NotEmpty(t, wallet.Entries)
		assert.Equal(t, string(ledger.KindRefund), wallet.Entries[0].Kind)
		require.NotNil(t, wallet.Entries[0].OrderID)
		assert.Equal(t, placed.OrderID, *wallet.Entries[0].OrderID)
	})

	s.Run("Error case: canceling twice", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		placed := s.placeNowOrder(g, 1)
		url := "/api/orders/" + placed.OrderID + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Equal(t, int64(2000), dbtest.BalanceOf(t, s.DB, g.UserA))
	})

	s.Run("Error case: unknown order", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders/"+uuid.NewString()+"/cancel", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *OrderSuite) TestListOrders() {
	s.Run("Normal case: newest first with a limit", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 10000)

		first := s.placeNowOrder(g, 1)
		second := s.placeNowOrder(g, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/orders", g.UserA), nil, "")
		var all []response.OrderListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		ids := make([]string, len(all))
		for i, o := range all {
			ids[i] = o.ID
		}
		if diff := cmp.Diff([]string{second.OrderID, first.OrderID}, ids); diff != "" {
			t.Errorf("order ids mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Corner Market", all[0].SupermarketName)
		assert.False(t, all[0].Shared)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/orders?limit=1", g.UserA), nil, "")
		var limited []response.OrderListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &limited)
		require.Len(t, limited, 1)
		assert.Equal(t, second.OrderID, limited[0].ID)
	})

	s.Run("Error case: unknown user", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/orders", uuid.New()), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: malformed limit", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/orders?limit=abc", g.UserA), nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *OrderSuite) TestWallet() {
	s.Run("Normal case: top-up in cents and in decimal amount", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		url := fmt.Sprintf("/api/users/%s/wallet/top-up", g.UserA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"amount_cents": 1000}, g.UserA.String())
		var res response.TopUpResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.Equal(t, int64(1000), res.Balance.Cents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"amount": "12.50"}, g.UserA.String())
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.Equal(t, int64(2250), res.Balance.Cents)
		assert.Equal(t, "22.50", res.Balance.Amount)

		wallet := s.GetWallet(g.UserA)
		assert.Equal(t, int64(2250), wallet.Balance.Cents)
		assert.Len(t, wallet.Entries, 2)
	})

	s.Run("Normal case: retried top-up with the same key credits once", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		url := fmt.Sprintf("/api/users/%s/wallet/top-up", g.UserA)
		key := uuid.NewString()

		topUp := func(body string) *nethttptest.ResponseRecorder {
			req := nethttptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Idempotency-Key", key)
			w := nethttptest.NewRecorder()
			s.Router.ServeHTTP(w, req)
			return w
		}

		var first, retry response.TopUpResponse
		httptest.AssertSuccessResponse(t, topUp(`{"amount_cents":1500}`), http.StatusCreated, &first)
		httptest.AssertSuccessResponse(t, topUp(`{"amount":"15.00"}`), http.StatusOK, &retry)
		assert.Equal(t, first.EntryID, retry.EntryID)
		assert.Equal(t, int64(1500), dbtest.BalanceOf(t, s.DB, g.UserA))

		w := topUp(`{"amount_cents":900}`)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT COUNT(*) FROM wallet_ledger_entries WHERE user_id = $1", g.UserA))
	})

	s.Run("Error case: sub-cent amount", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		url := fmt.Sprintf("/api/users/%s/wallet/top-up", g.UserA)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"amount": "1.005"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Zero(t, dbtest.BalanceOf(t, s.DB, g.UserA))
	})

	s.Run("Normal case: order slots of a store", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/supermarkets/%s/order-slots", g.SupermarketID), nil, "")
		var slots []response.OrderSlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		labels := make([]string, len(slots))
		for i, sl := range slots {
			labels[i] = sl.Label
		}
		assert.ElementsMatch(t, []string{"now", "6am"}, labels)
	})
}
