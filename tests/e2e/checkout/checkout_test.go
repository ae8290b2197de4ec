//go:build e2e

package checkout_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/tests/common/dbtest"
	"grocery-pool/tests/common/httptest"
	"grocery-pool/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) TestImmediateCheckout() {
	s.Run("Normal case: now slot places the order and debits the wallet", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartID, g.ItemID, 3)

		res := s.Checkout(cartID, g.AddressID, "now")
		assert.True(t, res.Immediate)
		assert.Equal(t, order.StatusPlaced.String(), res.OrderStatus)
		assert.Equal(t, int64(1100), res.Charged.Cents)
		assert.Equal(t, "11.00", res.Charged.Amount)

		assert.Equal(t, int64(900), dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Equal(t, dbtest.GroceryStock-3, dbtest.StockOf(t, s.DB, g.ItemID, g.SupermarketID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/carts/%s", cartID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "inactive")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+res.OrderID, nil, "")
		var got response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "Corner Market", got.SupermarketName)
		assert.Equal(t, "Tower A", got.BuildingName)
		assert.Equal(t, "now", got.SlotLabel)
		assert.Equal(t, int64(1100), got.Total.Cents)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 3, got.Lines[0].Quantity)
	})

	s.Run("Boundary: balance equal to the total is enough", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 1100)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartID, g.ItemID, 3)

		res := s.Checkout(cartID, g.AddressID, "now")
		assert.Equal(t, int64(1100), res.Charged.Cents)
		assert.Equal(t, int64(0), dbtest.BalanceOf(t, s.DB, g.UserA))
	})

	s.Run("Boundary: one cent short rolls everything back", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 1099)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartID, g.ItemID, 3)

		w := s.CheckoutRequest(cartID, g.AddressID, "now")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "balance too low")

		assert.Equal(t, int64(1099), dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Zero(t, dbtest.CountRows(t, s.DB, "SELECT COUNT(*) FROM orders"))
		// units stay reserved by the still active cart
		assert.Equal(t, dbtest.GroceryStock-3, dbtest.StockOf(t, s.DB, g.ItemID, g.SupermarketID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/carts/%s", cartID), nil, "")
		var cart response.CartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		assert.Equal(t, "active", cart.Status)
	})

	s.Run("Error case: a cart checks out only once", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 5000)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartID, g.ItemID, 1)
		s.Checkout(cartID, g.AddressID, "now")

		w := s.CheckoutRequest(cartID, g.AddressID, "now")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT COUNT(*) FROM orders WHERE cart_id = $1", cartID))
	})

	s.Run("Error case: unknown slot label", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 5000)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartID, g.ItemID, 1)

		w := s.CheckoutRequest(cartID, g.AddressID, "11pm")
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: empty cart", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 5000)

		cartID := s.CreateCart(g.UserA, g.SupermarketID)

		w := s.CheckoutRequest(cartID, g.AddressID, "now")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Edge case: store without a delivery fee charges items only", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "Carol", "carol@example.com")
		smID := dbtest.CreateTestSupermarket(t, s.DB, "Fee-less Foods", nil)
		itemID := dbtest.CreateTestItem(t, s.DB, smID, "Bread", 350, 5)
		addressID := dbtest.CreateTestAddress(t, s.DB, userID, "Tower C")
		dbtest.CreateTestOrderSlot(t, s.DB, smID, "now")
		dbtest.CreditWallet(t, s.DB, userID, 1000)

		cartID := s.CreateCart(userID, smID)
		s.AddItem(cartID, itemID, 2)

		res := s.Checkout(cartID, addressID, "now")
		assert.Equal(t, int64(700), res.Charged.Cents)
		assert.Equal(t, int64(300), dbtest.BalanceOf(t, s.DB, userID))
	})
}

func (s *CheckoutSuite) TestSharedCheckout() {
	s.Run("Normal case: second joiner halves the fee and the first is credited", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)
		dbtest.CreditWallet(t, s.DB, g.UserB, 2000)

		cartA := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartA, g.ItemID, 1)
		resA := s.Checkout(cartA, g.AddressID, "6am")
		assert.False(t, resA.Immediate)
		assert.Equal(t, order.StatusScheduled.String(), resA.OrderStatus)
		assert.Equal(t, int64(700), resA.Charged.Cents)
		require.NotNil(t, resA.SharedCartID)
		require.NotNil(t, resA.ScheduledAt)

		cartB := s.CreateCart(g.UserB, g.SupermarketID)
		s.AddItem(cartB, g.ItemID, 2)
		resB := s.Checkout(cartB, g.AddressID, "6:00 AM")
		require.NotNil(t, resB.SharedCartID)
		assert.Equal(t, *resA.SharedCartID, *resB.SharedCartID)
		assert.Equal(t, resA.OrderID, resB.OrderID)

		assert.Equal(t, int64(2000-700+250), dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Equal(t, int64(2000-900+250), dbtest.BalanceOf(t, s.DB, g.UserB))

		walletA := s.GetWallet(g.UserA)
		assert.Equal(t, int64(1550), walletA.Balance.Cents)
		require.NotEmpty(t, walletA.Entries)
		latest := walletA.Entries[0]
		assert.Equal(t, string(ledger.KindCredit), latest.Kind)
		assert.Equal(t, int64(250), latest.Amount.Cents)
		require.NotNil(t, latest.SharedCartID)
		assert.Equal(t, *resA.SharedCartID, *latest.SharedCartID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/shared-carts/"+*resA.SharedCartID, nil, "")
		var sc response.SharedCartResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sc)
		assert.Equal(t, "open", sc.Status)
		require.Len(t, sc.Contributors, 2)
		for _, c := range sc.Contributors {
			assert.Equal(t, int64(250), c.Contribution.Cents)
		}
		assert.Equal(t, g.UserA.String(), sc.Contributors[0].UserID)
		require.Len(t, sc.Lines, 1)
		assert.Equal(t, 3, sc.Lines[0].Quantity)
		assert.Equal(t, int64(600), sc.Lines[0].Amount.Cents)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+resA.OrderID, nil, "")
		var o response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
		assert.Equal(t, int64(1100), o.Total.Cents)
		assert.Equal(t, g.UserA.String(), o.UserID)
	})

	s.Run("Normal case: settlement places the order and a second run is a no-op", func() {
		t := s.T()
		ctx := context.Background()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		cartA := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartA, g.ItemID, 1)
		res := s.Checkout(cartA, g.AddressID, "6am")
		sharedCartID := uuid.MustParse(*res.SharedCartID)

		report, err := s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.SettlementReport{Claimed: 1, Done: 1}, *report)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+res.OrderID, nil, "")
		var o response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &o)
		assert.Equal(t, order.StatusPlaced.String(), o.Status)

		// a later duplicate job for the same cart finds it closed
		_, err = s.DB.Exec(ctx,
			"INSERT INTO settlement_jobs (shared_cart_id, run_at, status) VALUES ($1, $2, 'queued')",
			sharedCartID, s.Clock.Now().Add(time.Hour))
		require.NoError(t, err)

		report, err = s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, report.Claimed)

		s.Clock.Advance(time.Hour)
		report, err = s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.SettlementReport{Claimed: 1, Skipped: 1}, *report)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT COUNT(*) FROM orders WHERE shared_cart_id = $1", sharedCartID))
		assert.Equal(t, int64(1300), dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT COUNT(*) FROM settlement_jobs WHERE shared_cart_id = $1 AND status = 'skipped'", sharedCartID))
	})

	s.Run("Error case: a settlement that fails after rebalancing rolls back and is not retried", func() {
		t := s.T()
		ctx := context.Background()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		cartA := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartA, g.ItemID, 1)
		res := s.Checkout(cartA, g.AddressID, "6am")
		sharedCartID := uuid.MustParse(*res.SharedCartID)
		balanceBefore := dbtest.BalanceOf(t, s.DB, g.UserA)

		// a cheaper fee makes the rebalance credit A, then the order write fails
		_, err := s.DB.Exec(ctx, "UPDATE supermarkets SET delivery_fee_cents = 300 WHERE id = $1", g.SupermarketID)
		require.NoError(t, err)
		_, err = s.DB.Exec(ctx, `
			CREATE FUNCTION reject_order_update() RETURNS trigger AS $$
			BEGIN RAISE EXCEPTION 'orders are read-only'; END
			$$ LANGUAGE plpgsql;
			CREATE TRIGGER reject_order_update BEFORE UPDATE ON orders
			FOR EACH ROW EXECUTE FUNCTION reject_order_update();`)
		require.NoError(t, err)
		defer func() {
			_, err := s.DB.Exec(ctx, `
				DROP TRIGGER IF EXISTS reject_order_update ON orders;
				DROP FUNCTION IF EXISTS reject_order_update();`)
			require.NoError(t, err)
		}()

		report, err := s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.SettlementReport{Claimed: 1, Failed: 1}, *report)

		assert.Equal(t, balanceBefore, dbtest.BalanceOf(t, s.DB, g.UserA))
		assert.Zero(t, dbtest.CountRows(t, s.DB,
			"SELECT COUNT(*) FROM wallet_ledger_entries WHERE user_id = $1 AND kind = 'credit' AND shared_cart_id = $2",
			g.UserA, sharedCartID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT COUNT(*) FROM orders WHERE shared_cart_id = $1 AND status = 'scheduled'", sharedCartID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT COUNT(*) FROM shared_carts WHERE id = $1 AND status = 'open'", sharedCartID))

		var status, lastError string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT status, COALESCE(last_error, '') FROM settlement_jobs WHERE shared_cart_id = $1", sharedCartID).
			Scan(&status, &lastError))
		assert.Equal(t, "failed", status)
		assert.Contains(t, lastError, "orders are read-only")

		report, err = s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, report.Claimed)
	})

	s.Run("Normal case: a closed slot opens a fresh shared cart", func() {
		t := s.T()
		ctx := context.Background()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)
		dbtest.CreditWallet(t, s.DB, g.UserB, 2000)

		cartA := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartA, g.ItemID, 1)
		first := s.Checkout(cartA, g.AddressID, "6am")

		_, err := s.Settlements.RunDue(ctx, 10)
		require.NoError(t, err)

		cartB := s.CreateCart(g.UserB, g.SupermarketID)
		s.AddItem(cartB, g.ItemID, 1)
		second := s.Checkout(cartB, g.AddressID, "6am")

		assert.NotEqual(t, *first.SharedCartID, *second.SharedCartID)
		assert.Equal(t, int64(700), second.Charged.Cents)
	})

	s.Run("Error case: shared order cannot be canceled", func() {
		t := s.T()
		g := dbtest.SeedGrocery(t, s.DB)
		dbtest.CreditWallet(t, s.DB, g.UserA, 2000)

		cartA := s.CreateCart(g.UserA, g.SupermarketID)
		s.AddItem(cartA, g.ItemID, 1)
		res := s.Checkout(cartA, g.AddressID, "6am")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders/"+res.OrderID+"/cancel", nil, "")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
