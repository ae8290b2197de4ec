//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/handler/api"
	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/middleware"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/tests/common/builder"
	"grocery-pool/tests/common/httptest"
	"grocery-pool/tests/common/testutil"
	commandsmock "grocery-pool/tests/mock/commands"
	queriesmock "grocery-pool/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockCheckout, s.mockQueries)

	s.router.POST("/carts", s.handler.Create)
	s.router.GET("/carts/:id", s.handler.Get)
	s.router.POST("/carts/:id/items", s.handler.AddItem)
	s.router.DELETE("/carts/:id/items", s.handler.Empty)
	s.router.DELETE("/carts/:id/items/:itemId", s.handler.RemoveOneUnit)
	s.router.POST("/carts/:id/checkout", s.handler.Checkout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type testCaseCart struct {
	name       string
	mutate     testutil.BodyMutation
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CartHandlerTestSuite) TestCreate() {
	b := builder.NewCartBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: new cart returns 201", func() {
		s.mockCommands.EXPECT().CreateOrReuseCart(gomock.Any(), b.UserID, b.SupermarketID).
			Return(&commands.CreateCartResult{CartID: b.CartID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", reqBody, b.UserID.String())

		var res resdto.CreateCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.CartID.String(), res.CartID)
		s.False(res.Reused)
	})

	s.Run("success: reused cart returns 200", func() {
		s.mockCommands.EXPECT().CreateOrReuseCart(gomock.Any(), b.UserID, b.SupermarketID).
			Return(&commands.CreateCartResult{CartID: b.CartID, Reused: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", reqBody, "")

		var res resdto.CreateCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Reused)
	})

	missing := []testCaseCart{
		{name: "missing field: user_id", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: supermarket_id", mutate: testutil.Field("supermarket_id", nil), expectCode: http.StatusBadRequest},
		{name: "malformed user_id", mutate: testutil.Field("user_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range missing {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: unknown supermarket returns 404", func() {
		s.mockCommands.EXPECT().CreateOrReuseCart(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Kind("supermarket not found", errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "supermarket not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CartHandlerTestSuite) TestGet() {
	b := builder.NewCartBuilder()
	url := "/carts/" + b.CartID.String()

	s.Run("success: renders lines, total and balance", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), b.CartID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Lines, 1)
		s.Equal(resdto.Money{Cents: 600, Amount: "6.00"}, res.Total)
		s.Equal(resdto.Money{Cents: 2000, Amount: "20.00"}, res.WalletBalance)
		s.Equal(b.ItemID.String(), res.Lines[0].ItemID)
	})

	s.Run("error: inactive cart returns 400", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), b.CartID).Return(nil, cart.ErrCartInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "inactive")
	})

	s.Run("error: invalid id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestAddItem / TestRemoveOneUnit / TestEmpty
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	b := builder.NewCartBuilder()
	url := "/carts/" + b.CartID.String() + "/items"
	reqBody := b.BuildAddItemRequestDTO()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), b.CartID, b.ItemID, 3).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: insufficient stock returns 400", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), b.CartID, b.ItemID, 3).
			Return(errs.Wrap(inventory.ErrInsufficientStock, "reserve")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: missing quantity returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CartHandlerTestSuite) TestRemoveOneUnit() {
	cartID, itemID := uuid.New(), uuid.New()
	url := "/carts/" + cartID.String() + "/items/" + itemID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().RemoveOneUnit(gomock.Any(), cartID, itemID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: item not in cart returns 404", func() {
		s.mockCommands.EXPECT().RemoveOneUnit(gomock.Any(), cartID, itemID).Return(cart.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: invalid item id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/carts/"+cartID.String()+"/items/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid itemId")
	})
}

func (s *CartHandlerTestSuite) TestEmpty() {
	cartID := uuid.New()
	url := "/carts/" + cartID.String() + "/items"

	s.Run("success: already empty is still 200", func() {
		s.mockCommands.EXPECT().EmptyCart(gomock.Any(), cartID).
			Return(&commands.EmptyCartResult{AlreadyEmpty: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var res resdto.EmptyCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.AlreadyEmpty)
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *CartHandlerTestSuite) TestCheckout() {
	b := builder.NewCartBuilder()
	url := "/carts/" + b.CartID.String() + "/checkout"

	s.Run("success: immediate order", func() {
		orderID := uuid.New()
		s.mockCheckout.EXPECT().SubmitDelivery(gomock.Any(), commands.SubmitDeliveryRequest{
			CartID:       b.CartID,
			AddressID:    b.AddressID,
			DeliverySlot: "now",
		}).Return(&commands.SubmitDeliveryResult{
			Immediate:   true,
			OrderID:     orderID,
			OrderStatus: "placed",
			Charged:     money.Cents(1100),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "")

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.True(res.Immediate)
		s.Equal(orderID.String(), res.OrderID)
		s.Equal("11.00", res.Charged.Amount)
		s.Nil(res.SharedCartID)
	})

	s.Run("success: scheduled shared cart", func() {
		sharedID := uuid.New()
		at := time.Date(2025, 3, 2, 6, 0, 0, 0, time.UTC)
		s.mockCheckout.EXPECT().SubmitDelivery(gomock.Any(), gomock.Any()).Return(&commands.SubmitDeliveryResult{
			OrderID:      uuid.New(),
			OrderStatus:  "scheduled",
			SharedCartID: &sharedID,
			ScheduledAt:  &at,
			Charged:      money.Cents(1100),
		}, nil).Times(1)

		body := b.With(func(cb *builder.CartBuilder) { cb.DeliverySlot = "6am" }).BuildCheckoutRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.False(res.Immediate)
		s.Require().NotNil(res.SharedCartID)
		s.Equal(sharedID.String(), *res.SharedCartID)
		s.Require().NotNil(res.ScheduledAt)
		s.Equal(at.Unix(), *res.ScheduledAt)
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "insufficient balance", err: errs.Kind("wallet balance too low", errs.ErrInsufficientBalance), expectCode: http.StatusBadRequest},
		{name: "order already exists", err: errs.Kind("cart already has an order", errs.ErrConflict), expectCode: http.StatusConflict},
		{name: "unexpected failure", err: errs.New("pool exhausted"), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockCheckout.EXPECT().SubmitDelivery(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: missing delivery_slot", func() {
		body := testutil.DtoMap(s.T(), b.BuildCheckoutRequestDTO(), testutil.Field("delivery_slot", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
