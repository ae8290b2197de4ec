//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/handler/api"
	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/middleware"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"
	"grocery-pool/tests/common/builder"
	"grocery-pool/tests/common/httptest"
	commandsmock "grocery-pool/tests/mock/commands"
	queriesmock "grocery-pool/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/orders/:id", h.Get)
	s.router.POST("/orders/:id/cancel", h.Cancel)
	s.router.GET("/users/:id/orders", h.ListByUser)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	b := builder.NewOrderBuilder()
	url := "/orders/" + b.OrderID.String()

	s.Run("success: returns order with display amounts", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), b.OrderID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(b.OrderID.String(), res.ID)
		s.Equal("11.00", res.Total.Amount)
		s.Equal(int64(500), res.DeliveryFee.Cents)
		s.Require().NotNil(res.CartID)
		s.Equal(b.CartID.String(), *res.CartID)
		s.Nil(res.SharedCartID)
		s.Len(res.Lines, 1)
	})

	s.Run("error: not found returns 404", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), b.OrderID).Return(nil, order.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: refund reported", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID).Return(&commands.CancelOrderResult{
			OrderID:  orderID,
			Status:   "canceled",
			Refunded: 1100,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var res resdto.CancelOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("canceled", res.Status)
		s.Equal(resdto.Money{Cents: 1100, Amount: "11.00"}, res.Refunded)
	})

	s.Run("error: shared order cannot be canceled", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), orderID).Return(nil, order.ErrSharedOrderCancel).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OrderHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	url := "/users/" + userID.String() + "/orders"

	s.Run("success: limit is forwarded", func() {
		items := []queries.OrderListItem{builder.NewOrderBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), userID, gomock.Cond(func(x any) bool {
			p, ok := x.(*int)
			return ok && p != nil && *p == 5
		})).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "")

		var res []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.False(res[0].Shared)
	})

	s.Run("success: no orders renders empty array", func() {
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), userID, gomock.Nil()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}
