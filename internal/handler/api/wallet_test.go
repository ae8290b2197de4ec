//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/handler/api"
	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/middleware"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"
	"grocery-pool/tests/common/httptest"
	commandsmock "grocery-pool/tests/mock/commands"
	queriesmock "grocery-pool/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWalletCommands
	mockQueries  *queriesmock.MockWalletQueries
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	h := api.NewWalletHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/users/:id/wallet", h.Get)
	s.router.POST("/users/:id/wallet/top-up", h.TopUp)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestGet() {
	userID := uuid.New()
	orderID := uuid.New()

	s.Run("success: balance and entries", func() {
		view := &queries.WalletView{
			UserID:  userID,
			Balance: 900,
			Entries: []queries.LedgerEntryView{
				{ID: uuid.New(), Amount: -1100, Kind: "debit", OrderID: &orderID, CreatedAt: time.Now()},
				{ID: uuid.New(), Amount: 2000, Kind: "credit", Note: "wallet top-up", CreatedAt: time.Now()},
			},
		}
		s.mockQueries.EXPECT().GetWallet(gomock.Any(), userID, gomock.Nil()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/wallet", nil, userID.String())

		var res resdto.WalletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("9.00", res.Balance.Amount)
		s.Require().Len(res.Entries, 2)
		s.Equal("-11.00", res.Entries[0].Amount.Amount)
		s.Require().NotNil(res.Entries[0].OrderID)
		s.Equal(orderID.String(), *res.Entries[0].OrderID)
		s.Nil(res.Entries[1].OrderID)
	})
}

func (s *WalletHandlerTestSuite) TestTopUp() {
	userID := uuid.New()
	url := "/users/" + userID.String() + "/wallet/top-up"
	entryID := uuid.New()

	s.Run("success: decimal amount", func() {
		s.mockCommands.EXPECT().TopUp(gomock.Any(), userID, money.Cents(1250), nil).
			Return(&commands.TopUpResult{EntryID: entryID, Balance: 1250}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "12.50"}, "")

		var res resdto.TopUpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(entryID.String(), res.EntryID)
		s.Equal("12.50", res.Balance.Amount)
	})

	s.Run("success: integer cents", func() {
		s.mockCommands.EXPECT().TopUp(gomock.Any(), userID, money.Cents(2000), nil).
			Return(&commands.TopUpResult{EntryID: entryID, Balance: 2000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 2000}, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: non-positive amount", func() {
		s.mockCommands.EXPECT().TopUp(gomock.Any(), userID, money.Cents(0), nil).
			Return(nil, ledger.ErrInvalidAmount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: retried key replays the first credit", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().TopUp(gomock.Any(), userID, money.Cents(2000), &key).
			Return(&commands.TopUpResult{EntryID: entryID, Balance: 2000, Replayed: true}, nil).Times(1)

		req := nethttptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"amount_cents":2000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", key.String())
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		var res resdto.TopUpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(entryID.String(), res.EntryID)
	})

	s.Run("error: key reused for another amount", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().TopUp(gomock.Any(), userID, money.Cents(500), &key).
			Return(nil, commands.ErrIdempotencyKeyReused).Times(1)

		req := nethttptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"amount_cents":500}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", key.String())
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "different request")
	})

	s.Run("error: malformed idempotency key", func() {
		req := nethttptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"amount_cents":500}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "not-a-uuid")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: sub-cent amount never reaches the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": "1.005"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "decimal places")
	})
}
