package api

import (
	"net/http"

	reqdto "grocery-pool/internal/handler/dto/request"
	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/httperr"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	cmds commands.WalletCommands
	q    queries.WalletQueries
}

func NewWalletHandler(cmds commands.WalletCommands, q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{cmds: cmds, q: q}
}

// @Summary Get wallet
// @Description Balance and most recent ledger entries
// @Tags wallet
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Max entries (default 20, max 100)"
// @Success 200 {object} resdto.WalletResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/wallet [get]
func (h *WalletHandler) Get(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, ok := limitQuery(c)
	if !ok {
		return
	}
	view, err := h.q.GetWallet(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWalletView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render wallet", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Top up wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param Idempotency-Key header string false "Replays the first result for retries with the same key"
// @Param request body reqdto.TopUpRequest true "Either amount_cents or amount"
// @Success 201 {object} resdto.TopUpResponse
// @Success 200 {object} resdto.TopUpResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{id}/wallet/top-up [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKeyHeader(c)
	if !ok {
		return
	}
	var req reqdto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	amount, err := req.Cents()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	result, err := h.cmds.TopUp(c.Request.Context(), userID, amount, key)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromTopUpResult(result))
}
