package api

import (
	"net/http"

	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/httperr"
	"grocery-pool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SharedCartHandler struct {
	q queries.SharedCartQueries
}

func NewSharedCartHandler(q queries.SharedCartQueries) *SharedCartHandler {
	return &SharedCartHandler{q: q}
}

// @Summary Get shared cart
// @Description Contributors, lines aggregated by item, and settlement jobs
// @Tags shared-carts
// @Produce json
// @Param id path string true "Shared cart ID"
// @Success 200 {object} resdto.SharedCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shared-carts/{id} [get]
func (h *SharedCartHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetSharedCart(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSharedCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render shared cart", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
