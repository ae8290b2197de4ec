package api

import (
	"net/http"

	resdto "grocery-pool/internal/handler/dto/response"
	"grocery-pool/internal/handler/httperr"
	"grocery-pool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List order slots
// @Tags supermarkets
// @Produce json
// @Param id path string true "Supermarket ID"
// @Success 200 {array} resdto.OrderSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /supermarkets/{id}/order-slots [get]
func (h *CatalogHandler) ListOrderSlots(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	slots, err := h.q.ListOrderSlots(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderSlots(slots))
}
