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

type CartHandler struct {
	cmds     commands.CartCommands
	checkout commands.CheckoutCommands
	q        queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, checkout commands.CheckoutCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, checkout: checkout, q: q}
}

// @Summary Create or reuse cart
// @Description Returns the user's active cart for the supermarket, or replaces it with a new one
// @Tags carts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCartRequest true "Create cart request"
// @Success 200 {object} resdto.CreateCartResponse "Existing cart reused"
// @Success 201 {object} resdto.CreateCartResponse "New cart created"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	var req reqdto.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateOrReuseCart(c.Request.Context(), req.UserID, req.SupermarketID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCreateCartResult(result))
}

// @Summary Get cart
// @Description Get an active cart with its lines, total and the owner's wallet balance
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add item
// @Description Reserve stock and add units of an item to the cart
// @Tags carts
// @Accept json
// @Param id path string true "Cart ID"
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), id, req.ItemID, req.Quantity); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove one unit
// @Description Remove a single unit of an item and return it to stock
// @Tags carts
// @Param id path string true "Cart ID"
// @Param itemId path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /carts/{id}/items/{itemId} [delete]
func (h *CartHandler) RemoveOneUnit(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "itemId")
	if !ok {
		return
	}
	if err := h.cmds.RemoveOneUnit(c.Request.Context(), id, itemID); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Empty cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.EmptyCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /carts/{id}/items [delete]
func (h *CartHandler) Empty(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.EmptyCart(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EmptyCartResponse{AlreadyEmpty: result.AlreadyEmpty})
}

// @Summary Submit delivery
// @Description "now" places and pays for an order immediately. Any other slot joins the shared cart for that address and slot.
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /carts/{id}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.checkout.SubmitDelivery(c.Request.Context(), commands.SubmitDeliveryRequest{
		CartID:       id,
		AddressID:    req.AddressID,
		DeliverySlot: req.DeliverySlot,
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitDeliveryResult(result))
}
