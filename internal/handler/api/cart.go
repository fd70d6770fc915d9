package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecommerce-api/internal/domain/cart"
	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	view, err := h.q.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart")
		return
	}
	httperr.OK(c, resdto.FromCartView(view))
}

// @Summary Add or update cart line
// @Description Set the quantity for a product; the quantity is clamped to stock
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartLineRequest true "Cart line"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /cart/items [post]
func (h *CartHandler) AddOrUpdate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	var req reqdto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.AddOrUpdate(c.Request.Context(), userID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrCartProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
		case errors.Is(err, commands.ErrCartOutOfStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Product is out of stock")
		case errors.Is(err, cart.ErrNonPositiveQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be greater than zero")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update cart")
		}
		return
	}
	view, err := h.q.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart")
		return
	}
	httperr.OK(c, resdto.FromCartView(view))
}

// @Summary Remove cart line
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /cart/items/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, lineID); err != nil {
		if errors.Is(err, commands.ErrCartLineNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart line not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove cart line")
		return
	}
	httperr.OKMessage(c, "Cart line removed")
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart")
		return
	}
	httperr.OKMessage(c, "Cart cleared")
}
