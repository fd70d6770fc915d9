package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecommerce-api/internal/domain/order"
	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/invoice"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type OrderHandler struct {
	checkout commands.CheckoutCommands
	cmds     commands.OrderCommands
	q        queries.OrderQueries
	users    queries.UserQueries
	invoices *invoice.Generator
}

func NewOrderHandler(checkout commands.CheckoutCommands, cmds commands.OrderCommands, q queries.OrderQueries, users queries.UserQueries, invoices *invoice.Generator) *OrderHandler {
	return &OrderHandler{checkout: checkout, cmds: cmds, q: q, users: users, invoices: invoices}
}

// @Summary Checkout
// @Description Convert the cart into a paid order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.checkout.Checkout(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty")
		case errors.Is(err, order.ErrEmptyShippingAddress):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Shipping address cannot be empty")
		case errors.Is(err, commands.ErrProductUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "A product in the cart is no longer available")
		case errors.Is(err, commands.ErrOutOfStock), errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Not enough stock for a product in the cart")
		case errors.Is(err, commands.ErrCouponUsageLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon usage limit reached")
		case errors.Is(err, commands.ErrCouponPerUserLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon already used")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed")
		}
		return
	}
	httperr.Created(c, resdto.FromCheckoutResult(result))
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders")
		return
	}
	httperr.OK(c, resdto.FromOrderViews(views))
}

// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders")
		return
	}
	httperr.OK(c, resdto.FromOrderViews(views))
}

// @Summary Get own order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByIDForUser(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order")
		return
	}
	httperr.OK(c, resdto.FromOrderView(view))
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeStatusError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order")
		return
	}
	httperr.OK(c, resdto.FromOrderView(view))
}

// @Summary Cancel own order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, order.ErrNotCancellable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order can no longer be cancelled")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel order failed")
		}
		return
	}
	view, err := h.q.GetByIDForUser(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order")
		return
	}
	httperr.OK(c, resdto.FromOrderView(view))
}

// @Summary Download invoice
// @Description Download a PDF invoice for an order
// @Tags orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Envelope
// @Router /orders/{id}/invoice [get]
func (h *OrderHandler) Invoice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByIDForUser(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order")
		return
	}
	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user")
		return
	}
	pdf, err := h.invoices.Render(view, u.FullName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render invoice")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, view.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *OrderHandler) writeStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOrderNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
	case errors.Is(err, order.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order status")
	case errors.Is(err, order.ErrSameStatus),
		errors.Is(err, order.ErrAlreadyCancelled),
		errors.Is(err, order.ErrNotPaidYet),
		errors.Is(err, order.ErrPendingReentry):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update order status failed")
	}
}
