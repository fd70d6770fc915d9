package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecommerce-api/internal/domain/coupon"
	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons")
		return
	}
	httperr.OK(c, resdto.FromCouponViews(views))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon")
		return
	}
	httperr.OK(c, resdto.FromCouponView(view))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeCouponError(c, err, "Create coupon failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon")
		return
	}
	httperr.Created(c, resdto.FromCouponView(view))
}

// @Summary Update coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Coupon"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.writeCouponError(c, err, "Update coupon failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon")
		return
	}
	httperr.OK(c, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCouponNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete coupon failed")
		return
	}
	httperr.OKMessage(c, "Coupon deleted")
}

// @Summary Apply coupon
// @Description Preview a coupon against the current cart without redeeming it
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /coupons/apply [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.q.Apply(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
		case errors.Is(err, queries.ErrCouponNotRedeemable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon is inactive or expired")
		case errors.Is(err, queries.ErrCouponUsageLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon usage limit reached")
		case errors.Is(err, queries.ErrCouponPerUserLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon already used")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to apply coupon")
		}
		return
	}
	httperr.OK(c, resdto.FromAppliedCouponView(view))
}

func (h *CouponHandler) writeCouponError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, commands.ErrCouponNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
	case errors.Is(err, commands.ErrDuplicateCouponCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon code already in use")
	case errors.Is(err, coupon.ErrInvalidCouponCode),
		errors.Is(err, coupon.ErrNonPositiveDiscount),
		errors.Is(err, coupon.ErrExpiryInPast),
		errors.Is(err, coupon.ErrActivateExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
