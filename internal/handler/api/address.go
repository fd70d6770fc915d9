package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type AddressHandler struct {
	cmds commands.AddressCommands
	q    queries.AddressQueries
}

func NewAddressHandler(cmds commands.AddressCommands, q queries.AddressQueries) *AddressHandler {
	return &AddressHandler{cmds: cmds, q: q}
}

// @Summary List addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list addresses")
		return
	}
	httperr.OK(c, resdto.FromAddressViews(views))
}

// @Summary Create address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddressRequest true "Address"
// @Success 201 {object} httperr.Envelope
// @Router /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		h.writeAddressError(c, err, "Create address failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load address")
		return
	}
	httperr.Created(c, resdto.FromAddressView(view))
}

// @Summary Update address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param request body reqdto.AddressRequest true "Address"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
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
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, userID, req.ToCommand()); err != nil {
		h.writeAddressError(c, err, "Update address failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load address")
		return
	}
	httperr.OK(c, resdto.FromAddressView(view))
}

// @Summary Delete address
// @Tags addresses
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
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
	if err := h.cmds.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, commands.ErrAddressNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete address failed")
		return
	}
	httperr.OKMessage(c, "Address deleted")
}

func (h *AddressHandler) writeAddressError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, commands.ErrAddressNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found")
	case errors.Is(err, commands.ErrDuplicateAddress):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Address title already in use")
	case errors.Is(err, commands.ErrInvalidAddress):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Address fields cannot be empty")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
