package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
	q    queries.FavoriteQueries
}

func NewFavoriteHandler(cmds commands.FavoriteCommands, q queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds, q: q}
}

// @Summary List favorite products
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list favorites")
		return
	}
	httperr.OK(c, resdto.FromProductViews(views))
}

// @Summary Add favorite
// @Tags favorites
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /favorites/{productId} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Add(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, commands.ErrFavoriteProductMissing) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Add favorite failed")
		return
	}
	httperr.OKMessage(c, "Product added to favorites")
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /favorites/{productId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, commands.ErrFavoriteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Favorite not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Remove favorite failed")
		return
	}
	httperr.OKMessage(c, "Product removed from favorites")
}
