package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type CategoryHandler struct {
	cmds commands.CategoryCommands
	q    queries.CategoryQueries
}

func NewCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} httperr.Envelope
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list categories")
		return
	}
	httperr.OK(c, resdto.FromCategoryViews(views))
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCategoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category")
		return
	}
	httperr.OK(c, resdto.FromCategoryView(view))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} httperr.Envelope
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.writeCategoryError(c, err, "Create category failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category")
		return
	}
	httperr.Created(c, resdto.FromCategoryView(view))
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.Name); err != nil {
		h.writeCategoryError(c, err, "Update category failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category")
		return
	}
	httperr.OK(c, resdto.FromCategoryView(view))
}

// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCategoryNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete category failed")
		return
	}
	httperr.OKMessage(c, "Category deleted")
}

func (h *CategoryHandler) writeCategoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, commands.ErrCategoryNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
	case errors.Is(err, commands.ErrDuplicateCategoryName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Category name already in use")
	case errors.Is(err, commands.ErrEmptyCategoryName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Category name cannot be empty")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
