package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecommerce-api/internal/domain/product"
	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description Browse the catalog with filtering, sorting and pagination
// @Tags products
// @Produce json
// @Param search query string false "Search term"
// @Param categoryId query string false "Category ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q reqdto.ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products")
		return
	}
	httperr.OK(c, resdto.FromProductPage(page))
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product")
		return
	}
	httperr.OK(c, resdto.FromProductView(view))
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeProductError(c, err, "Create product failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product")
		return
	}
	httperr.Created(c, resdto.FromProductView(view))
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.writeProductError(c, err, "Update product failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product")
		return
	}
	httperr.OK(c, resdto.FromProductView(view))
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrProductNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete product failed")
		return
	}
	httperr.OKMessage(c, "Product deleted")
}

func (h *ProductHandler) writeProductError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, commands.ErrProductNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	case errors.Is(err, commands.ErrDuplicateProductCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product code already in use")
	case errors.Is(err, commands.ErrCategoryMissing):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Category does not exist")
	case errors.Is(err, product.ErrInvalidProductCode),
		errors.Is(err, product.ErrEmptyName),
		errors.Is(err, product.ErrEmptyDescription),
		errors.Is(err, product.ErrNonPositivePrice),
		errors.Is(err, product.ErrNegativeStock):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
