package request

import (
	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type ProductRequest struct {
	Code        string    `json:"code" binding:"required,max=32"`
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"required,max=2000"`
	PriceCents  int64     `json:"priceCents" binding:"required,gt=0"`
	ImageURL    string    `json:"imageUrl" binding:"omitempty,url"`
	StockQty    int32     `json:"stockQty" binding:"gte=0"`
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
}

func (r *ProductRequest) ToCommand() commands.ProductRequest {
	return commands.ProductRequest{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		StockQty:    r.StockQty,
		CategoryID:  r.CategoryID,
	}
}

type ProductListQuery struct {
	Search     string  `form:"search"`
	CategoryID *string `form:"categoryId"`
	MinPrice   *int64  `form:"minPriceCents" binding:"omitempty,gte=0"`
	MaxPrice   *int64  `form:"maxPriceCents" binding:"omitempty,gte=0"`
	SortBy     string  `form:"sortBy" binding:"omitempty,oneof=name price sold"`
	SortDir    string  `form:"sortDir" binding:"omitempty,oneof=asc desc"`
	Page       int     `form:"page" binding:"omitempty,gte=1"`
	PageSize   int     `form:"pageSize" binding:"omitempty,gte=1"`
}

func (q *ProductListQuery) ToFilter() (queries.ProductFilter, error) {
	f := queries.ProductFilter{
		SortBy:   q.SortBy,
		SortDir:  q.SortDir,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Search != "" {
		f.SearchTerm = &q.Search
	}
	if q.CategoryID != nil && *q.CategoryID != "" {
		id, err := uuid.Parse(*q.CategoryID)
		if err != nil {
			return f, err
		}
		f.CategoryID = &id
	}
	f.MinPriceCents = q.MinPrice
	f.MaxPriceCents = q.MaxPrice
	return f, nil
}
