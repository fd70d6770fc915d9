package response

import (
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/queries"
)

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	ImageURL     string    `json:"imageUrl"`
	StockQty     int32     `json:"stockQty"`
	SoldQty      int32     `json:"soldQty"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           v.ID,
		Code:         v.ProductCode,
		Name:         v.Name,
		Description:  v.Description,
		PriceCents:   v.PriceCents,
		ImageURL:     v.ImageURL,
		StockQty:     v.StockQty,
		SoldQty:      v.SoldQty,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type ProductListResponse struct {
	Items      []*ProductResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalCount int64              `json:"totalCount"`
}

func FromProductPage(p *queries.Paginated[queries.ProductView]) *ProductListResponse {
	items := make([]*ProductResponse, len(p.Items))
	for i := range p.Items {
		items[i] = FromProductView(&p.Items[i])
	}
	return &ProductListResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}

func FromProductViews(views []queries.ProductView) []*ProductResponse {
	items := make([]*ProductResponse, len(views))
	for i := range views {
		items[i] = FromProductView(&views[i])
	}
	return items
}
