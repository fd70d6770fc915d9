package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"ecommerce-api/internal/usecase/queries"
)

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	var resp CategoryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCategoryViews(views []queries.CategoryView) []*CategoryResponse {
	items := make([]*CategoryResponse, len(views))
	for i := range views {
		items[i] = FromCategoryView(&views[i])
	}
	return items
}
