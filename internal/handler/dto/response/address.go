package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"ecommerce-api/internal/usecase/queries"
)

type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	FullText  string    `json:"fullText"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromAddressView(v *queries.AddressView) *AddressResponse {
	var resp AddressResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAddressViews(views []queries.AddressView) []*AddressResponse {
	items := make([]*AddressResponse, len(views))
	for i := range views {
		items[i] = FromAddressView(&views[i])
	}
	return items
}
