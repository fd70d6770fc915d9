package response

import (
	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/queries"
)

type CartLineResponse struct {
	LineID         uuid.UUID `json:"lineId"`
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	ImageURL       string    `json:"imageUrl"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type CartResponse struct {
	Lines         []*CartLineResponse `json:"lines"`
	SubtotalCents int64               `json:"subtotalCents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]*CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &CartLineResponse{
			LineID:         l.LineID,
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			ImageURL:       l.ImageURL,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
			SubtotalCents:  l.SubtotalCents,
		}
	}
	return &CartResponse{
		Lines:         lines,
		SubtotalCents: v.SubtotalCents,
	}
}
