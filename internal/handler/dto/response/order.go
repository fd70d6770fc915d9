package response

import (
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type OrderLineResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	Status          string               `json:"status"`
	ShippingAddress string               `json:"shippingAddress"`
	TotalCents      int64                `json:"totalCents"`
	CouponCode      *string              `json:"couponCode,omitempty"`
	Lines           []*OrderLineResponse `json:"lines"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]*OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &OrderLineResponse{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			SubtotalCents:  l.SubtotalCents,
		}
	}
	return &OrderResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		Status:          v.Status,
		ShippingAddress: v.ShippingAddress,
		TotalCents:      v.TotalCents,
		CouponCode:      v.CouponCode,
		Lines:           lines,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromOrderViews(views []queries.OrderView) []*OrderResponse {
	items := make([]*OrderResponse, len(views))
	for i := range views {
		items[i] = FromOrderView(&views[i])
	}
	return items
}

type CheckoutResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	SubtotalCents int64     `json:"subtotalCents"`
	DiscountCents int64     `json:"discountCents"`
	TotalCents    int64     `json:"totalCents"`
	CouponCode    *string   `json:"couponCode,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:       r.OrderID,
		SubtotalCents: r.SubtotalCents,
		DiscountCents: r.DiscountCents,
		TotalCents:    r.TotalCents,
		CouponCode:    r.CouponCode,
	}
}
