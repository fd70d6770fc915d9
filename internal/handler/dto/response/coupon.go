package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"ecommerce-api/internal/usecase/queries"
)

type CouponResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	DiscountCents int64     `json:"discountCents"`
	ExpiresAt     time.Time `json:"expiresAt"`
	Active        bool      `json:"active"`
	MaxTotal      int32     `json:"maxTotal"`
	MaxPerUser    int32     `json:"maxPerUser"`
	TotalUsed     int32     `json:"totalUsed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponViews(views []queries.CouponView) []*CouponResponse {
	items := make([]*CouponResponse, len(views))
	for i := range views {
		items[i] = FromCouponView(&views[i])
	}
	return items
}

type AppliedCouponResponse struct {
	Code          string `json:"code"`
	DiscountCents int64  `json:"discountCents"`
	SubtotalCents int64  `json:"subtotalCents"`
	TotalCents    int64  `json:"totalCents"`
}

func FromAppliedCouponView(v *queries.AppliedCouponView) *AppliedCouponResponse {
	var resp AppliedCouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
