package request

import (
	"time"

	"ecommerce-api/internal/usecase/commands"
)

type CreateCouponRequest struct {
	Code          string    `json:"code" binding:"required,max=20"`
	DiscountCents int64     `json:"discountCents" binding:"required,gt=0"`
	ExpiresAt     time.Time `json:"expiresAt" binding:"required"`
	MaxTotal      int32     `json:"maxTotal" binding:"omitempty,gt=0"`
	MaxPerUser    int32     `json:"maxPerUser" binding:"omitempty,gt=0"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:          r.Code,
		DiscountCents: r.DiscountCents,
		ExpiresAt:     r.ExpiresAt,
		MaxTotal:      r.MaxTotal,
		MaxPerUser:    r.MaxPerUser,
	}
}

type UpdateCouponRequest struct {
	DiscountCents int64     `json:"discountCents" binding:"required,gt=0"`
	ExpiresAt     time.Time `json:"expiresAt" binding:"required"`
	Active        bool      `json:"active"`
	MaxTotal      int32     `json:"maxTotal" binding:"omitempty,gt=0"`
	MaxPerUser    int32     `json:"maxPerUser" binding:"omitempty,gt=0"`
}

func (r *UpdateCouponRequest) ToCommand() commands.UpdateCouponRequest {
	return commands.UpdateCouponRequest{
		DiscountCents: r.DiscountCents,
		ExpiresAt:     r.ExpiresAt,
		Active:        r.Active,
		MaxTotal:      r.MaxTotal,
		MaxPerUser:    r.MaxPerUser,
	}
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=20"`
}
