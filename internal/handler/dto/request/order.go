package request

import (
	"ecommerce-api/internal/usecase/commands"
)

type CheckoutRequest struct {
	ShippingAddress string  `json:"shippingAddress" binding:"required,max=500"`
	CouponCode      *string `json:"couponCode" binding:"omitempty,max=20"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		ShippingAddress: r.ShippingAddress,
		CouponCode:      r.CouponCode,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
