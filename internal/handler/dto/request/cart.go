package request

import (
	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/commands"
)

type AddCartLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

func (r *AddCartLineRequest) ToCommand() commands.AddCartLineRequest {
	return commands.AddCartLineRequest{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
}
