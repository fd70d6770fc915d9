package request

import (
	"ecommerce-api/internal/usecase/commands"
)

type AddressRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	FullText string `json:"fullText" binding:"required,max=500"`
	City     string `json:"city" binding:"required,max=100"`
}

func (r *AddressRequest) ToCommand() commands.AddressRequest {
	return commands.AddressRequest{
		Title:    r.Title,
		FullText: r.FullText,
		City:     r.City,
	}
}
