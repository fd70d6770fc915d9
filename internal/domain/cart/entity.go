package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNonPositiveQuantity = errors.New("cart quantity must be greater than zero")

// Line is one (user, product) entry; the store enforces at most one per pair.
type Line struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	quantity  int32
}

func NewLine(userID, productID uuid.UUID, quantity int32) (*Line, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	return &Line{
		id:        uuid.New(),
		userID:    userID,
		productID: productID,
		quantity:  quantity,
	}, nil
}

func ReconstructLine(id, userID, productID uuid.UUID, quantity int32) *Line {
	return &Line{
		id:        id,
		userID:    userID,
		productID: productID,
		quantity:  quantity,
	}
}

func (l *Line) ID() uuid.UUID        { return l.id }
func (l *Line) UserID() uuid.UUID    { return l.userID }
func (l *Line) ProductID() uuid.UUID { return l.productID }
func (l *Line) Quantity() int32      { return l.quantity }

// ClampToStock caps the quantity at the available stock, mirroring the
// add-or-update behavior of the cart endpoint.
func (l *Line) ClampToStock(stockQty int32) {
	if l.quantity > stockQty {
		l.quantity = stockQty
	}
}
