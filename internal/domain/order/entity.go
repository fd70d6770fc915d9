package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyShippingAddress = errors.New("shipping address cannot be empty")
	ErrNoLines              = errors.New("order must contain at least one line")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrSameStatus           = errors.New("order is already in the requested status")
	ErrAlreadyCancelled     = errors.New("order is already cancelled")
	ErrNotPaidYet           = errors.New("order must be paid before it can be shipped")
	ErrPendingReentry       = errors.New("order cannot return to pending")
	ErrNotCancellable       = errors.New("order can no longer be cancelled by the customer")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Line is an immutable snapshot of a product at the moment the order was
// placed; later product edits never affect it.
type Line struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
}

func (l Line) SubtotalCents() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

type Order struct {
	id              uuid.UUID
	userID          uuid.UUID
	totalCents      int64
	shippingAddress string
	status          Status
	couponCode      *string
	lines           []Line
	createdAt       time.Time
	updatedAt       time.Time
}

// NewPaidOrder is the only way a fresh order comes into existence: checkout
// creates it directly in the paid state.
func NewPaidOrder(userID uuid.UUID, shippingAddress string, totalCents int64, couponCode *string, lines []Line) (*Order, error) {
	shippingAddress = strings.TrimSpace(shippingAddress)
	if shippingAddress == "" {
		return nil, ErrEmptyShippingAddress
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	return &Order{
		id:              uuid.New(),
		userID:          userID,
		totalCents:      totalCents,
		shippingAddress: shippingAddress,
		status:          StatusPaid,
		couponCode:      couponCode,
		lines:           lines,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	totalCents int64,
	shippingAddress string,
	status Status,
	couponCode *string,
	lines []Line,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		userID:          userID,
		totalCents:      totalCents,
		shippingAddress: shippingAddress,
		status:          status,
		couponCode:      couponCode,
		lines:           lines,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) UserID() uuid.UUID       { return o.userID }
func (o *Order) TotalCents() int64       { return o.totalCents }
func (o *Order) ShippingAddress() string { return o.shippingAddress }
func (o *Order) Status() Status          { return o.status }
func (o *Order) CouponCode() *string     { return o.couponCode }
func (o *Order) Lines() []Line           { return o.lines }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }

// UpdateStatus applies a staff-side transition. It returns true when the
// transition entered the cancelled state, which obliges the caller to restock
// every line.
func (o *Order) UpdateStatus(next Status) (restock bool, err error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if o.status == next {
		return false, ErrSameStatus
	}
	if o.status == StatusCancelled {
		return false, ErrAlreadyCancelled
	}
	if next == StatusShipped && o.status != StatusPaid {
		return false, ErrNotPaidYet
	}
	if next == StatusPending {
		return false, ErrPendingReentry
	}

	o.status = next
	return next == StatusCancelled, nil
}

// CancelByCustomer applies the customer-side cancellation rules: shipped,
// delivered and already-cancelled orders cannot be cancelled.
func (o *Order) CancelByCustomer() error {
	switch o.status {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return ErrNotCancellable
	}
	o.status = StatusCancelled
	return nil
}
