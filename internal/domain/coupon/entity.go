package coupon

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code format")
	ErrNonPositiveDiscount = errors.New("discount amount must be greater than zero")
	ErrExpiryInPast        = errors.New("expiry date must be in the future")
	ErrExpired             = errors.New("coupon has expired")
	ErrInactive            = errors.New("coupon is not active")
	ErrUsageLimitReached   = errors.New("coupon has reached its maximum usage limit")
	ErrPerUserLimitReached = errors.New("coupon already used the maximum number of times for this user")
)

const (
	DefaultMaxRedemptions        = 10
	DefaultMaxRedemptionsPerUser = 1
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Coupon struct {
	id            uuid.UUID
	code          Code
	discountCents int64
	expiresAt     time.Time
	active        bool
	maxTotal      int32
	maxPerUser    int32
	totalUsed     int32
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCoupon(code Code, discountCents int64, expiresAt time.Time, maxTotal, maxPerUser int32, now time.Time) (*Coupon, error) {
	if discountCents <= 0 {
		return nil, ErrNonPositiveDiscount
	}
	if !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	if maxTotal <= 0 {
		maxTotal = DefaultMaxRedemptions
	}
	if maxPerUser <= 0 {
		maxPerUser = DefaultMaxRedemptionsPerUser
	}

	return &Coupon{
		id:            uuid.New(),
		code:          code,
		discountCents: discountCents,
		expiresAt:     expiresAt,
		active:        true,
		maxTotal:      maxTotal,
		maxPerUser:    maxPerUser,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	discountCents int64,
	expiresAt time.Time,
	active bool,
	maxTotal, maxPerUser, totalUsed int32,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		code:          code,
		discountCents: discountCents,
		expiresAt:     expiresAt,
		active:        active,
		maxTotal:      maxTotal,
		maxPerUser:    maxPerUser,
		totalUsed:     totalUsed,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) DiscountCents() int64 { return c.discountCents }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
func (c *Coupon) IsActive() bool       { return c.active }
func (c *Coupon) MaxTotal() int32      { return c.maxTotal }
func (c *Coupon) MaxPerUser() int32    { return c.maxPerUser }
func (c *Coupon) TotalUsed() int32     { return c.totalUsed }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }

func (c *Coupon) IsExpiredAt(t time.Time) bool {
	return !c.expiresAt.After(t)
}

// IsRedeemableAt reports whether the coupon can be offered at all; the usage
// caps are checked separately so they can fail hard instead of being skipped.
func (c *Coupon) IsRedeemableAt(t time.Time) bool {
	return c.active && !c.IsExpiredAt(t)
}

// ValidateRedemption enforces both usage caps for a user with userUsed prior
// redemptions of this coupon.
func (c *Coupon) ValidateRedemption(userUsed int32) error {
	if c.totalUsed >= c.maxTotal {
		return ErrUsageLimitReached
	}
	if userUsed >= c.maxPerUser {
		return ErrPerUserLimitReached
	}
	return nil
}

// ApplyDiscount subtracts the discount from a subtotal, floored at zero.
func (c *Coupon) ApplyDiscount(subtotalCents int64) int64 {
	result := subtotalCents - c.discountCents
	if result < 0 {
		return 0
	}
	return result
}

var ErrActivateExpired = errors.New("an expired coupon cannot be reactivated")

// UpdateDetails applies an admin edit. Reactivating a coupon whose expiry has
// already passed is rejected.
func (c *Coupon) UpdateDetails(discountCents int64, expiresAt time.Time, active bool, maxTotal, maxPerUser int32, now time.Time) error {
	if discountCents <= 0 {
		return ErrNonPositiveDiscount
	}
	if active && !expiresAt.After(now) {
		return ErrActivateExpired
	}
	if maxTotal <= 0 {
		maxTotal = DefaultMaxRedemptions
	}
	if maxPerUser <= 0 {
		maxPerUser = DefaultMaxRedemptionsPerUser
	}

	c.discountCents = discountCents
	c.expiresAt = expiresAt
	c.active = active
	c.maxTotal = maxTotal
	c.maxPerUser = maxPerUser
	return nil
}

// Deactivate is used by the expiry sweeper and admin updates.
func (c *Coupon) Deactivate() {
	c.active = false
}
