//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/coupon"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newCoupon(t *testing.T, maxTotal, maxPerUser int32) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCode("SAVE5")
	require.NoError(t, err)
	c, err := coupon.NewCoupon(code, 500, now.Add(24*time.Hour), maxTotal, maxPerUser, now)
	require.NoError(t, err)
	return c
}

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "uppercased and trimmed", raw: "  save5 ", want: "SAVE5"},
		{name: "digits only", raw: "12345", want: "12345"},
		{name: "too short", raw: "AB", errIs: coupon.ErrInvalidCouponCode},
		{name: "symbols rejected", raw: "SAVE-5", errIs: coupon.ErrInvalidCouponCode},
		{name: "empty rejected", raw: "", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestNewCoupon(t *testing.T) {
	code, _ := coupon.NewCode("SAVE5")

	t.Run("defaults applied when caps omitted", func(t *testing.T) {
		c, err := coupon.NewCoupon(code, 500, now.Add(time.Hour), 0, 0, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.True(t, c.IsActive())
		assert.EqualValues(t, coupon.DefaultMaxRedemptions, c.MaxTotal())
		assert.EqualValues(t, coupon.DefaultMaxRedemptionsPerUser, c.MaxPerUser())
	})

	t.Run("non-positive discount rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon(code, 0, now.Add(time.Hour), 0, 0, now)
		assert.ErrorIs(t, err, coupon.ErrNonPositiveDiscount)
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon(code, 500, now.Add(-time.Hour), 0, 0, now)
		assert.ErrorIs(t, err, coupon.ErrExpiryInPast)
	})
}

func TestRedeemability(t *testing.T) {
	c := newCoupon(t, 10, 1)

	assert.True(t, c.IsRedeemableAt(now))
	assert.False(t, c.IsRedeemableAt(now.Add(48*time.Hour)))

	c.Deactivate()
	assert.False(t, c.IsRedeemableAt(now))
}

func TestValidateRedemption(t *testing.T) {
	t.Run("within both caps", func(t *testing.T) {
		c := newCoupon(t, 2, 2)
		assert.NoError(t, c.ValidateRedemption(1))
	})

	t.Run("global cap exhausted", func(t *testing.T) {
		code, err := coupon.NewCode("SAVE5")
		require.NoError(t, err)
		c := coupon.ReconstructCoupon(uuid.New(), code, 500, now.Add(time.Hour), true, 2, 5, 2, now, now)
		assert.ErrorIs(t, c.ValidateRedemption(0), coupon.ErrUsageLimitReached)
	})

	t.Run("per-user cap exhausted", func(t *testing.T) {
		c := newCoupon(t, 10, 1)
		assert.ErrorIs(t, c.ValidateRedemption(1), coupon.ErrPerUserLimitReached)
	})
}

func TestApplyDiscount(t *testing.T) {
	c := newCoupon(t, 10, 1)

	assert.EqualValues(t, 4000, c.ApplyDiscount(4500))
	assert.EqualValues(t, 0, c.ApplyDiscount(300))
	assert.EqualValues(t, 0, c.ApplyDiscount(500))
}

func TestUpdateDetails(t *testing.T) {
	t.Run("edits take effect", func(t *testing.T) {
		c := newCoupon(t, 10, 1)
		err := c.UpdateDetails(750, now.Add(72*time.Hour), true, 20, 2, now)
		require.NoError(t, err)
		assert.EqualValues(t, 750, c.DiscountCents())
		assert.EqualValues(t, 20, c.MaxTotal())
		assert.EqualValues(t, 2, c.MaxPerUser())
	})

	t.Run("reactivating an expired coupon rejected", func(t *testing.T) {
		c := newCoupon(t, 10, 1)
		err := c.UpdateDetails(500, now.Add(-time.Hour), true, 10, 1, now)
		assert.ErrorIs(t, err, coupon.ErrActivateExpired)
	})

	t.Run("deactivating with past expiry allowed", func(t *testing.T) {
		c := newCoupon(t, 10, 1)
		err := c.UpdateDetails(500, now.Add(-time.Hour), false, 10, 1, now)
		require.NoError(t, err)
		assert.False(t, c.IsActive())
	})
}
