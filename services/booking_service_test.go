package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestCalculateNights(t *testing.T) {
	assert.Equal(t, 3, CalculateNights(date(2024, 3, 1), date(2024, 3, 4)))
	assert.Equal(t, 1, CalculateNights(date(2024, 3, 1), date(2024, 3, 2)))

	// Partial days round up
	checkIn := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, CalculateNights(checkIn, checkOut))

	checkOut = time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CalculateNights(checkIn, checkOut))
}

func TestGenerateConfirmationCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	pattern := regexp.MustCompile(`^SH-[A-HJ-NP-Z2-9]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		code, err := svc.GenerateConfirmationCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}

func TestHasOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	property := seedProperty(t, db, 1, "Harbor Hotel", "harbor-hotel", constants.PropertyStatusActive)

	existing := models.Booking{
		PropertyID:   property.ID,
		CheckInDate:  date(2024, 6, 10),
		CheckOutDate: date(2024, 6, 13),
		Status:       constants.BookingStatusConfirmed,
		GuestEmail:   "guest@example.com",
	}
	require.NoError(t, db.Create(&existing).Error)

	overlap, err := svc.HasOverlap(property.ID, nil, date(2024, 6, 12), date(2024, 6, 14))
	require.NoError(t, err)
	assert.True(t, overlap)

	// Back-to-back stays do not collide
	overlap, err = svc.HasOverlap(property.ID, nil, date(2024, 6, 13), date(2024, 6, 15))
	require.NoError(t, err)
	assert.False(t, overlap)

	// A different room does not collide with a whole-property booking
	roomID := uint(42)
	overlap, err = svc.HasOverlap(property.ID, &roomID, date(2024, 6, 11), date(2024, 6, 12))
	require.NoError(t, err)
	assert.False(t, overlap)

	// Cancelled bookings release their dates
	require.NoError(t, db.Model(&models.Booking{}).
		Where("id = ?", existing.ID).
		Update("status", constants.BookingStatusCancelled).Error)
	overlap, err = svc.HasOverlap(property.ID, nil, date(2024, 6, 12), date(2024, 6, 14))
	require.NoError(t, err)
	assert.False(t, overlap)
}

func TestAssertPropertyOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	property := seedProperty(t, db, 7, "Sea View", "sea-view", constants.PropertyStatusActive)

	assert.NoError(t, svc.AssertPropertyOwnership(property.ID, 7))
	assert.ErrorIs(t, svc.AssertPropertyOwnership(property.ID, 8), apperrors.ErrNotOwner)
	assert.ErrorIs(t, svc.AssertPropertyOwnership(9999, 7), apperrors.ErrNotOwner)
}

func TestChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	property := seedProperty(t, db, 7, "Sea View", "sea-view", constants.PropertyStatusActive)

	newBooking := func(status string) models.Booking {
		b := models.Booking{
			PropertyID:       property.ID,
			CheckInDate:      date(2024, 7, 1),
			CheckOutDate:     date(2024, 7, 3),
			Status:           status,
			GuestEmail:       "guest@example.com",
			ConfirmationCode: testCode(),
		}
		require.NoError(t, db.Create(&b).Error)
		return b
	}

	t.Run("confirm pending", func(t *testing.T) {
		b := newBooking(constants.BookingStatusPending)
		updated, err := svc.ChangeStatus(b.ID, "confirm", 7)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusConfirmed, updated.Status)
	})

	t.Run("complete confirmed", func(t *testing.T) {
		b := newBooking(constants.BookingStatusConfirmed)
		updated, err := svc.ChangeStatus(b.ID, "complete", 7)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCompleted, updated.Status)
	})

	t.Run("reject pending", func(t *testing.T) {
		b := newBooking(constants.BookingStatusPending)
		updated, err := svc.ChangeStatus(b.ID, "reject", 7)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCancelled, updated.Status)
	})

	t.Run("unknown action leaves status untouched", func(t *testing.T) {
		b := newBooking(constants.BookingStatusPending)
		_, err := svc.ChangeStatus(b.ID, "archive", 7)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAction)

		var reloaded models.Booking
		require.NoError(t, db.First(&reloaded, b.ID).Error)
		assert.Equal(t, constants.BookingStatusPending, reloaded.Status)
	})

	t.Run("complete pending is refused", func(t *testing.T) {
		b := newBooking(constants.BookingStatusPending)
		_, err := svc.ChangeStatus(b.ID, "complete", 7)
		assert.Error(t, err)

		var reloaded models.Booking
		require.NoError(t, db.First(&reloaded, b.ID).Error)
		assert.Equal(t, constants.BookingStatusPending, reloaded.Status)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		b := newBooking(constants.BookingStatusPending)
		_, err := svc.ChangeStatus(b.ID, "confirm", 8)
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.ChangeStatus(99999, "confirm", 7)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestCompleteElapsed(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	property := seedProperty(t, db, 1, "Old Mill", "old-mill", constants.PropertyStatusActive)

	now := date(2024, 8, 15)

	ended := models.Booking{
		PropertyID:       property.ID,
		CheckInDate:      date(2024, 8, 1),
		CheckOutDate:     date(2024, 8, 5),
		Status:           constants.BookingStatusConfirmed,
		ConfirmationCode: testCode(),
	}
	ongoing := models.Booking{
		PropertyID:       property.ID,
		CheckInDate:      date(2024, 8, 14),
		CheckOutDate:     date(2024, 8, 20),
		Status:           constants.BookingStatusConfirmed,
		ConfirmationCode: testCode(),
	}
	pendingPast := models.Booking{
		PropertyID:       property.ID,
		CheckInDate:      date(2024, 8, 1),
		CheckOutDate:     date(2024, 8, 5),
		Status:           constants.BookingStatusPending,
		ConfirmationCode: testCode(),
	}
	require.NoError(t, db.Create(&ended).Error)
	require.NoError(t, db.Create(&ongoing).Error)
	require.NoError(t, db.Create(&pendingPast).Error)

	n, err := svc.CompleteElapsed(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, ended.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, reloaded.Status)

	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, ongoing.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, reloaded.Status)

	// The sweep only touches confirmed stays
	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, pendingPast.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, reloaded.Status)
}
