package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"gorm.io/gorm"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

// BookingService owns booking lifecycle logic shared by handlers and jobs
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CalculateNights returns ceil((checkOut - checkIn) / 1 day)
func CalculateNights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

const confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateConfirmationCode produces a unique human-readable booking reference
func (s *BookingService) GenerateConfirmationCode() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := "SH-"
		for i := 0; i < 8; i++ {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationAlphabet))))
			if err != nil {
				return "", err
			}
			code += string(confirmationAlphabet[n.Int64()])
		}

		var count int64
		if err := s.db.Model(&models.Booking{}).Where("confirmation_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique confirmation code")
}

// HasOverlap reports whether an open booking already covers any night in
// [checkIn, checkOut) for the same room, or the same whole property when
// roomID is nil
func (s *BookingService) HasOverlap(propertyID uint, roomID *uint, checkIn, checkOut time.Time) (bool, error) {
	tx := s.db.Model(&models.Booking{}).
		Where("property_id = ?", propertyID).
		Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	if roomID != nil {
		tx = tx.Where("room_id = ?", *roomID)
	} else {
		tx = tx.Where("room_id IS NULL")
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssertPropertyOwnership verifies via an existence query that actorID is the
// partner owning propertyID. Embedded identifiers are never trusted; the check
// runs against the properties table on every privileged write.
func (s *BookingService) AssertPropertyOwnership(propertyID, actorID uint) error {
	var count int64
	if err := s.db.Model(&models.Property{}).
		Where("id = ? AND partner_id = ?", propertyID, actorID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrNotOwner
	}
	return nil
}

// ApplyAction maps a partner action token onto a booking and mutates the
// status in memory. Unknown tokens fail without touching the booking.
func ApplyAction(booking *models.Booking, action string) error {
	target, ok := constants.BookingActions[action]
	if !ok {
		return apperrors.ErrInvalidAction
	}

	state := models.GetBookingState(booking.Status)
	switch target {
	case constants.BookingStatusConfirmed:
		return state.Confirm(booking)
	case constants.BookingStatusCancelled:
		return state.Cancel(booking)
	case constants.BookingStatusCompleted:
		return state.Complete(booking)
	}
	return apperrors.ErrInvalidAction
}

// ChangeStatus loads a booking, verifies the actor owns its property and
// persists the status mapped from action
func (s *BookingService) ChangeStatus(bookingID uint, action string, actorID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.AssertPropertyOwnership(booking.PropertyID, actorID); err != nil {
		return nil, err
	}

	if err := ApplyAction(&booking, action); err != nil {
		return nil, err
	}

	booking.UpdatedAt = time.Now()
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CompleteElapsed marks confirmed bookings whose stay has ended as completed.
// Run daily by the cron sweep.
func (s *BookingService) CompleteElapsed(now time.Time) (int64, error) {
	res := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date < ?", constants.BookingStatusConfirmed, now).
		Update("status", constants.BookingStatusCompleted)
	return res.RowsAffected, res.Error
}
