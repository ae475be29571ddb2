package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
)

func TestBookingStateTransitions(t *testing.T) {
	cases := []struct {
		name       string
		from       string
		op         func(BookingState, *Booking) error
		wantErr    bool
		wantStatus string
	}{
		{"pending confirm", constants.BookingStatusPending, BookingState.Confirm, false, constants.BookingStatusConfirmed},
		{"pending cancel", constants.BookingStatusPending, BookingState.Cancel, false, constants.BookingStatusCancelled},
		{"pending complete", constants.BookingStatusPending, BookingState.Complete, true, constants.BookingStatusPending},
		{"confirmed confirm", constants.BookingStatusConfirmed, BookingState.Confirm, true, constants.BookingStatusConfirmed},
		{"confirmed cancel", constants.BookingStatusConfirmed, BookingState.Cancel, false, constants.BookingStatusCancelled},
		{"confirmed complete", constants.BookingStatusConfirmed, BookingState.Complete, false, constants.BookingStatusCompleted},
		{"completed confirm", constants.BookingStatusCompleted, BookingState.Confirm, true, constants.BookingStatusCompleted},
		{"completed cancel", constants.BookingStatusCompleted, BookingState.Cancel, true, constants.BookingStatusCompleted},
		{"completed complete", constants.BookingStatusCompleted, BookingState.Complete, true, constants.BookingStatusCompleted},
		{"cancelled confirm", constants.BookingStatusCancelled, BookingState.Confirm, true, constants.BookingStatusCancelled},
		{"cancelled cancel", constants.BookingStatusCancelled, BookingState.Cancel, true, constants.BookingStatusCancelled},
		{"cancelled complete", constants.BookingStatusCancelled, BookingState.Complete, true, constants.BookingStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := &Booking{Status: tc.from}
			err := tc.op(GetBookingState(tc.from), booking)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, booking.Status)
		})
	}
}

func TestGetBookingStateDefaultsToPending(t *testing.T) {
	booking := &Booking{Status: "garbage"}
	state := GetBookingState(booking.Status)
	assert.IsType(t, &PendingState{}, state)
}
