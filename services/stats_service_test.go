package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	"stayhub/models"
)

func TestGetRevenueStats(t *testing.T) {
	db := newTestDB(t)

	bookings := []models.Booking{
		{PropertyID: 1, PropertyName: "Harbor Hotel", TotalAmount: 100, Status: constants.BookingStatusCompleted, GuestEmail: "a@example.com"},
		{PropertyID: 2, PropertyName: "Sea View", TotalAmount: 200, Status: constants.BookingStatusConfirmed, GuestEmail: "b@example.com"},
		{PropertyID: 1, PropertyName: "Harbor Hotel", TotalAmount: 1000, Status: constants.BookingStatusCancelled, GuestEmail: "c@example.com"},
	}
	for i := range bookings {
		bookings[i].ConfirmationCode = testCode()
		require.NoError(t, db.Create(&bookings[i]).Error)
	}

	stats, err := GetRevenueStats(db)
	require.NoError(t, err)
	assert.Equal(t, float64(300), stats.TotalRevenue)
	assert.Equal(t, float64(150), stats.AverageBookingValue)
	assert.Equal(t, int64(2), stats.BookingCount)
}

func TestGetRevenueStatsEmpty(t *testing.T) {
	db := newTestDB(t)

	stats, err := GetRevenueStats(db)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AverageBookingValue)
	assert.Zero(t, stats.BookingCount)
}

func TestGetTopProperties(t *testing.T) {
	db := newTestDB(t)

	bookings := []models.Booking{
		{PropertyID: 1, PropertyName: "Harbor Hotel", TotalAmount: 100, Status: constants.BookingStatusCompleted},
		{PropertyID: 1, PropertyName: "Harbor Hotel", TotalAmount: 150, Status: constants.BookingStatusConfirmed},
		{PropertyID: 2, PropertyName: "Sea View", TotalAmount: 400, Status: constants.BookingStatusCompleted},
		{PropertyID: 3, PropertyName: "Old Mill", TotalAmount: 50, Status: constants.BookingStatusCompleted},
		{PropertyID: 4, PropertyName: "Hidden", TotalAmount: 900, Status: constants.BookingStatusCancelled},
	}
	for i := range bookings {
		bookings[i].ConfirmationCode = testCode()
		require.NoError(t, db.Create(&bookings[i]).Error)
	}

	top, err := GetTopProperties(db, 4)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "Sea View", top[0].PropertyName)
	assert.Equal(t, float64(400), top[0].Revenue)
	assert.Equal(t, "Harbor Hotel", top[1].PropertyName)
	assert.Equal(t, float64(250), top[1].Revenue)
	assert.Equal(t, 2, top[1].BookingCount)
	assert.Equal(t, "Old Mill", top[2].PropertyName)
}

func TestGetMonthlyRevenue(t *testing.T) {
	db := newTestDB(t)

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{PropertyID: 1, TotalAmount: 100, Status: constants.BookingStatusCompleted, CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{PropertyID: 1, TotalAmount: 50, Status: constants.BookingStatusConfirmed, CreatedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{PropertyID: 1, TotalAmount: 70, Status: constants.BookingStatusCompleted, CreatedAt: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)},
		{PropertyID: 1, TotalAmount: 999, Status: constants.BookingStatusCompleted, CreatedAt: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)},
	}
	for i := range bookings {
		bookings[i].ConfirmationCode = testCode()
		require.NoError(t, db.Create(&bookings[i]).Error)
	}

	months, err := GetMonthlyRevenue(db, 6, now)
	require.NoError(t, err)
	require.Len(t, months, 6)

	assert.Equal(t, "2023-12", months[0].Month)
	assert.Zero(t, months[0].Revenue, "months outside the window are not included")

	assert.Equal(t, "2024-04", months[4].Month)
	assert.Equal(t, float64(70), months[4].Revenue)
	assert.Equal(t, 1, months[4].BookingCount)

	assert.Equal(t, "2024-05", months[5].Month)
	assert.Equal(t, float64(150), months[5].Revenue)
	assert.Equal(t, 2, months[5].BookingCount)
}

func TestCountActiveUsers(t *testing.T) {
	db := newTestDB(t)

	bookings := []models.Booking{
		{PropertyID: 1, GuestEmail: "a@example.com", Status: constants.BookingStatusCompleted},
		{PropertyID: 2, GuestEmail: "a@example.com", Status: constants.BookingStatusConfirmed},
		{PropertyID: 1, GuestEmail: "b@example.com", Status: constants.BookingStatusPending},
		{PropertyID: 1, GuestEmail: "", Status: constants.BookingStatusPending},
	}
	for i := range bookings {
		bookings[i].ConfirmationCode = testCode()
		require.NoError(t, db.Create(&bookings[i]).Error)
	}

	count, err := CountActiveUsers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
