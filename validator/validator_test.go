package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/dto"
	"stayhub/models"
)

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PropertyID:   1,
		CheckInDate:  "2024-06-10",
		CheckOutDate: "2024-06-13",
		Adults:       2,
		GuestName:    "Ana Costa",
		GuestEmail:   "ana@example.com",
	}
}

func TestValidateBookingRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validBookingRequest()
		checkIn, checkOut, err := ValidateBookingRequest(&req)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", checkIn.Format(DateLayout))
		assert.Equal(t, "2024-06-13", checkOut.Format(DateLayout))
	})

	t.Run("checkOut must be after checkIn", func(t *testing.T) {
		req := validBookingRequest()
		req.CheckOutDate = "2024-06-10"
		_, _, err := ValidateBookingRequest(&req)
		assert.Error(t, err)
	})

	t.Run("bad date format", func(t *testing.T) {
		req := validBookingRequest()
		req.CheckInDate = "10/06/2024"
		_, _, err := ValidateBookingRequest(&req)
		assert.Error(t, err)
	})

	t.Run("at least one adult", func(t *testing.T) {
		req := validBookingRequest()
		req.Adults = 0
		_, _, err := ValidateBookingRequest(&req)
		assert.Error(t, err)
	})

	t.Run("children must not be negative", func(t *testing.T) {
		req := validBookingRequest()
		req.Children = -1
		_, _, err := ValidateBookingRequest(&req)
		assert.Error(t, err)
	})

	t.Run("guest email required", func(t *testing.T) {
		req := validBookingRequest()
		req.GuestEmail = "not-an-email"
		_, _, err := ValidateBookingRequest(&req)
		assert.Error(t, err)
	})
}

func TestValidateApplicationStatus(t *testing.T) {
	assert.NoError(t, ValidateApplicationStatus("pending"))
	assert.NoError(t, ValidateApplicationStatus("under_review"))
	assert.NoError(t, ValidateApplicationStatus("approved"))
	assert.NoError(t, ValidateApplicationStatus("rejected"))

	assert.Error(t, ValidateApplicationStatus(""))
	assert.Error(t, ValidateApplicationStatus("escalated"))
	assert.Error(t, ValidateApplicationStatus("Approved"))
}

func TestValidateReview(t *testing.T) {
	review := models.Review{UserID: 1, PropertyID: 1, Star: 5}
	assert.NoError(t, ValidateReview(&review))

	review.Star = 0
	assert.Error(t, ValidateReview(&review))

	review.Star = 6
	assert.Error(t, ValidateReview(&review))
}

func TestValidateProperty(t *testing.T) {
	property := models.Property{
		Name:    "Harbor Hotel",
		City:    "Lisbon",
		Country: "Portugal",
		Type:    "hotel",
	}
	assert.NoError(t, ValidateProperty(&property))

	property.Type = "castle"
	assert.Error(t, ValidateProperty(&property))

	property.Type = "hotel"
	property.PriceMin = 200
	property.PriceMax = 100
	assert.Error(t, ValidateProperty(&property))
}

func TestValidateUser(t *testing.T) {
	user := models.User{Email: "ana@example.com", Password: "secret1"}
	assert.NoError(t, ValidateUser(&user))

	user.Password = "abc"
	assert.Error(t, ValidateUser(&user))

	user.Password = "secret1"
	user.Email = "nope"
	assert.Error(t, ValidateUser(&user))
}
