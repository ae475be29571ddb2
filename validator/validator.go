package validator

import (
	"regexp"
	"time"

	playground "github.com/go-playground/validator/v10"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

// DateLayout is the wire format for check-in/check-out dates
const DateLayout = "2006-01-02"

var validate = playground.New()

// ValidateStruct runs tag-based validation on a bound request body
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "request body failed validation", err)
	}
	return nil
}

// ValidateUser checks a user record before persisting
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must be at least 6 characters", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "phone number is not valid", nil)
	}

	if user.Role < constants.RoleUser || user.Role > constants.RolePartner {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "role is not valid", nil)
	}

	return nil
}

// ValidateProperty checks a property record before persisting
func ValidateProperty(property *models.Property) error {
	if property.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "property name is required", nil)
	}

	if err := property.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if property.City == "" || property.Country == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "city and country are required", nil)
	}

	if property.PriceMin < 0 || property.PriceMax < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "prices must not be negative", nil)
	}

	if property.PriceMax > 0 && property.PriceMax < property.PriceMin {
		return errors.NewAppError(errors.ErrCodeValidation, "priceMax must not be below priceMin", nil)
	}

	return nil
}

// ValidateRoom checks a room record before persisting
func ValidateRoom(room *models.Room) error {
	if room.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "propertyId is required", nil)
	}

	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomType is required", nil)
	}

	if err := room.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if room.Rate <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "rate must be positive", nil)
	}

	return nil
}

// ValidateBookingRequest checks a booking request and returns the parsed stay dates
func ValidateBookingRequest(req *dto.CreateBookingRequest) (time.Time, time.Time, error) {
	if req.PropertyID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "propertyId is required", nil)
	}

	checkIn, err := time.Parse(DateLayout, req.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "checkInDate must be YYYY-MM-DD", err)
	}

	checkOut, err := time.Parse(DateLayout, req.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "checkOutDate must be YYYY-MM-DD", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "checkOutDate must be after checkInDate", nil)
	}

	if req.Adults < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "at least one adult is required", nil)
	}

	if req.Children < 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "children must not be negative", nil)
	}

	if req.GuestName == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "guestName is required", nil)
	}

	if req.GuestEmail == "" || !isValidEmail(req.GuestEmail) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidEmail, "guestEmail is not valid", nil)
	}

	if req.GuestPhone != "" && !isValidPhone(req.GuestPhone) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidPhone, "guestPhone is not valid", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateApplication checks a partner application submission
func ValidateApplication(app *models.PartnerApplication) error {
	if app.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "fullName is required", nil)
	}

	if app.BusinessName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "businessName is required", nil)
	}

	if app.Email == "" || !isValidEmail(app.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}

	if app.Phone == "" || !isValidPhone(app.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "phone is not valid", nil)
	}

	if app.PropertyType != "" && !constants.PropertyTypes[app.PropertyType] {
		return errors.NewAppError(errors.ErrCodeValidation, "propertyType is not valid", nil)
	}

	return nil
}

// ValidateApplicationStatus enforces membership in the review status set
func ValidateApplicationStatus(status string) error {
	if status == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "status is required", nil)
	}

	if !constants.ApplicationStatuses[status] {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "status is not a recognized review status", nil)
	}

	return nil
}

// ValidateReview checks a review before persisting
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "userId is required", nil)
	}

	if review.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "propertyId is required", nil)
	}

	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "star rating must be between 1 and 5", nil)
	}

	return nil
}

// ValidateEmail checks an email address
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}
	return nil
}

// ValidatePhone checks a phone number
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "phone number is not valid", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{9,14}$`)
	return phoneRegex.MatchString(phone)
}
