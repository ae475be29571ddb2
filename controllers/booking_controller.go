package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/utils"
	"stayhub/validator"
)

func partnerBookingsCacheKey(partnerID uint) string {
	return fmt.Sprintf("bookings:partner:%d", partnerID)
}

func invalidatePartnerBookingsCache(partnerID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("could not reach redis for cache invalidation: %v", err)
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, partnerBookingsCacheKey(partnerID)); err != nil {
		log.Printf("could not drop partner bookings cache: %v", err)
	}
}

func toBookingResponse(b models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		Guest: dto.BookingGuestResponse{
			Name:        b.GuestName,
			Email:       b.GuestEmail,
			PhoneNumber: b.GuestPhone,
		},
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		RoomID:       b.RoomID,
		RoomType:     b.RoomType,
		Location:     b.Location,
		Image:        b.Image,
		CheckInDate:  b.CheckInDate.Format(validator.DateLayout),
		CheckOutDate: b.CheckOutDate.Format(validator.DateLayout),
		Nights:       b.Nights,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// CreateBooking places a stay request on an active property
func CreateBooking(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingRequest(&req)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if property.Status != constants.PropertyStatusActive {
		response.BadRequest(c, "property is not open for booking")
		return
	}

	var room *models.Room
	if req.RoomID != nil {
		var r models.Room
		if err := config.DB.First(&r, *req.RoomID).Error; err != nil || r.PropertyID != property.ID {
			response.BadRequest(c, "room does not belong to this property")
			return
		}
		if r.Capacity < req.Adults+req.Children {
			response.BadRequest(c, "room cannot host this many guests")
			return
		}
		room = &r
	}

	bookingService := services.NewBookingService(config.DB)

	overlap, err := bookingService.HasOverlap(property.ID, req.RoomID, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}
	if overlap {
		response.BadRequest(c, "the selected dates are no longer available")
		return
	}

	nights := services.CalculateNights(checkIn, checkOut)

	nightlyRate := property.PriceMin
	roomType := ""
	if room != nil {
		nightlyRate = room.Rate
		roomType = room.RoomType
	}

	code, err := bookingService.GenerateConfirmationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	image := ""
	if len(property.Images) > 0 {
		image = property.Images[0]
	}

	booking := models.Booking{
		UserID:           &userID,
		PropertyID:       property.ID,
		RoomID:           req.RoomID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Nights:           nights,
		Adults:           req.Adults,
		Children:         req.Children,
		TotalAmount:      nightlyRate * float64(nights),
		Status:           constants.BookingStatusPending,
		ConfirmationCode: code,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       req.GuestPhone,
		PropertyName:     property.Name,
		RoomType:         roomType,
		Location:         property.City + ", " + property.Country,
		Image:            image,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePartnerBookingsCache(property.PartnerID)

	if err := services.SendBookingEmail(
		booking.GuestEmail,
		booking.ConfirmationCode,
		booking.PropertyName,
		req.CheckInDate,
		req.CheckOutDate,
		booking.TotalAmount,
	); err != nil {
		utils.LogError("could not send booking email for %s: %v", booking.ConfirmationCode, err)
	}

	response.SuccessWithMessage(c, "booking created", toBookingResponse(booking))
}

// GetMyBookings lists the caller's own bookings, newest first
func GetMyBookings(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)
	total := len(bookings)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	result := make([]dto.BookingResponse, 0, end-start)
	for _, b := range bookings[start:end] {
		result = append(result, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetBookingDetail returns one booking to its guest, the property's partner
// or an admin
func GetBookingDetail(c *gin.Context) {
	userID, userRole, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	allowed := userRole == constants.RoleAdmin
	if !allowed && booking.UserID != nil && *booking.UserID == userID {
		allowed = true
	}
	if !allowed {
		bookingService := services.NewBookingService(config.DB)
		allowed = bookingService.AssertPropertyOwnership(booking.PropertyID, userID) == nil
	}
	if !allowed {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// GetPartnerBookings lists bookings across the caller's properties
func GetPartnerBookings(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cacheKey := partnerBookingsCacheKey(userID)
	var bookings []models.Booking

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &bookings); err != nil {
			bookings = nil
		}
	}

	if len(bookings) == 0 {
		if err := config.DB.Where("property_id IN (?)",
			config.DB.Model(&models.Property{}).Select("id").Where("partner_id = ?", userID)).
			Order("created_at DESC").
			Find(&bookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, bookings, 10*time.Minute); err != nil {
				log.Printf("could not cache partner bookings: %v", err)
			}
		}
	}

	statusFilter := c.Query("status")
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		filtered = append(filtered, b)
	}

	page, limit := parsePagination(c)
	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	result := make([]dto.BookingResponse, 0, end-start)
	for _, b := range filtered[start:end] {
		result = append(result, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// ChangeBookingStatus applies a partner action token to a booking
func ChangeBookingStatus(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookingService := services.NewBookingService(config.DB)
	booking, err := bookingService.ChangeStatus(req.ID, req.Action, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrNotOwner):
			response.Forbidden(c)
		case errors.Is(err, apperrors.ErrInvalidAction):
			response.BadRequest(c, "unrecognized action")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidatePartnerBookingsCache(userID)

	response.Success(c, toBookingResponse(*booking))
}
