package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

// GetPartnerRooms lists rooms of one of the caller's properties
func GetPartnerRooms(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	propertyIDStr := c.Query("propertyId")
	propertyID, err := strconv.ParseUint(propertyIDStr, 10, 64)
	if err != nil || propertyID == 0 {
		response.BadRequest(c, "propertyId query parameter is required")
		return
	}

	bookingService := services.NewBookingService(config.DB)
	if err := bookingService.AssertPropertyOwnership(uint(propertyID), userID); err != nil {
		response.Forbidden(c)
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("property_id = ?", propertyID).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rooms)
}

// CreateRoom adds a room to a property the caller owns
func CreateRoom(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookingService := services.NewBookingService(config.DB)
	if err := bookingService.AssertPropertyOwnership(req.PropertyID, userID); err != nil {
		response.Forbidden(c)
		return
	}

	room := models.Room{
		PropertyID:  req.PropertyID,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		Rate:        req.Rate,
		Description: req.Description,
		Images:      req.Images,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.Success(c, room)
}

// UpdateRoom edits a room on a property the caller owns
func UpdateRoom(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)
	if err := bookingService.AssertPropertyOwnership(room.PropertyID, userID); err != nil {
		response.Forbidden(c)
		return
	}

	if req.RoomType != "" {
		room.RoomType = req.RoomType
	}
	if req.Capacity != 0 {
		room.Capacity = req.Capacity
	}
	if req.Rate != 0 {
		room.Rate = req.Rate
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Images != nil {
		room.Images = req.Images
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.Success(c, room)
}
