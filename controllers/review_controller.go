package controllers

import (
	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

// CreateReview records a rating for a property the caller has stayed at and
// refreshes the property's aggregate rating
func CreateReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review := models.Review{
		UserID:     userID,
		PropertyID: req.PropertyID,
		Star:       req.Star,
		Comment:    req.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Only guests with a completed stay may review
	var stays int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND property_id = ? AND status = ?",
			userID, req.PropertyID, constants.BookingStatusCompleted).
		Count(&stays).Error; err != nil {
		response.ServerError(c)
		return
	}
	if stays == 0 {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.UpdatePropertyRating(req.PropertyID); err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertyCache()

	response.Success(c, review)
}

// GetPropertyReviews lists reviews of a property, newest first
func GetPropertyReviews(c *gin.Context) {
	var property models.Property
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").
		Where("property_id = ?", property.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, dto.ReviewResponse{
			ID:        r.ID,
			UserName:  r.User.Name,
			Star:      r.Star,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	response.Success(c, result)
}
