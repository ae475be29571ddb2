package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

func toApplicationResponse(app models.PartnerApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:           app.ID,
		UserID:       app.UserID,
		FullName:     app.FullName,
		BusinessName: app.BusinessName,
		Email:        app.Email,
		Phone:        app.Phone,
		Location:     app.Location,
		PropertyType: app.PropertyType,
		ReviewNotes:  app.ReviewNotes,
		Status:       app.Status,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
}

// SubmitApplication files the caller's partner application. One per user.
func SubmitApplication(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.PartnerApplication
	err := config.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		response.ConflictWithMessage(c, "an application has already been submitted for this account")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	app := models.PartnerApplication{
		UserID:             userID,
		FullName:           req.FullName,
		BusinessName:       req.BusinessName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		PropertyType:       req.PropertyType,
		SelfieDoc:          req.SelfieDoc,
		IDFrontDoc:         req.IDFrontDoc,
		IDBackDoc:          req.IDBackDoc,
		BusinessLicenseDoc: req.BusinessLicenseDoc,
		OwnershipProofDoc:  req.OwnershipProofDoc,
		TaxDoc:             req.TaxDoc,
	}

	if err := validator.ValidateApplication(&app); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&app).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "application submitted", toApplicationResponse(app))
}

// GetMyApplication returns the caller's own application
func GetMyApplication(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var app models.PartnerApplication
	if err := config.DB.Where("user_id = ?", userID).First(&app).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toApplicationResponse(app))
}

// GetApplications lists applications for the admin console with per-status
// counts in the stats block
func GetApplications(c *gin.Context) {
	statusFilter := c.Query("status")
	if statusFilter != "" {
		if err := validator.ValidateApplicationStatus(statusFilter); err != nil {
			response.ValidationError(c, err.Error())
			return
		}
	}

	tx := config.DB.Model(&models.PartnerApplication{}).Order("created_at DESC")
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var apps []models.PartnerApplication
	if err := tx.Find(&apps).Error; err != nil {
		response.ServerError(c)
		return
	}

	appService := services.NewApplicationService(config.DB)
	stats, err := appService.Stats()
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, toApplicationResponse(app))
	}

	response.SuccessWithStats(c, result, stats)
}

// ReviewApplication applies an admin review decision
func ReviewApplication(c *gin.Context) {
	var req dto.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateApplicationStatus(req.Status); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	appService := services.NewApplicationService(config.DB)
	app, err := appService.Review(req.ID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrApplicationNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrStatusTerminal):
			response.BadRequest(c, "application has already been decided")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, toApplicationResponse(*app))
}
