package services

import (
	"errors"

	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
)

// ApplicationService owns the partner verification workflow
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Review sets an application's status and notes. Requesting the current
// status again is a no-op success; leaving a terminal state is refused.
// Approval grants the owning user the partner role.
func (s *ApplicationService) Review(appID uint, status, notes string) (*models.PartnerApplication, error) {
	if !constants.ApplicationStatuses[status] {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "status is not a recognized review status", nil)
	}

	var app models.PartnerApplication
	if err := s.db.First(&app, appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	if app.Status == status {
		if notes != "" && notes != app.ReviewNotes {
			app.ReviewNotes = notes
			if err := s.db.Save(&app).Error; err != nil {
				return nil, err
			}
		}
		return &app, nil
	}

	if app.IsTerminal() {
		return nil, apperrors.ErrStatusTerminal
	}

	app.Status = status
	if notes != "" {
		app.ReviewNotes = notes
	}
	if err := s.db.Save(&app).Error; err != nil {
		return nil, err
	}

	if status == constants.ApplicationStatusApproved {
		if err := s.db.Model(&models.User{}).
			Where("id = ?", app.UserID).
			Update("role", constants.RolePartner).Error; err != nil {
			return nil, err
		}
	}

	return &app, nil
}

// Stats counts applications per review status for the admin console
func (s *ApplicationService) Stats() (dto.ApplicationStats, error) {
	var stats dto.ApplicationStats

	count := func(status string) (int64, error) {
		var n int64
		err := s.db.Model(&models.PartnerApplication{}).Where("status = ?", status).Count(&n).Error
		return n, err
	}

	var err error
	if stats.Pending, err = count(constants.ApplicationStatusPending); err != nil {
		return stats, err
	}
	if stats.UnderReview, err = count(constants.ApplicationStatusUnderReview); err != nil {
		return stats, err
	}
	if stats.Approved, err = count(constants.ApplicationStatusApproved); err != nil {
		return stats, err
	}
	if stats.Rejected, err = count(constants.ApplicationStatusRejected); err != nil {
		return stats, err
	}
	stats.Total = stats.Pending + stats.UnderReview + stats.Approved + stats.Rejected

	return stats, nil
}
