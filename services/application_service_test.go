package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestReviewApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	user := models.User{Name: "Ana", Email: "ana@example.com", Role: constants.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	app := models.PartnerApplication{
		UserID:       user.ID,
		FullName:     "Ana Costa",
		BusinessName: "Costa Stays",
		Email:        "ana@example.com",
		Phone:        "+351912345678",
	}
	require.NoError(t, db.Create(&app).Error)

	t.Run("unknown status is refused", func(t *testing.T) {
		_, err := svc.Review(app.ID, "escalated", "")
		assert.Error(t, err)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := svc.Review(99999, constants.ApplicationStatusUnderReview, "")
		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	})

	t.Run("moves to under_review", func(t *testing.T) {
		updated, err := svc.Review(app.ID, constants.ApplicationStatusUnderReview, "docs look fine")
		require.NoError(t, err)
		assert.Equal(t, constants.ApplicationStatusUnderReview, updated.Status)
		assert.Equal(t, "docs look fine", updated.ReviewNotes)
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		updated, err := svc.Review(app.ID, constants.ApplicationStatusUnderReview, "")
		require.NoError(t, err)
		assert.Equal(t, constants.ApplicationStatusUnderReview, updated.Status)
	})

	t.Run("approval grants the partner role", func(t *testing.T) {
		updated, err := svc.Review(app.ID, constants.ApplicationStatusApproved, "welcome aboard")
		require.NoError(t, err)
		assert.Equal(t, constants.ApplicationStatusApproved, updated.Status)

		var reloadedUser models.User
		require.NoError(t, db.First(&reloadedUser, user.ID).Error)
		assert.Equal(t, constants.RolePartner, reloadedUser.Role)
	})

	t.Run("terminal status cannot change", func(t *testing.T) {
		_, err := svc.Review(app.ID, constants.ApplicationStatusRejected, "")
		assert.ErrorIs(t, err, apperrors.ErrStatusTerminal)

		var reloaded models.PartnerApplication
		require.NoError(t, db.First(&reloaded, app.ID).Error)
		assert.Equal(t, constants.ApplicationStatusApproved, reloaded.Status)
	})

	t.Run("repeating the terminal status still succeeds", func(t *testing.T) {
		updated, err := svc.Review(app.ID, constants.ApplicationStatusApproved, "")
		require.NoError(t, err)
		assert.Equal(t, constants.ApplicationStatusApproved, updated.Status)
	})
}

func TestApplicationStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	statuses := []string{
		constants.ApplicationStatusPending,
		constants.ApplicationStatusPending,
		constants.ApplicationStatusUnderReview,
		constants.ApplicationStatusApproved,
		constants.ApplicationStatusRejected,
	}
	for i, status := range statuses {
		app := models.PartnerApplication{
			UserID:       uint(i + 1),
			FullName:     "Applicant",
			BusinessName: "Biz",
			Email:        "a@example.com",
			Phone:        "+351900000000",
			Status:       status,
		}
		require.NoError(t, db.Create(&app).Error)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.UnderReview)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(1), stats.Rejected)
}
