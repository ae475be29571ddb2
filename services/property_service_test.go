package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestApplyPropertyAction(t *testing.T) {
	cases := []struct {
		name       string
		status     string
		action     string
		wantStatus string
		wantErr    bool
	}{
		{"approve pending", constants.PropertyStatusPending, "approve", constants.PropertyStatusActive, false},
		{"suspend active", constants.PropertyStatusActive, "suspend", constants.PropertyStatusSuspended, false},
		{"activate suspended", constants.PropertyStatusSuspended, "activate", constants.PropertyStatusActive, false},
		{"approve active refused", constants.PropertyStatusActive, "approve", constants.PropertyStatusActive, true},
		{"approve suspended refused", constants.PropertyStatusSuspended, "approve", constants.PropertyStatusSuspended, true},
		{"activate pending refused", constants.PropertyStatusPending, "activate", constants.PropertyStatusPending, true},
		{"suspend pending refused", constants.PropertyStatusPending, "suspend", constants.PropertyStatusPending, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			property := models.Property{Status: tc.status}
			err := ApplyPropertyAction(&property, tc.action)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, property.Status)
		})
	}
}

func TestApplyPropertyActionUnknownToken(t *testing.T) {
	property := models.Property{Status: constants.PropertyStatusPending}

	err := ApplyPropertyAction(&property, "promote")

	assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
	assert.Equal(t, constants.PropertyStatusPending, property.Status)
}
