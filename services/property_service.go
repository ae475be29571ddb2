package services

import (
	"errors"

	"stayhub/constants"
	apperrors "stayhub/errors"
	"stayhub/models"
)

// ApplyPropertyAction maps an admin action token onto a property status.
// approve only moves a listing out of pending; activate only lifts a
// suspension; suspend only acts on an active listing.
func ApplyPropertyAction(property *models.Property, action string) error {
	target, ok := constants.PropertyActions[action]
	if !ok {
		return apperrors.ErrInvalidAction
	}

	switch action {
	case "approve":
		if property.Status != constants.PropertyStatusPending {
			return errors.New("only pending properties can be approved")
		}
	case "activate":
		if property.Status != constants.PropertyStatusSuspended {
			return errors.New("only suspended properties can be activated")
		}
	case "suspend":
		if property.Status != constants.PropertyStatusActive {
			return errors.New("only active properties can be suspended")
		}
	}

	property.Status = target
	return nil
}
