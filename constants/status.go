package constants

// User roles
const (
	RoleUser    = 0
	RoleAdmin   = 1
	RolePartner = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Property status
const (
	PropertyStatusPending   = "pending"
	PropertyStatusActive    = "active"
	PropertyStatusSuspended = "suspended"
)

// Partner application status
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusApproved    = "approved"
	ApplicationStatusRejected    = "rejected"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingActions maps a partner action token to the target booking status.
// Tokens outside this map are rejected, never defaulted.
var BookingActions = map[string]string{
	"confirm":  BookingStatusConfirmed,
	"reject":   BookingStatusCancelled,
	"complete": BookingStatusCompleted,
}

// PropertyActions maps an admin action token to the target property status.
var PropertyActions = map[string]string{
	"approve":  PropertyStatusActive,
	"suspend":  PropertyStatusSuspended,
	"activate": PropertyStatusActive,
}

// ApplicationStatuses is the set of statuses an admin may assign during review.
var ApplicationStatuses = map[string]bool{
	ApplicationStatusPending:     true,
	ApplicationStatusUnderReview: true,
	ApplicationStatusApproved:    true,
	ApplicationStatusRejected:    true,
}

// PropertyTypes is the fixed listing-type enumeration.
var PropertyTypes = map[string]bool{
	"hotel":      true,
	"apartment":  true,
	"villa":      true,
	"resort":     true,
	"guesthouse": true,
}
