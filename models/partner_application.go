package models

import (
	"time"

	"stayhub/constants"
)

// PartnerApplication is a user's request to be verified as a partner.
// One application per user; status transitions are admin-only.
type PartnerApplication struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"userId" gorm:"uniqueIndex"`
	User         User   `json:"user" gorm:"foreignKey:UserID"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	PropertyType string `json:"propertyType"`

	// Document references are opaque; nothing here validates their content
	SelfieDoc          string `json:"selfieDoc"`
	IDFrontDoc         string `json:"idFrontDoc"`
	IDBackDoc          string `json:"idBackDoc"`
	BusinessLicenseDoc string `json:"businessLicenseDoc"`
	OwnershipProofDoc  string `json:"ownershipProofDoc"`
	TaxDoc             string `json:"taxDoc"`

	ReviewNotes string    `json:"reviewNotes"`
	Status      string    `json:"status" gorm:"default:pending;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsTerminal reports whether the application can no longer change status.
func (a *PartnerApplication) IsTerminal() bool {
	return a.Status == constants.ApplicationStatusApproved || a.Status == constants.ApplicationStatusRejected
}
