package dto

import "time"

type SubmitApplicationRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Location     string `json:"location"`
	PropertyType string `json:"propertyType"`

	SelfieDoc          string `json:"selfieDoc"`
	IDFrontDoc         string `json:"idFrontDoc"`
	IDBackDoc          string `json:"idBackDoc"`
	BusinessLicenseDoc string `json:"businessLicenseDoc"`
	OwnershipProofDoc  string `json:"ownershipProofDoc"`
	TaxDoc             string `json:"taxDoc"`
}

// ReviewApplicationRequest is the admin review action
type ReviewApplicationRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type ApplicationResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	FullName     string    `json:"fullName"`
	BusinessName string    `json:"businessName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	PropertyType string    `json:"propertyType"`
	ReviewNotes  string    `json:"reviewNotes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ApplicationStats are the per-status counts shown on the admin console
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"underReview"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}
