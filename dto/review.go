package dto

import "time"

type CreateReviewRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	Star       int    `json:"star" binding:"required"`
	Comment    string `json:"comment"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"userName"`
	Star      int       `json:"star"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
