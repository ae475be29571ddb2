package dto

import "time"

type CreateBookingRequest struct {
	PropertyID   uint   `json:"propertyId" binding:"required"`
	RoomID       *uint  `json:"roomId"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
}

// BookingStatusRequest is the partner action on a booking lifecycle
type BookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type BookingGuestResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type BookingResponse struct {
	ID               uint                 `json:"id"`
	ConfirmationCode string               `json:"confirmationCode"`
	Guest            BookingGuestResponse `json:"guest"`
	PropertyID       uint                 `json:"propertyId"`
	PropertyName     string               `json:"propertyName"`
	RoomID           *uint                `json:"roomId,omitempty"`
	RoomType         string               `json:"roomType,omitempty"`
	Location         string               `json:"location"`
	Image            string               `json:"image"`
	CheckInDate      string               `json:"checkInDate"`
	CheckOutDate     string               `json:"checkOutDate"`
	Nights           int                  `json:"nights"`
	Adults           int                  `json:"adults"`
	Children         int                  `json:"children"`
	TotalAmount      float64              `json:"totalAmount"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}
