package models

import (
	"time"
)

type Booking struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           *uint     `json:"userId"`
	User             *User     `json:"user" gorm:"foreignKey:UserID"`
	PropertyID       uint      `json:"propertyId" gorm:"index"`
	Property         Property  `json:"property" gorm:"foreignKey:PropertyID"`
	RoomID           *uint     `json:"roomId"`
	Room             *Room     `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate      time.Time `json:"checkInDate"`
	CheckOutDate     time.Time `json:"checkOutDate"`
	Nights           int       `json:"nights"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	TotalAmount      float64   `json:"totalAmount"`
	Status           string    `json:"status" gorm:"default:pending;index"`
	ConfirmationCode string    `json:"confirmationCode" gorm:"uniqueIndex"`

	// Guest contact captured at booking time, independent of the live profile
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail" gorm:"index"`
	GuestPhone string `json:"guestPhone"`

	// Display fields captured at booking time so later property edits
	// do not rewrite history
	PropertyName string `json:"propertyName"`
	RoomType     string `json:"roomType"`
	Location     string `json:"location"`
	Image        string `json:"image"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
