package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PropertyID  uint           `json:"propertyId" gorm:"index"`
	RoomType    string         `json:"roomType"`
	Capacity    int            `json:"capacity"`
	Rate        float64        `json:"rate"`
	Description string         `json:"description"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Property    Property       `json:"-" gorm:"foreignKey:PropertyID"`
}

func (r *Room) ValidateCapacity() error {
	if r.Capacity < 1 {
		return fmt.Errorf("invalid capacity: %d, must be at least 1", r.Capacity)
	}
	return nil
}
