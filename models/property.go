package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"stayhub/constants"
)

type Property struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PartnerID   uint           `json:"partnerId" gorm:"index"`
	Partner     User           `json:"partner" gorm:"foreignKey:PartnerID"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug" gorm:"uniqueIndex"`
	Description string         `json:"description"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Street      string         `json:"street"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country"`
	PostalCode  string         `json:"postalCode"`
	Longitude   float64        `json:"longitude"`
	Latitude    float64        `json:"latitude"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Type        string         `json:"type"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"reviewCount"`
	PriceMin    float64        `json:"priceMin"`
	PriceMax    float64        `json:"priceMax"`
	Status      string         `json:"status" gorm:"default:pending"`
	Rooms       []Room         `json:"rooms" gorm:"foreignKey:PropertyID"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Property) ValidateType() error {
	if !constants.PropertyTypes[p.Type] {
		return fmt.Errorf("invalid property type: %q", p.Type)
	}
	return nil
}

func (p *Property) ValidateStatus() error {
	switch p.Status {
	case constants.PropertyStatusPending, constants.PropertyStatusActive, constants.PropertyStatusSuspended:
		return nil
	}
	return fmt.Errorf("invalid property status: %q", p.Status)
}
