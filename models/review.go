package models

import (
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	PropertyID uint      `json:"propertyId" gorm:"index"`
	Property   Property  `json:"-" gorm:"foreignKey:PropertyID"`
	Star       int       `json:"star"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
