package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course represents a driving course offered by the school.
type Course struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Category    string                      `gorm:"size:64;index" json:"category"`
	Description string                      `gorm:"type:text" json:"description"`
	Duration    string                      `gorm:"size:64" json:"duration"`
	Price       float64                     `gorm:"not null;default:0" json:"price"`
	Features    datatypes.JSONSlice[string] `gorm:"type:json" json:"features"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
