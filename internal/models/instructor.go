package models

import "time"

// Instructor represents a driving instructor profile.
type Instructor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Specialization string    `gorm:"size:128" json:"specialization"`
	Experience     int       `gorm:"not null;default:0" json:"experience"`
	Rating         float64   `gorm:"not null;default:0" json:"rating"`
	Bio            string    `gorm:"type:text" json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
