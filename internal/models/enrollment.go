package models

import (
	"strings"
	"time"
)

// EnrollmentStatus is the closed vocabulary of enrollment states.
type EnrollmentStatus string

const (
	StatusNew       EnrollmentStatus = "new"
	StatusContacted EnrollmentStatus = "contacted"
	StatusEnrolled  EnrollmentStatus = "enrolled"
	StatusCompleted EnrollmentStatus = "completed"
	StatusCancelled EnrollmentStatus = "cancelled"
)

// EnrollmentStatuses lists every permitted status in declaration order.
var EnrollmentStatuses = []EnrollmentStatus{
	StatusNew,
	StatusContacted,
	StatusEnrolled,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether the status belongs to the permitted vocabulary.
func (s EnrollmentStatus) Valid() bool {
	for _, candidate := range EnrollmentStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// StatusVocabulary returns the permitted statuses joined for error messages.
func StatusVocabulary() string {
	names := make([]string, 0, len(EnrollmentStatuses))
	for _, status := range EnrollmentStatuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}

// Enrollment represents a prospective student's application to a course.
//
// Rows are never deleted by the enrollment workflow; they only move between
// statuses. Concurrent status updates on the same row are last-write-wins.
type Enrollment struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	FullName  string           `gorm:"size:255;not null" json:"full_name"`
	Phone     string           `gorm:"size:32;not null" json:"phone"`
	Email     *string          `gorm:"size:255" json:"email"`
	CourseID  uint             `gorm:"index;not null" json:"course_id"`
	Course    *Course          `gorm:"foreignKey:CourseID" json:"-"`
	Message   *string          `gorm:"type:text" json:"message"`
	Status    EnrollmentStatus `gorm:"size:32;not null;default:new;index" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
