package dto

import (
	"time"

	"github.com/autoprofi/driving-school-api/internal/models"
)

// EnrollmentCreateRequest is the public enrollment form payload.
type EnrollmentCreateRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email"`
	CourseID uint    `json:"course_id" validate:"required"`
	Message  *string `json:"message"`
}

// EnrollmentStatusUpdateRequest changes the status of a single enrollment.
type EnrollmentStatusUpdateRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// EnrollmentListRequest filters and paginates the enrollment listing.
type EnrollmentListRequest struct {
	Status string
	Limit  int
	Offset int
}

// EnrollmentResponse is an enrollment row joined with its course.
type EnrollmentResponse struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email"`
	CourseID       uint      `json:"course_id"`
	CourseTitle    *string   `json:"course_title"`
	CourseCategory *string   `json:"course_category"`
	CoursePrice    *float64  `json:"course_price"`
	Status         string    `json:"status"`
	Message        *string   `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEnrollmentResponse flattens an enrollment and its preloaded course.
func NewEnrollmentResponse(enrollment models.Enrollment) EnrollmentResponse {
	response := EnrollmentResponse{
		ID:        enrollment.ID,
		FullName:  enrollment.FullName,
		Phone:     enrollment.Phone,
		Email:     enrollment.Email,
		CourseID:  enrollment.CourseID,
		Status:    string(enrollment.Status),
		Message:   enrollment.Message,
		CreatedAt: enrollment.CreatedAt,
		UpdatedAt: enrollment.UpdatedAt,
	}

	if enrollment.Course != nil {
		response.CourseTitle = &enrollment.Course.Title
		response.CourseCategory = &enrollment.Course.Category
		response.CoursePrice = &enrollment.Course.Price
	}

	return response
}
