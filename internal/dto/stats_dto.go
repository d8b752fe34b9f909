package dto

// StatusCount is the number of enrollments carrying one status.
type StatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// OverviewStats summarises the whole school in one payload.
type OverviewStats struct {
	TotalEnrollments int64         `json:"total_enrollments"`
	TotalCourses     int64         `json:"total_courses"`
	TotalInstructors int64         `json:"total_instructors"`
	TotalRevenue     float64       `json:"total_revenue"`
	StatusBreakdown  []StatusCount `json:"status_breakdown"`
}

// CourseStats aggregates enrollment activity for a single course.
type CourseStats struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Duration          string  `json:"duration"`
	EnrollmentCount   int64   `json:"enrollment_count"`
	ActiveStudents    int64   `json:"active_students"`
	CompletedStudents int64   `json:"completed_students"`
	TotalRevenue      float64 `json:"total_revenue"`
}
