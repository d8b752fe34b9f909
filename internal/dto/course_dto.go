package dto

// CourseCreateRequest carries the attributes of a new course.
type CourseCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features"`
}

// CourseUpdateRequest replaces the mutable attributes of a course.
type CourseUpdateRequest struct {
	ID          uint     `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features"`
}

// InstructorCreateRequest carries the attributes of a new instructor.
type InstructorCreateRequest struct {
	Name           string  `json:"name" validate:"required"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience" validate:"gte=0"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	Bio            string  `json:"bio"`
}

// InstructorUpdateRequest replaces the mutable attributes of an instructor.
type InstructorUpdateRequest struct {
	ID             uint    `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience" validate:"gte=0"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	Bio            string  `json:"bio"`
}
