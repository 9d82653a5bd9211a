package handler

import "github.com/ezkorea/course-marketplace/internal/core/domain"

type submitCourseRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

type courseResponse struct {
	Course *domain.Course `json:"course"`
}

// pendingCourseResponse is a course joined with its instructor as shown on
// the admin review screen.
type pendingCourseResponse struct {
	Course          domain.Course `json:"course"`
	InstructorName  string        `json:"instructor_name"`
	InstructorEmail string        `json:"instructor_email"`
}
