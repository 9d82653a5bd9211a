package handler

import (
	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

type applyInstructorRequest struct {
	Intro       string `json:"intro"       validate:"required,min=20"`
	Career      string `json:"career"      validate:"required"`
	Certificate string `json:"certificate" validate:"required"`
	Fields      string `json:"fields"`
	Motivation  string `json:"motivation"`
	Contact     string `json:"contact"`
}

type applyInstructorResponse struct {
	Application *domain.InstructorApplication `json:"application"`
	User        *domain.User                  `json:"user"`
}

type applicationResponse struct {
	Application *domain.InstructorApplication `json:"application"`
}

// pendingApplicationResponse is an application joined with its applicant
// as shown on the admin review screen.
type pendingApplicationResponse struct {
	Application    domain.InstructorApplication `json:"application"`
	ApplicantName  string                       `json:"applicant_name"`
	ApplicantEmail string                       `json:"applicant_email"`
}
