package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ezkorea/course-marketplace/internal/api/metrics"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

// CourseHandler handles course submission and the admin approval pipeline.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Submit creates a pending course for the authenticated instructor.
//
// @Summary      Submit a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitCourseRequest  true  "Course details"
// @Success      200   {object}  courseResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/courses [post]
func (h *CourseHandler) Submit(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req submitCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Submit(c.Request().Context(), ports.SubmitCourseInput{
		InstructorID: userID,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}

	metrics.CoursesSubmittedTotal.Inc()
	return c.JSON(http.StatusOK, courseResponse{Course: course})
}

// ListPending returns all pending courses for admin review.
//
// @Summary      List pending courses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   pendingCourseResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/courses [get]
func (h *CourseHandler) ListPending(c echo.Context) error {
	pending, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]pendingCourseResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, pendingCourseResponse{
			Course:          p.Course,
			InstructorName:  p.InstructorName,
			InstructorEmail: p.InstructorEmail,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Approve publishes a pending course.
//
// @Summary      Approve a course
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/courses/{id}/approve [post]
func (h *CourseHandler) Approve(c echo.Context) error {
	course, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.CoursesResolvedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, courseResponse{Course: course})
}

// Reject declines a pending course.
//
// @Summary      Reject a course
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/courses/{id}/reject [post]
func (h *CourseHandler) Reject(c echo.Context) error {
	course, err := h.service.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.CoursesResolvedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, courseResponse{Course: course})
}
