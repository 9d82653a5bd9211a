package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ezkorea/course-marketplace/internal/api/metrics"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

// InstructorHandler handles the instructor application workflow and the
// active-role toggle.
type InstructorHandler struct {
	service ports.InstructorService
}

func NewInstructorHandler(service ports.InstructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

// Apply submits an instructor application for the authenticated user.
//
// @Summary      Apply to become an instructor
// @Tags         instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyInstructorRequest  true  "Application details"
// @Success      200   {object}  applyInstructorResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/apply-instructor [post]
func (h *InstructorHandler) Apply(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req applyInstructorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		UserID:      userID,
		Intro:       req.Intro,
		Career:      req.Career,
		Certificate: req.Certificate,
		Fields:      req.Fields,
		Motivation:  req.Motivation,
		Contact:     req.Contact,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusOK, applyInstructorResponse{
		Application: result.Application,
		User:        result.User,
	})
}

// ToggleActiveRole flips the caller's student/instructor view.
//
// @Summary      Toggle the active role view
// @Tags         instructors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/become-instructor [post]
func (h *InstructorHandler) ToggleActiveRole(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.ToggleActiveRole(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// ListPending returns all pending applications for admin review.
//
// @Summary      List pending instructor applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   pendingApplicationResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/instructor-applications [get]
func (h *InstructorHandler) ListPending(c echo.Context) error {
	pending, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]pendingApplicationResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, pendingApplicationResponse{
			Application:    p.Application,
			ApplicantName:  p.ApplicantName,
			ApplicantEmail: p.ApplicantEmail,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Approve resolves an application and promotes the applicant.
//
// @Summary      Approve an instructor application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/instructor-applications/{id}/approve [post]
func (h *InstructorHandler) Approve(c echo.Context) error {
	app, err := h.service.Approve(c.Request().Context(), c.Param("id"), ctxEmail(c))
	if err != nil {
		return err
	}

	metrics.ApplicationsResolvedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, applicationResponse{Application: app})
}

// Reject resolves an application and returns the applicant to student.
//
// @Summary      Reject an instructor application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/instructor-applications/{id}/reject [post]
func (h *InstructorHandler) Reject(c echo.Context) error {
	app, err := h.service.Reject(c.Request().Context(), c.Param("id"), ctxEmail(c))
	if err != nil {
		return err
	}

	metrics.ApplicationsResolvedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, applicationResponse{Application: app})
}
