package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/metrics"
	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// AnnouncementHandler serves the announcements module.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type announcementRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Department string `json:"department"`
}

type announcementUpdateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Department string `json:"department"`
}

// List returns the notices visible to the current user's department.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Success      200  {array}  domain.Announcement
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// Create publishes a notice.
//
// @Summary      Create announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        body  body      announcementRequest  true  "Announcement details"
// @Success      201   {object}  domain.Announcement
// @Router       /api/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Create(c.Request().Context(), ports.AnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		Priority:   req.Priority,
		Department: req.Department,
	}, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	metrics.AnnouncementsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, announcement)
}

// Update edits a notice.
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req announcementUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		Priority:   req.Priority,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

// MarkRead records that the current user opened the notice.
func (h *AnnouncementHandler) MarkRead(c echo.Context) error {
	announcement, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}
