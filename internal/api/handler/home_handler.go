package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// HomeHandler serves the role landing payloads behind the route guard.
type HomeHandler struct {
	overview ports.OverviewService
}

func NewHomeHandler(overview ports.OverviewService) *HomeHandler {
	return &HomeHandler{overview: overview}
}

type homeResponse struct {
	User    *domain.User           `json:"user"`
	Modules []domain.Module        `json:"modules"`
	Summary *ports.OverviewSummary `json:"summary"`
}

// Home renders the dashboard payload for the current role. The guard has
// already ensured the role matches the path.
func (h *HomeHandler) Home(c echo.Context) error {
	user := middleware.CurrentUser(c)

	summary, err := h.overview.Summary(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, homeResponse{
		User:    user,
		Modules: domain.ModulesFor(user.Role),
		Summary: summary,
	})
}
