package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Eursukkul/travel-booking/internal/dashboard"
	"github.com/Eursukkul/travel-booking/internal/dto"
	"github.com/labstack/echo/v4"
)

type SummarySource interface {
	Latest(ctx context.Context) (dashboard.Summary, error)
	Refresh(ctx context.Context) (dashboard.Summary, error)
}

type DashboardHandler struct {
	source SummarySource
}

func NewDashboardHandler(source SummarySource) *DashboardHandler {
	return &DashboardHandler{source: source}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/summary", h.GetSummary)
}

// GetSummary serves the latest snapshot; ?refresh=true recomputes it first.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	var (
		summary dashboard.Summary
		err     error
	)
	if refresh {
		summary, err = h.source.Refresh(c.Request().Context())
	} else {
		summary, err = h.source.Latest(c.Request().Context())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.OK("Dashboard summary", summary))
}
