package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fintrack/internal/errors"
	"fintrack/internal/service"
)

// StatsHandler handles dashboard aggregate endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary godoc
// @Summary Monthly totals, balance, and budget utilization
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param month query int false "Calendar month 1-12, defaults to the current month"
// @Success 200 {object} service.MonthlySummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats/summary [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	month := time.Now().Month()
	if raw := c.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "month must be an integer between 1 and 12",
				Code:  "INVALID_MONTH",
			})
		}
		month = time.Month(m)
	}

	summary, err := h.statsService.Summary(c.Request().Context(), owner, month)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, summary)
}

// Monthly godoc
// @Summary Twelve-month income/expense/savings breakdown
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.YearlyBreakdown
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats/monthly [get]
func (h *StatsHandler) Monthly(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	breakdown, err := h.statsService.MonthlyBreakdown(c.Request().Context(), owner)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, breakdown)
}
