package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fintrack/internal/errors"
	"fintrack/internal/service"
)

// IncomeHandler handles income record endpoints.
type IncomeHandler struct {
	incomeService service.IncomeService
}

// NewIncomeHandler creates a new income handler.
func NewIncomeHandler(incomeService service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest represents an income create/update payload.
type IncomeRequest struct {
	Source     string          `json:"source" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	IncomeDate string          `json:"income_date" validate:"required"`
}

// Create godoc
// @Summary Create an income record
// @Tags income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IncomeRequest true "Income data"
// @Success 200 {object} model.Income
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /income [post]
func (h *IncomeHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.IncomeDate)
	if err != nil {
		return invalidDate("income_date")
	}

	income, err := h.incomeService.Create(c.Request().Context(), owner, req.Source, req.Amount, date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, income)
}

// List godoc
// @Summary List the caller's income records
// @Tags income
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Income
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /income [get]
func (h *IncomeHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	incomes, err := h.incomeService.List(c.Request().Context(), owner)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, incomes)
}

// Update godoc
// @Summary Update an owned income record
// @Tags income
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Income ID"
// @Param request body IncomeRequest true "Income data"
// @Success 200 {object} model.Income
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /income/{id} [put]
func (h *IncomeHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.IncomeDate)
	if err != nil {
		return invalidDate("income_date")
	}

	income, err := h.incomeService.Update(c.Request().Context(), owner, id, req.Source, req.Amount, date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, income)
}

// Delete godoc
// @Summary Delete an owned income record
// @Tags income
// @Produce json
// @Security BearerAuth
// @Param id path string true "Income ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /income/{id} [delete]
func (h *IncomeHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.incomeService.Delete(c.Request().Context(), owner, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
