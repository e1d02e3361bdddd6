package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fintrack/internal/errors"
	"fintrack/internal/service"
)

// BudgetHandler handles budget record endpoints.
type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents a budget create/update payload.
type BudgetRequest struct {
	BudgetMonth  string          `json:"budgetMonth" validate:"required"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
}

// Create godoc
// @Summary Create a budget record
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BudgetRequest true "Budget data"
// @Success 200 {object} model.Budget
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.budgetService.Create(c.Request().Context(), owner, req.BudgetMonth, req.BudgetAmount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, budget)
}

// List godoc
// @Summary List the caller's budget records
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Budget
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget [get]
func (h *BudgetHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	budgets, err := h.budgetService.List(c.Request().Context(), owner)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, budgets)
}

// Update godoc
// @Summary Update an owned budget record
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Param request body BudgetRequest true "Budget data"
// @Success 200 {object} model.Budget
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	budget, err := h.budgetService.Update(c.Request().Context(), owner, id, req.BudgetMonth, req.BudgetAmount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, budget)
}

// Delete godoc
// @Summary Delete an owned budget record
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.budgetService.Delete(c.Request().Context(), owner, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
