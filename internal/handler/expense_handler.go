package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fintrack/internal/errors"
	"fintrack/internal/service"
)

// ExpenseHandler handles expense record endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents an expense create/update payload.
type ExpenseRequest struct {
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date" validate:"required"`
}

// Create godoc
// @Summary Create an expense record
// @Tags expense
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExpenseRequest true "Expense data"
// @Success 200 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		return invalidDate("expense_date")
	}

	expense, err := h.expenseService.Create(c.Request().Context(), owner, req.Category, req.Amount, date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, expense)
}

// List godoc
// @Summary List the caller's expense records
// @Tags expense
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Expense
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenseService.List(c.Request().Context(), owner)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, expenses)
}

// Update godoc
// @Summary Update an owned expense record
// @Tags expense
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body ExpenseRequest true "Expense data"
// @Success 200 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		return invalidDate("expense_date")
	}

	expense, err := h.expenseService.Update(c.Request().Context(), owner, id, req.Category, req.Amount, date)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete godoc
// @Summary Delete an owned expense record
// @Tags expense
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expense/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.expenseService.Delete(c.Request().Context(), owner, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
