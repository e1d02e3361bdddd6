package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintrack/internal/auth"
	"fintrack/internal/errors"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts the date formats clients actually send: a bare date from
// a date picker or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ownerID resolves the authenticated user from the access gate. Routes are
// always registered behind the gate, so a miss here is a wiring bug and is
// reported as an auth failure rather than a panic.
func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := auth.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "access denied: no token provided",
			Code:  "UNAUTHENTICATED",
		})
	}
	return id, nil
}

// recordID parses the :id path parameter. A malformed id is reported as not
// found so callers cannot distinguish it from a record they do not own.
func recordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrRecordNotFound.Error(),
			Code:  "NOT_FOUND",
		})
	}
	return id, nil
}

// invalidDate returns the uniform 400 for unparseable domain dates.
func invalidDate(field string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: field + " must be a valid date",
		Code:  "INVALID_DATE",
	})
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}
