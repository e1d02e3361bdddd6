package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"fintrack/internal/errors"
)

// ContextKey is the echo context key under which verified claims are stored.
const ContextKey = "user"

// RequireAuth returns the middleware chain that guards every record and
// stats route. A request with no Authorization header is rejected with 401
// before token parsing; a present but unverifiable token is rejected with
// 403. On success the verified claims are stored in the request context and
// handlers read the owner id via UserIDFromContext.
func RequireAuth(jwtService *JWTService) []echo.MiddlewareFunc {
	requireHeader := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "access denied: no token provided",
					Code:  "UNAUTHENTICATED",
				})
			}
			return next(c)
		}
	}

	verifyToken := echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	})

	return []echo.MiddlewareFunc{requireHeader, verifyToken}
}

// UserIDFromContext returns the authenticated user id resolved by the gate.
// The boolean is false when the route was not wrapped by RequireAuth.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok || claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
