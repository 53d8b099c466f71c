package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/badriyvp/musegen/internal/common"
	"github.com/badriyvp/musegen/internal/server/auth"
)

const userIDContextKey = "userID"

// requireAuth verifies the bearer token and stores the user id on the echo
// context. A missing or malformed header is a 401, a bad or expired token
// a 403.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(common.AuthHeaderName)

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Invalid token"})
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
