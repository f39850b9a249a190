package handler

import (
	"net/http"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const userKey = "user"

// authMW resolves the session token to a stored user. Every failure ends the
// request with 401 before any handler runs.
func (h *Handler) authMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := h.sessions.TokenFromRequest(c.Request())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
		}
		userID, err := h.sessions.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
		user, err := h.svc.GetUser(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}
			h.log.Error("authMW", zap.String("userID", userID), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
		}
		c.Set(userKey, user)
		return next(c)
	}
}

func currentUser(c echo.Context) (model.User, error) {
	user, ok := c.Get(userKey).(model.User)
	if !ok {
		return model.User{}, errs.ErrUnauthenticated
	}
	return user, nil
}
