package handler

import (
	"net/http"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary Register and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.Credentials true "credentials"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} echo.HTTPError
// @Router /auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.AuthResponse{
		Message: "User created successfully",
		User:    model.NewUserResponse(user),
	})
}

// Login godoc
// @Summary Log in and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.Credentials true "credentials"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.AuthResponse{
		Message: "Login successful",
		User:    model.NewUserResponse(user),
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} echo.HTTPError
// @Router /auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.AuthResponse{User: model.NewUserResponse(user)})
}

func (h *Handler) startSession(c echo.Context, user model.User) error {
	token, expiresAt, err := h.sessions.Issue(user.ID)
	if err != nil {
		return h.httpError(err)
	}
	c.SetCookie(h.sessions.Cookie(token, expiresAt))
	return nil
}
