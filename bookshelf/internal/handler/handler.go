package handler

import (
	"net/http"

	_ "github.com/akmurmu82/library-management-app/bookshelf/docs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/pkg/session"
	"github.com/akmurmu82/library-management-app/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	mw "github.com/akmurmu82/library-management-app/pkg/middleware"
)

const welcomeMessage = "Welcome to the Books Library API"

type Handler struct {
	svc          Service
	sessions     *session.Manager
	log          *zap.Logger
	allowOrigins []string
	adminKey     string
}

type Option func(*Handler)

func WithAllowOrigins(origins []string) Option {
	return func(h *Handler) {
		h.allowOrigins = origins
	}
}

// WithAdminKey enables the catalog administration routes guarded by key.
func WithAdminKey(key string) Option {
	return func(h *Handler) {
		h.adminKey = key
	}
}

func New(svc Service, sessions *session.Manager, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:          svc,
		sessions:     sessions,
		log:          log,
		allowOrigins: []string{"http://localhost:5173"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     h.allowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, mw.AdminKeyHeader},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/", h.Welcome)
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/me", h.Me, h.authMW)

	admin := mw.RequireAdminKey(h.adminKey)
	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.GET("/search", h.SearchBooks)
	books.GET("/:bookId", h.GetBook)
	books.POST("", h.CreateBook, admin)
	books.POST("/seed", h.SeedBooks, admin)

	my := api.Group("/mybooks", h.authMW)
	my.GET("", h.ListMyBooks)
	my.GET("/stats", h.LibraryStats)
	my.POST("/:bookId", h.AddMyBook)
	my.PATCH("/:bookId/status", h.UpdateStatus)
	my.PATCH("/:bookId/rating", h.UpdateRating)
	my.DELETE("/:bookId", h.RemoveMyBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}

// httpError maps service errors onto HTTP responses. Unknown errors are
// logged and hidden behind a generic message.
func (h *Handler) httpError(err error) error {
	msg := errs.Message(err)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msg)
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, errs.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Book search is unavailable")
	}
	h.log.Error("internal error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
}
