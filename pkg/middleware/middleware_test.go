package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	md "github.com/akmurmu82/library-management-app/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRequireAdminKey(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "disabled", key: "", header: "", expectedCode: http.StatusForbidden, expectedBody: `{"message":"Administrative endpoints are disabled"}`},
		{name: "disabled ignores header", key: "", header: "anything", expectedCode: http.StatusForbidden, expectedBody: `{"message":"Administrative endpoints are disabled"}`},
		{name: "missing header", key: "k3y", header: "", expectedCode: http.StatusForbidden, expectedBody: `{"message":"Invalid admin key"}`},
		{name: "wrong key", key: "k3y", header: "nope", expectedCode: http.StatusForbidden, expectedBody: `{"message":"Invalid admin key"}`},
		{name: "ok", key: "k3y", header: "k3y", expectedCode: http.StatusOK, expectedBody: "seeded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.POST("/seed", func(c echo.Context) error {
				return c.String(http.StatusOK, "seeded")
			}, md.RequireAdminKey(tt.key))

			r := httptest.NewRequest(http.MethodPost, "/seed", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AdminKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
