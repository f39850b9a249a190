package handler_test

import (
	"net/http"
	"testing"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	service_mocks "github.com/akmurmu82/library-management-app/bookshelf/internal/handler/mocks"
)

func TestHandler_RegisterLogin(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		wantCookie   bool
	}
	type mockBehavior func(r *service_mocks.MockService)

	tests := []struct {
		name         string
		path         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "register ok",
			path: "/api/auth/register",
			body: `{"email":"reader@example.com","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Register(gomock.Any(), "reader@example.com", "secret").Return(testUser, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"message":"User created successfully","user":{"id":"` + testUserID + `","email":"reader@example.com"}}`,
				wantCookie:   true,
			},
		},
		{
			name: "register err. user exists",
			path: "/api/auth/register",
			body: `{"email":"reader@example.com","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Register(gomock.Any(), "reader@example.com", "secret").Return(model.User{}, errs.ErrUserExists)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"User already exists"}`,
			},
		},
		{
			name:         "register err. bad email",
			path:         "/api/auth/register",
			body:         `{"email":"nope","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'Credentials.email' Error:Field validation for 'email' failed on the 'email' tag"}`,
			},
		},
		{
			name: "register err. internal",
			path: "/api/auth/register",
			body: `{"email":"reader@example.com","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Register(gomock.Any(), "reader@example.com", "secret").Return(model.User{}, errors.New("db down"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Server error"}`,
			},
		},
		{
			name: "login ok",
			path: "/api/auth/login",
			body: `{"email":"reader@example.com","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Login(gomock.Any(), "reader@example.com", "secret").Return(testUser, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Login successful","user":{"id":"` + testUserID + `","email":"reader@example.com"}}`,
				wantCookie:   true,
			},
		},
		{
			name: "login err. unknown user",
			path: "/api/auth/login",
			body: `{"email":"reader@example.com","password":"secret"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Login(gomock.Any(), "reader@example.com", "secret").Return(model.User{}, errs.ErrUserNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"User not found!"}`,
			},
		},
		{
			name: "login err. wrong password",
			path: "/api/auth/login",
			body: `{"email":"reader@example.com","password":"wrong"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Login(gomock.Any(), "reader@example.com", "wrong").Return(model.User{}, errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid credentials"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			tt.mockBehavior(env.svc)

			w := env.serve(newRequest(http.MethodPost, tt.path, tt.body))

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
			cookies := w.Result().Cookies()
			if !tt.response.wantCookie {
				require.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			c := cookies[0]
			require.Equal(t, cookieName, c.Name)
			require.True(t, c.HttpOnly)
			require.True(t, c.Secure)
			require.Equal(t, http.SameSiteNoneMode, c.SameSite)
			require.Equal(t, 7*24*60*60, c.MaxAge)

			userID, err := env.sessions.Verify(c.Value)
			require.NoError(t, err)
			require.Equal(t, testUserID, userID)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	w := env.serve(newRequest(http.MethodPost, "/api/auth/logout", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Logged out successfully"}`, body(w))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, cookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	t.Run("ok. cookie", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		w := env.serve(env.authed(t, http.MethodGet, "/api/auth/me", ""))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"user":{"id":"`+testUserID+`","email":"reader@example.com"}}`, body(w))
	})

	t.Run("ok. bearer header", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		token, _, err := env.sessions.Issue(testUserID)
		require.NoError(t, err)
		env.svc.EXPECT().GetUser(gomock.Any(), testUserID).Return(testUser, nil)
		r := newRequest(http.MethodGet, "/api/auth/me", "")
		r.Header.Set("Authorization", "Bearer "+token)

		w := env.serve(r)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("err. no token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		w := env.serve(newRequest(http.MethodGet, "/api/auth/me", ""))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"No token provided"}`, body(w))
	})

	t.Run("err. tampered token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		token, _, err := env.sessions.Issue(testUserID)
		require.NoError(t, err)
		r := newRequest(http.MethodGet, "/api/auth/me", "")
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token + "x"})

		w := env.serve(r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"Invalid token"}`, body(w))
	})

	t.Run("err. user deleted", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		token, _, err := env.sessions.Issue(testUserID)
		require.NoError(t, err)
		env.svc.EXPECT().GetUser(gomock.Any(), testUserID).Return(model.User{}, errs.ErrUserNotFound)
		r := newRequest(http.MethodGet, "/api/auth/me", "")
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token})

		w := env.serve(r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"User not found"}`, body(w))
	})
}
