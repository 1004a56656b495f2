package handler

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupUser    *dto.UserDTO
	signupPending bool
	signupErr     error
	loginToken    string
	loginUser     *dto.UserDTO
	loginErr      error
	logoutErr     error
	revokedToken  string
	currentUser   *dto.UserDTO
	currentErr    error
}

func (s *stubAuthService) Signup(_ context.Context, _ *dto.CredentialDTO) (*dto.UserDTO, bool, error) {
	return s.signupUser, s.signupPending, s.signupErr
}

func (s *stubAuthService) Login(_ context.Context, _ *dto.CredentialDTO) (string, *dto.UserDTO, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.revokedToken = token
	return s.logoutErr
}

func (s *stubAuthService) ConfirmEmail(_ context.Context, _ string) error {
	return nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, _ uint64) (*dto.UserDTO, error) {
	return s.currentUser, s.currentErr
}

func newAuthRouter(stub *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{}
	r := gin.New()
	h := NewAuthHandler(stub)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", injectUser(42), h.Me)
	}
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginBadCredentialsIsGeneric(t *testing.T) {
	stub := &stubAuthService{loginErr: service.ErrInvalidCredentials}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/login", `{"email":"a@b.com","password":"wrong-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid email or password"}`, w.Body.String())
}

// 请求体解析失败与密码错误返回完全一致，避免泄露账号是否存在
func TestLoginMalformedBodyIsGeneric(t *testing.T) {
	stub := &stubAuthService{}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/login", `{"email":`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid email or password"}`, w.Body.String())
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &stubAuthService{
		loginToken: "signed.jwt.token",
		loginUser:  &dto.UserDTO{ID: 1, Email: "a@b.com", CreatedAt: created},
	}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/login", `{"email":"a@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, consts.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// 注册成功即登录：响应里必须带上新会话的 Cookie
func TestSignupSetsSessionCookie(t *testing.T) {
	stub := &stubAuthService{
		signupUser: &dto.UserDTO{ID: 5, Email: "new@b.com"},
	}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/signup", `{"email":"new@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, consts.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSignupValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid email", service.ErrInvalidEmail, "Invalid email format"},
		{"password length", service.ErrPasswordLength, "Password must be between 6 and 128 characters"},
		{"email exists", service.ErrEmailExists, "Email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAuthService{signupErr: tt.err}
			r := newAuthRouter(stub)

			w := postJSON(r, "/auth/signup", `{"email":"a@b.com","password":"secret1"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestSignupPendingConfirmation(t *testing.T) {
	stub := &stubAuthService{
		signupUser:    &dto.UserDTO{ID: 3, Email: "new@b.com"},
		signupPending: true,
	}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/signup", `{"email":"new@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"confirmation_pending":true`)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	stub := &stubAuthService{
		currentUser: &dto.UserDTO{ID: 42, Email: "a@b.com"},
	}
	r := newAuthRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
}

// 会话里的用户已被删除时按未认证处理
func TestMeDeletedUserIsUnauthorized(t *testing.T) {
	stub := &stubAuthService{currentErr: service.ErrUnauthorized}
	r := newAuthRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, w.Body.String())
}

// 登出始终成功，重复调用与无会话调用都不报错
func TestLogoutIdempotent(t *testing.T) {
	stub := &stubAuthService{}
	r := newAuthRouter(stub)

	// 无 Cookie
	w := postJSON(r, "/auth/logout", ``)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Empty(t, stub.revokedToken)

	// 带 Cookie：吊销后清除
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: "stale.jwt"})
	r.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "stale.jwt", stub.revokedToken)

	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
