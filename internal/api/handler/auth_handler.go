package handler

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/security"
	"Pulseboard/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Signup 注册成功即视为登录，直接为新用户建立会话
func (h *AuthHandler) Signup(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		response.Error(c, err)
		return
	}

	user, pending, err := h.authSvc.Signup(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success:             true,
		User:                user,
		ConfirmationPending: &pending,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		// 请求体不可解析与凭据错误对外不做区分
		response.Error(c, service.ErrInvalidCredentials)
		return
	}

	token, user, err := h.authSvc.Login(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    user,
	})
}

// Logout 幂等登出：无论 Cookie 是否存在、吊销是否成功，响应都是 success
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(consts.SessionCookieName); err == nil && token != "" {
		if err = h.authSvc.Logout(c.Request.Context(), token); err != nil {
			log.WarnContext(c.Request.Context(), "revoke session failed", "err", err)
		}
	}

	clearSessionCookie(c)
	response.Success(c, nil)
}

// Me 返回当前会话对应的用户，供前端恢复登录态
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    user,
	})
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.ErrConfirmTokenInvalid)
		return
	}

	if err := h.authSvc.ConfirmEmail(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func setSessionCookie(c *gin.Context, token string) {
	authCfg := config.Cfg.Auth
	maxAge := authCfg.TokenTTLHours * 3600

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.SessionCookieName, token, maxAge, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
}

func clearSessionCookie(c *gin.Context) {
	authCfg := config.Cfg.Auth

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.SessionCookieName, "", -1, "/", authCfg.CookieDomain, authCfg.CookieSecure, true)
}
