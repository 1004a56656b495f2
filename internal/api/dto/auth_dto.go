package dto

import "time"

// CredentialDTO 登录/注册请求体
type CredentialDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse 认证接口的响应体，user 平铺在顶层而不是包在 data 里
type AuthResponse struct {
	Success             bool     `json:"success"`
	User                *UserDTO `json:"user,omitempty"`
	ConfirmationPending *bool    `json:"confirmation_pending,omitempty"`
}
