package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话令牌携带的业务信息
type SessionClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
