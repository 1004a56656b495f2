package service

import (
	"errors"
	"net/http"
)

// 错误文案直接回给调用方，凭据类错误保持泛化措辞，不暴露具体失败原因
var (
	ErrParamInvalid        = errors.New("Invalid request parameters")
	ErrUnauthorized        = errors.New("Unauthorized")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrInvalidEmail        = errors.New("Invalid email format")
	ErrPasswordLength      = errors.New("Password must be between 6 and 128 characters")
	ErrEmailExists         = errors.New("Email already registered")
	ErrConfirmTokenInvalid = errors.New("Invalid or expired confirmation token")
	UnExpectedError        = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusBadRequest,
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidEmail:        http.StatusBadRequest,
	ErrPasswordLength:      http.StatusBadRequest,
	ErrEmailExists:         http.StatusBadRequest,
	ErrConfirmTokenInvalid: http.StatusBadRequest,
	UnExpectedError:        http.StatusInternalServerError,
}
