package service

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/mailer"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/security"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const confirmTokenTTL = 24 * time.Hour

type AuthService interface {
	// Signup 注册新用户，返回用户信息与是否待邮件确认
	Signup(ctx context.Context, credential *dto.CredentialDTO) (*dto.UserDTO, bool, error)
	// Login 校验凭据并签发会话令牌。任何失败原因对调用方都是同一个错误
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, *dto.UserDTO, error)
	// Logout 吊销会话令牌。幂等，重复吊销不报错
	Logout(ctx context.Context, token string) error
	// ConfirmEmail 用确认令牌标记邮箱已验证
	ConfirmEmail(ctx context.Context, token string) error
	// CurrentUser 按会话中的用户 ID 取用户信息。用户已不存在时视为未认证
	CurrentUser(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepo
	mail     *mailer.Client
}

func NewAuthService(userRepo repository.UserRepo, mail *mailer.Client) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		mail:     mail,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, credential *dto.CredentialDTO) (*dto.UserDTO, bool, error) {
	if !util.ValidateEmail(credential.Email) {
		return nil, false, ErrInvalidEmail
	}
	if !util.ValidatePassword(credential.Password) {
		return nil, false, ErrPasswordLength
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, credential.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, false, ErrEmailExists
	}

	passwordHash, err := security.HashPassword(credential.Password)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Email:          credential.Email,
		Password:       passwordHash,
		EmailConfirmed: !s.mail.Enabled(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, false, err
	}

	pending := false
	if s.mail.Enabled() {
		pending = true
		token := uuid.NewString()
		key := consts.EmailConfirmTokenKey + token
		if err = redis.SetWithExpiration(ctx, key, strconv.FormatUint(user.ID, 10), confirmTokenTTL); err != nil {
			return nil, false, err
		}
		// 投递失败不回滚注册，用户可以重新触发确认邮件
		if err = s.mail.SendConfirmation(ctx, user.Email, token); err != nil {
			log.WarnContext(ctx, "send confirmation mail failed", "err", err)
		}
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, false, err
	}
	return userDTO, pending, nil
}

func (s *authServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, *dto.UserDTO, error) {
	if credential.Email == "" || credential.Password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, credential.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(credential.Password, user.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return "", nil, err
	}
	return token, userDTO, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}
	// 吊销名单保留到令牌自身过期为止
	revokeTTL := time.Duration(config.Cfg.Auth.TokenTTLHours) * time.Hour
	return redis.SetWithExpiration(ctx, consts.SessionRevokedKey+signature, true, revokeTTL)
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *authServiceImpl) ConfirmEmail(ctx context.Context, token string) error {
	key := consts.EmailConfirmTokenKey + token
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return err
	}
	if value == "" {
		return ErrConfirmTokenInvalid
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return ErrConfirmTokenInvalid
	}
	if err = s.userRepo.ConfirmEmail(ctx, userID); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, key)
	return nil
}
