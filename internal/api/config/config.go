package config

import (
	"Pulseboard/internal/pkg/consts"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// JWTSecretMinLen 弱密钥直接拒绝，避免可伪造的会话令牌
const JWTSecretMinLen = 16

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", consts.ModeDevelopment)
	viper.SetDefault("auth.token_ttl_hours", 24)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// Validate 启动期配置校验。生产模式下调用方应当直接失败退出，开发模式下仅告警
func (c *Config) Validate() error {
	var errs []error

	if c.DB.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required"))
	}
	if len(c.Auth.JWTSecret) < JWTSecretMinLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", JWTSecretMinLen))
	}
	if err := validateSiteURL(c.Auth.SiteURL, "auth.site_url"); err != nil {
		errs = append(errs, err)
	}
	if err := validateSiteURL(c.Auth.MailerURL, "auth.mailer_url"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// IsProduction 是否运行在生产模式
func (c *Config) IsProduction() bool {
	return c.Server.Mode == consts.ModeProduction
}

func validateSiteURL(raw string, field string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be a well-formed http/https URL", field)
	}
	return nil
}
