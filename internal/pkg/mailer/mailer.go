package mailer

import (
	"Pulseboard/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 邮件确认 webhook 客户端。邮件的渲染与投递由外部服务完成，
// 这里只负责把确认链接推给它
type Client struct {
	http    *resty.Client
	url     string
	siteURL string
}

func New(cfg config.AuthConfig) *Client {
	return &Client{
		http:    resty.New().SetTimeout(10 * time.Second),
		url:     cfg.MailerURL,
		siteURL: cfg.SiteURL,
	}
}

// Enabled 未配置 webhook 时注册流程跳过邮件确认
func (c *Client) Enabled() bool {
	return c.url != ""
}

// SendConfirmation 发送确认邮件请求
func (c *Client) SendConfirmation(ctx context.Context, email string, token string) error {
	confirmURL := fmt.Sprintf("%s/auth/confirm?token=%s", c.siteURL, token)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":       email,
			"confirm_url": confirmURL,
		}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("mailer webhook call failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mailer webhook returned status %s", resp.Status())
	}
	return nil
}
