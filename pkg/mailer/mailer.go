package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/manmith07/Proctor-Student-Management-System/config"
)

// Mailer 邮件发送接口（测试中可替换为 no-op 实现）
type Mailer interface {
	SendPasswordReset(to, resetLink string) error
}

// SMTPMailer 基于 net/smtp 的 Mailer 实现
type SMTPMailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewSMTPMailer 创建 SMTPMailer
func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// SendPasswordReset 发送密码重置链接邮件
func (m *SMTPMailer) SendPasswordReset(to, resetLink string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf(
		"You requested a password reset for your mentoring portal account.\r\n\r\n"+
			"Reset link (valid for 1 hour): %s\r\n\r\n"+
			"If you did not request this, you can safely ignore this email.\r\n",
		resetLink,
	)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	m.logger.Info("密码重置邮件已发送", zap.String("to", to))
	return nil
}
