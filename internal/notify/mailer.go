package notify

import (
	"fmt"
	"log/slog"
	"newsagent/internal/config"

	"gopkg.in/gomail.v2"
)

// DefaultSubject используется когда тема письма не задана явно.
const DefaultSubject = "Daily Analytics Digest"

// Mailer отправляет текстовый дайджест одним письмом по SMTP.
// Соединение аутентифицируется и поднимается до TLS через STARTTLS.
// Повторных попыток нет, ошибка доставки возвращается вызывающему.
type Mailer struct {
	cfg config.MailConfig
	log *slog.Logger
}

// NewMailer создает новый отправитель с проверенной конфигурацией.
func NewMailer(cfg config.MailConfig, log *slog.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: log,
	}
}

// Send отправляет письмо с указанной темой и текстовым телом
// всем получателям из конфигурации.
func (m *Mailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Digest email delivery failed",
			slog.String("component", "mailer"),
			slog.String("host", m.cfg.Host),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to send digest email: %w", err)
	}
	m.log.Info("Digest email sent",
		slog.String("component", "mailer"),
		slog.Int("recipients", len(m.cfg.To)),
	)
	return nil
}
