// Package mailer отправляет служебные письма сотрудникам.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/wneessen/go-mail"
)

// WelcomeMessage - данные приветственного письма новому сотруднику
type WelcomeMessage struct {
	To           string
	EmployeeName string
	TenantName   string
}

// Mailer определяет интерфейс отправки писем
type Mailer interface {
	SendWelcome(ctx context.Context, msg WelcomeMessage) error
}

const welcomeSubject = "Welcome to {{.TenantName}}"

const welcomeBody = `Hello {{.EmployeeName}},

Your employee profile at {{.TenantName}} has been created.
Your HR team will share sign-in details with you shortly.

Best regards,
{{.TenantName}} HR
`

var (
	welcomeSubjectTmpl = template.Must(template.New("subject").Parse(welcomeSubject))
	welcomeBodyTmpl    = template.Must(template.New("body").Parse(welcomeBody))
)

func render(tmpl *template.Template, msg WelcomeMessage) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// SMTPConfig - параметры подключения к SMTP-серверу
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer отправляет письма через SMTP
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer создаёт клиента SMTP. Соединение открывается на каждое письмо.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, msg WelcomeMessage) error {
	email, err := buildWelcome(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}

func buildWelcome(from string, msg WelcomeMessage) (*mail.Msg, error) {
	subject, err := render(welcomeSubjectTmpl, msg)
	if err != nil {
		return nil, err
	}
	body, err := render(welcomeBodyTmpl, msg)
	if err != nil {
		return nil, err
	}

	email := mail.NewMsg()
	if err := email.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := email.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	email.Subject(subject)
	email.SetBodyString(mail.TypeTextPlain, body)
	return email, nil
}

// NopMailer только пишет в лог; используется, когда SMTP не настроен
type NopMailer struct {
	logger *slog.Logger
}

// NewNopMailer создаёт почтовик без отправки
func NewNopMailer(logger *slog.Logger) *NopMailer {
	return &NopMailer{logger: logger}
}

func (m *NopMailer) SendWelcome(ctx context.Context, msg WelcomeMessage) error {
	m.logger.InfoContext(ctx, "smtp not configured, welcome email skipped",
		slog.String("to", msg.To),
		slog.String("tenant", msg.TenantName),
	)
	return nil
}
