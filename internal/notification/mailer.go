// Package notification emails the back-office whenever a new lead arrives.
// Delivery is asynchronous so a slow SMTP server never delays the submit path.
package notification

import (
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/tripveda/tripveda/config"
	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/leads"
)

// Mailer sends lead notifications through the configured SMTP server.
// It is disabled (a silent no-op) when no SMTP host is configured.
type Mailer struct {
	cfg       config.SmtpConfig
	recipient string
	dialer    *gomail.Dialer
	pool      *ants.Pool
	log       *zap.Logger
}

// NewMailer builds the mailer. recipient is the back-office inbox that gets
// new-lead alerts, usually the contact_email site setting.
func NewMailer(cfg config.SmtpConfig, recipient string, log *zap.Logger) (*Mailer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Mailer{cfg: cfg, recipient: recipient, log: log}
	if cfg.Host == "" {
		log.Info("smtp host not configured, lead notifications disabled")
		return m, nil
	}
	pool, err := ants.NewPool(4, ants.WithNonblocking(true))
	if err != nil {
		return nil, errors.Wrap(err, "notification pool")
	}
	m.pool = pool
	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m, nil
}

// Subscribe wires the mailer to the lead.created topic.
func (m *Mailer) Subscribe(bus EventBus.Bus) error {
	return bus.Subscribe(leads.TopicLeadCreated, m.OnLeadCreated)
}

// OnLeadCreated queues a notification for one freshly persisted lead.
func (m *Mailer) OnLeadCreated(lead *domain.Lead) {
	if m.dialer == nil || lead == nil {
		return
	}
	err := m.pool.Submit(func() {
		if err := m.send(lead); err != nil {
			m.log.Error("lead notification failed",
				zap.String("ref", lead.ReferenceNumber), zap.Error(err))
		}
	})
	if err != nil {
		m.log.Warn("notification pool saturated, dropping alert",
			zap.String("ref", lead.ReferenceNumber))
	}
}

func (m *Mailer) send(lead *domain.Lead) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", fmt.Sprintf("New %s lead %s", lead.ServiceType, lead.ReferenceNumber))
	msg.SetBody("text/plain", renderBody(lead))
	return m.dialer.DialAndSend(msg)
}

func renderBody(lead *domain.Lead) string {
	var b strings.Builder
	write := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	write("Reference", lead.ReferenceNumber)
	write("Name", lead.Name)
	write("Email", lead.Email)
	write("Phone", lead.Phone)
	write("Service", lead.ServiceType)
	write("Package", lead.PackageSlug)
	write("Route", lead.RouteName)
	write("Travel date", lead.TravelDate)
	if lead.Travelers > 0 {
		write("Travelers", fmt.Sprintf("%d", lead.Travelers))
	}
	write("Message", lead.Message)
	return b.String()
}

// Release drains the worker pool. Safe to call when disabled.
func (m *Mailer) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
