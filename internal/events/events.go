package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/wb-go/wbf/logger"
)

const (
	AttendanceStatusChanged = "attendance.status_changed"
	AttendanceRemoved       = "attendance.removed"
	AttendanceCheckedIn     = "attendance.checked_in"
)

type AttendanceStatusChangedEvent struct {
	AttendanceID string    `json:"attendance_id"`
	ClassID      string    `json:"class_id"`
	CustomerID   string    `json:"customer_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	ChangedAt    time.Time `json:"changed_at"`
}

type AttendanceRemovedEvent struct {
	AttendanceID string    `json:"attendance_id"`
	ClassID      string    `json:"class_id"`
	CustomerID   string    `json:"customer_id"`
	Status       string    `json:"status"`
	RemovedAt    time.Time `json:"removed_at"`
}

type AttendanceCheckedInEvent struct {
	AttendanceID string    `json:"attendance_id"`
	ClassID      string    `json:"class_id"`
	CustomerID   string    `json:"customer_id"`
	ClassPassID  string    `json:"class_pass_id"`
	CheckedInAt  time.Time `json:"checked_in_at"`
}

type NATSPublisher struct {
	conn   *nats.Conn
	logger logger.Logger
}

// NewNATSPublisher без url возвращает выключенный publisher, события только пишутся в лог.
func NewNATSPublisher(url string, logger logger.Logger) (*NATSPublisher, error) {
	if url == "" {
		logger.Warn("nats url is empty, domain events disabled")
		return &NATSPublisher{logger: logger}, nil
	}

	conn, err := nats.Connect(url, nats.Name("openstudio-checkin"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if p.conn == nil {
		p.logger.Debug("event skipped (nats disabled)",
			logger.String("subject", subject),
			logger.String("payload", string(payload)),
		)
		return nil
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	if err = p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	return nil
}

func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		return fmt.Errorf("drain nats: %w", err)
	}
	return nil
}
