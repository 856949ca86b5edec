package ports

import (
	"context"

	"github.com/mcgege/openstudio/internal/domain"
)

type AttendanceNotifier interface {
	NotifyCheckedIn(ctx context.Context, customer *domain.Customer, a *domain.Attendance)
	NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, a *domain.Attendance)
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, data any) error
}
