package ports

import (
	"context"

	"github.com/mcgege/openstudio/internal/domain"
)

type AttendanceRepo interface {
	ListByClass(ctx context.Context, classID string) ([]*domain.Attendance, error)
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, a *domain.Attendance) error
}

type ClassPassRepo interface {
	ListOptions(ctx context.Context, classID, customerID string) ([]domain.ClassPassOption, error)
}
