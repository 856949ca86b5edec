package ports

import (
	"context"

	"github.com/mcgege/openstudio/internal/domain"
)

type CustomerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
