package ports

import (
	"context"

	"github.com/mcgege/openstudio/internal/domain"
)

// Dispatcher - транспорт: выполняет уже проверенный запрос и ровно один раз
// вызывает deliver с терминальным ответом.
type Dispatcher interface {
	SubmitCheckin(ctx context.Context, req domain.CheckinRequest, deliver func(domain.ServerResponse))
	FetchOptions(ctx context.Context, classID, customerID string, deliver func([]domain.ClassPassOption))
}
