package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Сколько раз повторять вызов, если контроллер вытеснили между выдачей и запросом.
const evictedRetries = 3

// CheckinService держит по одному AttendanceController на занятие.
type CheckinService struct {
	attendanceRepo ports.AttendanceRepo
	customerRepo   ports.CustomerRepo
	dispatcher     ports.Dispatcher
	logger         logger.Logger
	now            func() time.Time

	mu          sync.Mutex
	controllers map[string]*AttendanceController
}

func NewCheckinService(
	attendanceRepo ports.AttendanceRepo,
	customerRepo ports.CustomerRepo,
	dispatcher ports.Dispatcher,
	logger logger.Logger,
	now func() time.Time,
) *CheckinService {
	return &CheckinService{
		attendanceRepo: attendanceRepo,
		customerRepo:   customerRepo,
		dispatcher:     dispatcher,
		logger:         logger,
		now:            now,
		controllers:    make(map[string]*AttendanceController),
	}
}

// Controller возвращает контроллер занятия, при первом обращении загружает список записей.
// Выданный контроллер считается использованным и не вытесняется в ближайший ttl.
func (s *CheckinService) Controller(ctx context.Context, classID string) (*AttendanceController, error) {
	s.mu.Lock()
	c, ok := s.controllers[classID]
	if ok {
		c.touch()
	}
	s.mu.Unlock()
	if ok {
		return c, nil
	}

	c = NewAttendanceController(classID, s.attendanceRepo, s.dispatcher, s.logger, s.now)
	if err := c.LoadRoster(ctx); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.controllers[classID]; ok {
		existing.touch()
		return existing, nil
	}
	s.controllers[classID] = c

	s.logger.Debug("attendance controller created", logger.String("class_id", classID))

	return c, nil
}

// withController выполняет fn на контроллере занятия. Если контроллер успели
// вытеснить, берётся новый из реестра.
func (s *CheckinService) withController(ctx context.Context, classID string, fn func(*AttendanceController) error) error {
	var err error
	for range evictedRetries {
		var c *AttendanceController
		c, err = s.Controller(ctx, classID)
		if err != nil {
			return err
		}

		if err = fn(c); !errors.Is(err, errControllerEvicted) {
			return err
		}

		s.logger.Debug("attendance controller evicted during request, retrying",
			logger.String("class_id", classID),
		)
	}

	return err
}

// Roster перечитывает записи занятия из базы и возвращает их.
func (s *CheckinService) Roster(ctx context.Context, classID string) ([]domain.Attendance, error) {
	c, err := s.Controller(ctx, classID)
	if err != nil {
		return nil, err
	}

	if err = c.LoadRoster(ctx); err != nil {
		return nil, fmt.Errorf("reload roster: %w", err)
	}

	return c.Roster(), nil
}

func (s *CheckinService) ChangeStatus(ctx context.Context, classID, attendanceID string, target domain.BookingStatus) error {
	return s.withController(ctx, classID, func(c *AttendanceController) error {
		return c.ChangeStatus(ctx, attendanceID, target)
	})
}

func (s *CheckinService) RemoveAttendance(ctx context.Context, classID, attendanceID string) error {
	return s.withController(ctx, classID, func(c *AttendanceController) error {
		return c.RemoveAttendance(ctx, attendanceID)
	})
}

func (s *CheckinService) CheckinState(ctx context.Context, classID string) (domain.RequestState[*domain.CheckinRequest], error) {
	c, err := s.Controller(ctx, classID)
	if err != nil {
		return domain.RequestState[*domain.CheckinRequest]{}, err
	}

	return c.CheckinState(), nil
}

func (s *CheckinService) RequestBookingOptions(ctx context.Context, classID, customerID string) error {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}

	return s.withController(ctx, classID, func(c *AttendanceController) error {
		return c.RequestBookingOptions(ctx, customer)
	})
}

// SetOptionsLoading вручную переключает флаг загрузки абонементов занятия.
func (s *CheckinService) SetOptionsLoading(ctx context.Context, classID string, loading bool) error {
	return s.withController(ctx, classID, func(c *AttendanceController) error {
		return c.SetOptionsLoading(loading)
	})
}

func (s *CheckinService) BookingOptions(ctx context.Context, classID string) (domain.BookingOptions, error) {
	c, err := s.Controller(ctx, classID)
	if err != nil {
		return domain.BookingOptions{}, err
	}

	return c.BookingOptions(), nil
}

// SelectBookingOption выбирает абонемент из уже загруженных для этого клиента.
func (s *CheckinService) SelectBookingOption(ctx context.Context, classID, customerID, classPassID string) (domain.Selection, error) {
	var sel domain.Selection
	err := s.withController(ctx, classID, func(c *AttendanceController) error {
		option, ok := c.LoadedOption(customerID, classPassID)
		if !ok {
			return domain.ErrClassPassNotFound
		}

		// членства перечитываются: могли купить после загрузки абонементов
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}

		sel, err = c.SelectBookingOption(ctx, option, customer)
		return err
	})
	if err != nil {
		return domain.Selection{}, err
	}

	return sel, nil
}

// EvictIdle удаляет контроллеры, которые не ждут ответа и не использовались дольше ttl.
func (s *CheckinService) EvictIdle(ctx context.Context, ttl time.Duration) []string {
	now := s.now()

	s.mu.Lock()
	var evicted []string
	for id, c := range s.controllers {
		if c.evictIfIdle(now, ttl) {
			delete(s.controllers, id)
			evicted = append(evicted, id)
		}
	}
	s.mu.Unlock()

	sort.Strings(evicted)

	if len(evicted) > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "idle attendance controllers evicted",
			logger.Int("count", len(evicted)),
		)
	}

	return evicted
}
