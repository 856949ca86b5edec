// Package dispatch выполняет проверенные запросы канала отметок и загрузку
// абонементов и доставляет ровно один терминальный ответ на каждый запрос.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/events"
	"github.com/mcgege/openstudio/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	msgStatusChanged = "status changed"
	msgRemoved       = "attendance removed"
	msgCheckedIn     = "customer checked in"
	msgTimeout       = "request timed out, please try again"
	msgInternal      = "request failed, please try again"
)

// Сообщения этих ошибок показываются пользователю как есть.
var userFacing = []error{
	domain.ErrAttendanceNotFound,
	domain.ErrCustomerNotFound,
	domain.ErrClassPassNotFound,
	domain.ErrClassNotFound,
	domain.ErrInvalidTransition,
	domain.ErrNoClassesRemaining,
	domain.ErrAlreadyAttending,
	domain.ErrValidation,
}

type Dispatcher struct {
	attendanceRepo ports.AttendanceRepo
	classPassRepo  ports.ClassPassRepo
	customerRepo   ports.CustomerRepo
	notifier       ports.AttendanceNotifier
	publisher      ports.EventPublisher
	timeout        time.Duration
	logger         logger.Logger
	now            func() time.Time

	wg sync.WaitGroup
}

func New(
	attendanceRepo ports.AttendanceRepo,
	classPassRepo ports.ClassPassRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.AttendanceNotifier,
	publisher ports.EventPublisher,
	timeout time.Duration,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		attendanceRepo: attendanceRepo,
		classPassRepo:  classPassRepo,
		customerRepo:   customerRepo,
		notifier:       notifier,
		publisher:      publisher,
		timeout:        timeout,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) SubmitCheckin(ctx context.Context, req domain.CheckinRequest, deliver func(domain.ServerResponse)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		deliver(d.execute(ctx, req))
	}()
}

func (d *Dispatcher) FetchOptions(ctx context.Context, classID, customerID string, deliver func([]domain.ClassPassOption)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		options, err := d.classPassRepo.ListOptions(ctx, classID, customerID)
		if err != nil {
			d.logger.Error("failed to fetch booking options",
				logger.String("class_id", classID),
				logger.String("customer_id", customerID),
				logger.String("error", err.Error()),
			)
			options = []domain.ClassPassOption{}
		}

		deliver(options)
	}()
}

// Wait дожидается ответов на все отправленные запросы.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) execute(ctx context.Context, req domain.CheckinRequest) domain.ServerResponse {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		resp domain.ServerResponse
		err  error
	)
	switch req.Kind {
	case domain.RequestChangeStatus:
		resp, err = d.changeStatus(ctx, req)
	case domain.RequestRemove:
		resp, err = d.remove(ctx, req)
	case domain.RequestCheckin:
		resp, err = d.checkIn(ctx, req)
	default:
		err = fmt.Errorf("%w: unknown request kind %q", domain.ErrValidation, req.Kind)
	}

	if err != nil {
		d.logger.Error("check-in request failed",
			logger.String("kind", string(req.Kind)),
			logger.String("class_id", req.ClassID),
			logger.String("attendance_id", req.AttendanceID),
			logger.String("error", err.Error()),
		)
		return domain.ServerResponse{Error: true, Message: userMessage(err)}
	}

	return resp
}

func (d *Dispatcher) changeStatus(ctx context.Context, req domain.CheckinRequest) (domain.ServerResponse, error) {
	a, err := d.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return domain.ServerResponse{}, fmt.Errorf("get attendance: %w", err)
	}

	// статус в базе мог измениться с другой кассы
	if err = domain.ValidateTransition(a.Status, req.TargetStatus); err != nil {
		return domain.ServerResponse{}, err
	}

	if err = d.attendanceRepo.UpdateStatus(ctx, a.ID, req.TargetStatus); err != nil {
		return domain.ServerResponse{}, fmt.Errorf("update status: %w", err)
	}

	from := a.Status
	a.Status = req.TargetStatus

	d.publish(ctx, events.AttendanceStatusChanged, events.AttendanceStatusChangedEvent{
		AttendanceID: a.ID,
		ClassID:      a.ClassID,
		CustomerID:   a.CustomerID,
		From:         string(from),
		To:           string(a.Status),
		ChangedAt:    d.now(),
	})

	switch a.Status {
	case domain.BookingStatusAttending:
		d.notify(ctx, a, d.notifier.NotifyCheckedIn)
	case domain.BookingStatusCancelled:
		d.notify(ctx, a, d.notifier.NotifyBookingCancelled)
	}

	return domain.ServerResponse{Message: msgStatusChanged}, nil
}

func (d *Dispatcher) remove(ctx context.Context, req domain.CheckinRequest) (domain.ServerResponse, error) {
	a, err := d.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return domain.ServerResponse{}, fmt.Errorf("get attendance: %w", err)
	}

	if err = d.attendanceRepo.Delete(ctx, a.ID); err != nil {
		return domain.ServerResponse{}, fmt.Errorf("delete attendance: %w", err)
	}

	d.publish(ctx, events.AttendanceRemoved, events.AttendanceRemovedEvent{
		AttendanceID: a.ID,
		ClassID:      a.ClassID,
		CustomerID:   a.CustomerID,
		Status:       string(a.Status),
		RemovedAt:    d.now(),
	})

	return domain.ServerResponse{Message: msgRemoved}, nil
}

func (d *Dispatcher) checkIn(ctx context.Context, req domain.CheckinRequest) (domain.ServerResponse, error) {
	classPassID := req.ClassPassID
	a := &domain.Attendance{
		ID:          uuid.New().String(),
		ClassID:     req.ClassID,
		CustomerID:  req.CustomerID,
		Status:      domain.BookingStatusAttending,
		ClassPassID: &classPassID,
		CreatedOn:   d.now(),
	}

	if err := d.attendanceRepo.CheckIn(ctx, a); err != nil {
		return domain.ServerResponse{}, fmt.Errorf("check in: %w", err)
	}

	d.publish(ctx, events.AttendanceCheckedIn, events.AttendanceCheckedInEvent{
		AttendanceID: a.ID,
		ClassID:      a.ClassID,
		CustomerID:   a.CustomerID,
		ClassPassID:  classPassID,
		CheckedInAt:  a.CreatedOn,
	})
	d.notify(ctx, a, d.notifier.NotifyCheckedIn)

	return domain.ServerResponse{Message: msgCheckedIn, Attendance: a}, nil
}

func (d *Dispatcher) publish(ctx context.Context, subject string, data any) {
	if err := d.publisher.Publish(ctx, subject, data); err != nil {
		d.logger.Error("failed to publish event",
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}

// notify не влияет на ответ: клиент и занятие уже обновлены.
func (d *Dispatcher) notify(
	ctx context.Context,
	a *domain.Attendance,
	send func(context.Context, *domain.Customer, *domain.Attendance),
) {
	bg := context.WithoutCancel(ctx)
	attendance := *a

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		customer, err := d.customerRepo.GetByID(bg, attendance.CustomerID)
		if err != nil {
			d.logger.Error("failed to get customer for notification",
				logger.String("customer_id", attendance.CustomerID),
				logger.String("error", err.Error()),
			)
			return
		}

		send(bg, customer, &attendance)
	}()
}

func userMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}

	for _, target := range userFacing {
		if errors.Is(err, target) {
			var te *domain.InvalidTransitionError
			if errors.As(err, &te) {
				return te.Error()
			}
			return target.Error()
		}
	}

	return msgInternal
}
