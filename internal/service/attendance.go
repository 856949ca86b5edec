package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/entitlement"
	"github.com/mcgege/openstudio/internal/lifecycle"
	"github.com/mcgege/openstudio/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Вытесненный контроллер больше не принимает запросов: иначе у занятия
// окажется два канала отметок.
var errControllerEvicted = errors.New("attendance controller evicted")

// AttendanceController управляет отметками одного занятия.
// Локальный список записей меняется только после успешного ответа транспорта.
type AttendanceController struct {
	classID    string
	repo       ports.AttendanceRepo
	dispatcher ports.Dispatcher
	logger     logger.Logger
	now        func() time.Time

	checkin *lifecycle.CheckinMachine
	options *lifecycle.OptionsMachine

	mu              sync.Mutex
	roster          map[string]domain.Attendance
	optionsCustomer *domain.Customer
	touchedAt       time.Time
	evicted         bool
}

func NewAttendanceController(
	classID string,
	repo ports.AttendanceRepo,
	dispatcher ports.Dispatcher,
	logger logger.Logger,
	now func() time.Time,
) *AttendanceController {
	return &AttendanceController{
		classID:    classID,
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
		now:        now,
		checkin:    lifecycle.NewCheckinMachine(),
		options:    lifecycle.NewOptionsMachine(),
		roster:     make(map[string]domain.Attendance),
		touchedAt:  now(),
	}
}

func (c *AttendanceController) ClassID() string {
	return c.classID
}

func (c *AttendanceController) LoadRoster(ctx context.Context) error {
	list, err := c.repo.ListByClass(ctx, c.classID)
	if err != nil {
		return fmt.Errorf("list attendance: %w", err)
	}

	roster := make(map[string]domain.Attendance, len(list))
	for _, a := range list {
		roster[a.ID] = *a
	}

	c.mu.Lock()
	c.roster = roster
	c.touchedAt = c.now()
	c.mu.Unlock()

	return nil
}

// ChangeStatus проверяет переход до отправки запроса: недопустимый переход
// в транспорт не попадает.
func (c *AttendanceController) ChangeStatus(ctx context.Context, attendanceID string, target domain.BookingStatus) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, target)
	}

	req := domain.CheckinRequest{
		Kind:         domain.RequestChangeStatus,
		ClassID:      c.classID,
		AttendanceID: attendanceID,
		TargetStatus: target,
	}

	c.mu.Lock()
	if c.evicted {
		c.mu.Unlock()
		return errControllerEvicted
	}
	a, ok := c.roster[attendanceID]
	if !ok {
		c.mu.Unlock()
		return domain.ErrAttendanceNotFound
	}
	if err := domain.ValidateTransition(a.Status, target); err != nil {
		c.mu.Unlock()
		return err
	}
	if err := c.checkin.Submit(req); err != nil {
		c.mu.Unlock()
		return err
	}
	c.touchedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("status change submitted",
		logger.String("class_id", c.classID),
		logger.String("attendance_id", attendanceID),
		logger.String("from", string(a.Status)),
		logger.String("to", string(target)),
	)

	c.dispatch(ctx, req)

	return nil
}

// RemoveAttendance разрешено из любого статуса.
func (c *AttendanceController) RemoveAttendance(ctx context.Context, attendanceID string) error {
	req := domain.CheckinRequest{
		Kind:         domain.RequestRemove,
		ClassID:      c.classID,
		AttendanceID: attendanceID,
	}

	c.mu.Lock()
	if c.evicted {
		c.mu.Unlock()
		return errControllerEvicted
	}
	if _, ok := c.roster[attendanceID]; !ok {
		c.mu.Unlock()
		return domain.ErrAttendanceNotFound
	}
	if err := c.checkin.Submit(req); err != nil {
		c.mu.Unlock()
		return err
	}
	c.touchedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("attendance removal submitted",
		logger.String("class_id", c.classID),
		logger.String("attendance_id", attendanceID),
	)

	c.dispatch(ctx, req)

	return nil
}

// SelectBookingOption отклоняет неподходящий абонемент локально, без запроса.
// Подходящий отправляет отметку клиента по этому абонементу.
func (c *AttendanceController) SelectBookingOption(
	ctx context.Context,
	option domain.ClassPassOption,
	customer *domain.Customer,
) (domain.Selection, error) {
	ev := entitlement.Evaluate(option, entitlement.NewMembershipSet(customer.ActiveMembershipIDs...), c.now())
	if !ev.Usable {
		c.logger.Debug("booking option rejected",
			logger.String("class_id", c.classID),
			logger.String("customer_id", customer.ID),
			logger.String("class_pass_id", option.ID),
			logger.Any("reasons", ev.Reasons),
		)
		return domain.Selection{Accepted: false, Reasons: ev.Reasons}, nil
	}

	req := domain.CheckinRequest{
		Kind:         domain.RequestCheckin,
		ClassID:      c.classID,
		TargetStatus: domain.BookingStatusAttending,
		CustomerID:   customer.ID,
		ClassPassID:  option.ID,
	}

	c.mu.Lock()
	if c.evicted {
		c.mu.Unlock()
		return domain.Selection{}, errControllerEvicted
	}
	if err := c.checkin.Submit(req); err != nil {
		c.mu.Unlock()
		return domain.Selection{}, err
	}
	c.touchedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("customer check-in submitted",
		logger.String("class_id", c.classID),
		logger.String("customer_id", customer.ID),
		logger.String("class_pass_id", option.ID),
	)

	c.dispatch(ctx, req)

	return domain.Selection{Accepted: true, Reasons: []domain.Reason{}}, nil
}

func (c *AttendanceController) dispatch(ctx context.Context, req domain.CheckinRequest) {
	bg := context.WithoutCancel(ctx)
	c.dispatcher.SubmitCheckin(bg, req, func(resp domain.ServerResponse) {
		_ = c.OnServerResponse(bg, resp)
	})
}

// OnServerResponse завершает запрос канала отметок. Ошибка сервера - это данные
// в состоянии канала, а не error; error возвращается только для ответа без запроса.
func (c *AttendanceController) OnServerResponse(ctx context.Context, resp domain.ServerResponse) error {
	c.mu.Lock()
	req, err := c.checkin.OnServerResponse(resp)
	if err != nil {
		c.mu.Unlock()
		c.logger.LogAttrs(ctx, logger.WarnLevel, "unexpected check-in response",
			logger.String("class_id", c.classID),
			logger.Any("error", resp.Error),
			logger.String("message", resp.Message),
		)
		return err
	}
	if !resp.Error {
		c.apply(req, resp)
	}
	c.touchedAt = c.now()
	c.mu.Unlock()

	if resp.Error {
		c.logger.LogAttrs(ctx, logger.InfoLevel, "check-in request failed",
			logger.String("class_id", c.classID),
			logger.String("kind", string(req.Kind)),
			logger.String("attendance_id", req.AttendanceID),
			logger.String("message", resp.Message),
		)
		return nil
	}

	c.logger.LogAttrs(ctx, logger.InfoLevel, "check-in request succeeded",
		logger.String("class_id", c.classID),
		logger.String("kind", string(req.Kind)),
		logger.String("attendance_id", req.AttendanceID),
	)

	return nil
}

// apply вызывается под c.mu.
func (c *AttendanceController) apply(req domain.CheckinRequest, resp domain.ServerResponse) {
	switch req.Kind {
	case domain.RequestChangeStatus:
		if a, ok := c.roster[req.AttendanceID]; ok {
			a.Status = req.TargetStatus
			c.roster[req.AttendanceID] = a
		}
	case domain.RequestRemove:
		delete(c.roster, req.AttendanceID)
	case domain.RequestCheckin:
		if resp.Attendance != nil {
			c.roster[resp.Attendance.ID] = *resp.Attendance
		}
	}
}

func (c *AttendanceController) RequestBookingOptions(ctx context.Context, customer *domain.Customer) error {
	c.mu.Lock()
	if c.evicted {
		c.mu.Unlock()
		return errControllerEvicted
	}
	if err := c.options.Request(); err != nil {
		c.mu.Unlock()
		return err
	}
	cust := *customer
	c.optionsCustomer = &cust
	c.touchedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("booking options requested",
		logger.String("class_id", c.classID),
		logger.String("customer_id", customer.ID),
	)

	bg := context.WithoutCancel(ctx)
	c.dispatcher.FetchOptions(bg, c.classID, customer.ID, func(options []domain.ClassPassOption) {
		_ = c.ReceiveBookingOptions(bg, options)
	})

	return nil
}

func (c *AttendanceController) ReceiveBookingOptions(ctx context.Context, options []domain.ClassPassOption) error {
	if err := c.options.Receive(options); err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "unexpected booking options response",
			logger.String("class_id", c.classID),
			logger.Int("count", len(options)),
		)
		return err
	}

	c.mu.Lock()
	c.touchedAt = c.now()
	c.mu.Unlock()

	return nil
}

// SetOptionsLoading переключает только флаг загрузки абонементов.
func (c *AttendanceController) SetOptionsLoading(loading bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.evicted {
		return errControllerEvicted
	}
	c.options.SetLoading(loading)
	c.touchedAt = c.now()

	return nil
}

func (c *AttendanceController) BookingOptions() domain.BookingOptions {
	state := c.options.State()

	c.mu.Lock()
	customer := c.optionsCustomer
	c.mu.Unlock()

	view := domain.BookingOptions{State: state, Options: []domain.EvaluatedOption{}}
	if customer == nil {
		return view
	}

	view.CustomerID = customer.ID
	view.Options = entitlement.EvaluateAll(
		state.Data,
		entitlement.NewMembershipSet(customer.ActiveMembershipIDs...),
		c.now(),
	)

	return view
}

// LoadedOption ищет абонемент среди загруженных для этого клиента.
func (c *AttendanceController) LoadedOption(customerID, classPassID string) (domain.ClassPassOption, bool) {
	state := c.options.State()

	c.mu.Lock()
	customer := c.optionsCustomer
	c.mu.Unlock()

	if !state.Loaded || customer == nil || customer.ID != customerID {
		return domain.ClassPassOption{}, false
	}

	for _, o := range state.Data {
		if o.ID == classPassID {
			return o, true
		}
	}

	return domain.ClassPassOption{}, false
}

func (c *AttendanceController) Status(attendanceID string) (domain.BookingStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.roster[attendanceID]
	if !ok {
		return "", domain.ErrAttendanceNotFound
	}
	return a.Status, nil
}

// Roster возвращает копию списка записей по времени создания.
func (c *AttendanceController) Roster() []domain.Attendance {
	c.mu.Lock()
	res := make([]domain.Attendance, 0, len(c.roster))
	for _, a := range c.roster {
		res = append(res, a)
	}
	c.mu.Unlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedOn.Equal(res[j].CreatedOn) {
			return res[i].ID < res[j].ID
		}
		return res[i].CreatedOn.Before(res[j].CreatedOn)
	})

	return res
}

func (c *AttendanceController) CheckinState() domain.RequestState[*domain.CheckinRequest] {
	return c.checkin.State()
}

func (c *AttendanceController) OptionsState() domain.RequestState[[]domain.ClassPassOption] {
	return c.options.State()
}

func (c *AttendanceController) touch() {
	c.mu.Lock()
	c.touchedAt = c.now()
	c.mu.Unlock()
}

// evictIfIdle проверяет простой и закрывает контроллер под одной блокировкой,
// поэтому между проверкой и закрытием запрос отправить нельзя.
func (c *AttendanceController) evictIfIdle(now time.Time, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.evicted || !c.idleLocked(now, ttl) {
		return false
	}
	c.evicted = true

	return true
}

// idleLocked - ни один канал не ждёт ответа и контроллер не трогали дольше ttl.
func (c *AttendanceController) idleLocked(now time.Time, ttl time.Duration) bool {
	if c.checkin.Loading() || c.options.Loading() {
		return false
	}
	return now.Sub(c.touchedAt) > ttl
}
