package service

import (
	"context"
	"testing"
	"time"

	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var allStatuses = []domain.BookingStatus{
	domain.BookingStatusBooked,
	domain.BookingStatusAttending,
	domain.BookingStatusCancelled,
}

type controllerHarness struct {
	repo       *mocks.MockAttendanceRepo
	dispatcher *mocks.MockDispatcher
	c          *AttendanceController

	deliver        func(domain.ServerResponse)
	deliverOptions func([]domain.ClassPassOption)
}

func newControllerHarness(t *testing.T, roster ...*domain.Attendance) *controllerHarness {
	t.Helper()

	h := &controllerHarness{
		repo:       mocks.NewMockAttendanceRepo(t),
		dispatcher: mocks.NewMockDispatcher(t),
	}
	h.c = NewAttendanceController("c1", h.repo, h.dispatcher, newTestLogger(t), func() time.Time { return testNow })

	h.repo.EXPECT().ListByClass(mock.Anything, "c1").Return(roster, nil).Once()
	require.NoError(t, h.c.LoadRoster(context.Background()))

	return h
}

// expectSubmit запоминает deliver, чтобы тест сам выбрал момент ответа.
func (h *controllerHarness) expectSubmit(req domain.CheckinRequest) {
	h.dispatcher.EXPECT().SubmitCheckin(mock.Anything, req, mock.Anything).
		Run(func(_ context.Context, _ domain.CheckinRequest, deliver func(domain.ServerResponse)) {
			h.deliver = deliver
		}).
		Return().
		Once()
}

func (h *controllerHarness) expectFetch(customerID string) {
	h.dispatcher.EXPECT().FetchOptions(mock.Anything, "c1", customerID, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, deliver func([]domain.ClassPassOption)) {
			h.deliverOptions = deliver
		}).
		Return().
		Once()
}

func booked(id string) *domain.Attendance {
	return &domain.Attendance{ID: id, ClassID: "c1", CustomerID: "u-" + id, Status: domain.BookingStatusBooked, CreatedOn: testNow}
}

func statusChange(id string, target domain.BookingStatus) domain.CheckinRequest {
	return domain.CheckinRequest{
		Kind:         domain.RequestChangeStatus,
		ClassID:      "c1",
		AttendanceID: id,
		TargetStatus: target,
	}
}

func TestAttendanceController_ChangeStatus_Grid(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				a := booked("a1")
				a.Status = from
				h := newControllerHarness(t, a)

				if !domain.CanTransition(from, to) {
					// у мока нет ожиданий: любой вызов транспорта провалит тест
					err := h.c.ChangeStatus(context.Background(), "a1", to)

					require.ErrorIs(t, err, domain.ErrInvalidTransition)
					assert.Equal(t, domain.PhaseIdle, h.c.CheckinState().Phase())
					status, _ := h.c.Status("a1")
					assert.Equal(t, from, status)
					return
				}

				h.expectSubmit(statusChange("a1", to))

				require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", to))
				assert.True(t, h.c.CheckinState().Loading)

				h.deliver(domain.ServerResponse{Message: "status changed"})

				status, err := h.c.Status("a1")
				require.NoError(t, err)
				assert.Equal(t, to, status)

				state := h.c.CheckinState()
				assert.Equal(t, domain.PhaseSuccess, state.Phase())
				assert.Empty(t, state.ErrorMessage)
			})
		}
	}
}

func TestAttendanceController_ChangeStatus_BookedToBookedRejectedLocally(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	err := h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusBooked)

	var te *domain.InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.BookingStatusBooked, te.Current)
	assert.Equal(t, domain.BookingStatusBooked, te.Requested)
	h.dispatcher.AssertNotCalled(t, "SubmitCheckin", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceController_ChangeStatus_InFlightRejected(t *testing.T) {
	h := newControllerHarness(t, booked("a1"), booked("a2"))

	h.expectSubmit(statusChange("a1", domain.BookingStatusAttending))
	require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusAttending))

	err := h.c.ChangeStatus(context.Background(), "a2", domain.BookingStatusCancelled)
	require.ErrorIs(t, err, domain.ErrRequestAlreadyInFlight)

	err = h.c.RemoveAttendance(context.Background(), "a2")
	require.ErrorIs(t, err, domain.ErrRequestAlreadyInFlight)

	// в состоянии остался первый запрос
	state := h.c.CheckinState()
	require.NotNil(t, state.Data)
	assert.Equal(t, "a1", state.Data.AttendanceID)

	h.deliver(domain.ServerResponse{})

	status, _ := h.c.Status("a2")
	assert.Equal(t, domain.BookingStatusBooked, status)
}

func TestAttendanceController_ChangeStatus_FailureLeavesStatus(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	h.expectSubmit(statusChange("a1", domain.BookingStatusAttending))
	require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusAttending))

	h.deliver(domain.ServerResponse{Error: true, Message: "Class pass expired on 2026-03-01"})

	status, err := h.c.Status("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, status)

	state := h.c.CheckinState()
	assert.Equal(t, domain.PhaseFailure, state.Phase())
	assert.True(t, state.Error)
	assert.Equal(t, "Class pass expired on 2026-03-01", state.ErrorMessage)

	// после ответа канал снова свободен
	h.expectSubmit(statusChange("a1", domain.BookingStatusCancelled))
	require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusCancelled))

	state = h.c.CheckinState()
	assert.True(t, state.Loading)
	assert.False(t, state.Error)
	assert.Empty(t, state.ErrorMessage)
}

func TestAttendanceController_ChangeStatus_UnknownStatus(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	err := h.c.ChangeStatus(context.Background(), "a1", "checked-in")

	require.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Equal(t, domain.PhaseIdle, h.c.CheckinState().Phase())
}

func TestAttendanceController_ChangeStatus_NotInRoster(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	err := h.c.ChangeStatus(context.Background(), "zzz", domain.BookingStatusCancelled)

	require.ErrorIs(t, err, domain.ErrAttendanceNotFound)
}

func TestAttendanceController_Remove_FromAnyStatus(t *testing.T) {
	for _, s := range allStatuses {
		t.Run(string(s), func(t *testing.T) {
			a := booked("a1")
			a.Status = s
			h := newControllerHarness(t, a)

			h.expectSubmit(domain.CheckinRequest{Kind: domain.RequestRemove, ClassID: "c1", AttendanceID: "a1"})
			require.NoError(t, h.c.RemoveAttendance(context.Background(), "a1"))

			h.deliver(domain.ServerResponse{Message: "attendance removed"})

			_, err := h.c.Status("a1")
			assert.ErrorIs(t, err, domain.ErrAttendanceNotFound)
			assert.Empty(t, h.c.Roster())
		})
	}
}

func TestAttendanceController_Remove_FailureKeepsRecord(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	h.expectSubmit(domain.CheckinRequest{Kind: domain.RequestRemove, ClassID: "c1", AttendanceID: "a1"})
	require.NoError(t, h.c.RemoveAttendance(context.Background(), "a1"))

	h.deliver(domain.ServerResponse{Error: true, Message: "attendance is locked"})

	status, err := h.c.Status("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, status)
	assert.Equal(t, "attendance is locked", h.c.CheckinState().ErrorMessage)
}

func TestAttendanceController_OnServerResponse_WithoutRequest(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	err := h.c.OnServerResponse(context.Background(), domain.ServerResponse{Error: true, Message: "late"})

	require.ErrorIs(t, err, domain.ErrUnexpectedReceive)
	state := h.c.CheckinState()
	assert.Equal(t, domain.PhaseIdle, state.Phase())
	assert.Empty(t, state.ErrorMessage)
}

func TestAttendanceController_SelectBookingOption_RejectedNeverDispatches(t *testing.T) {
	h := newControllerHarness(t)

	option := domain.ClassPassOption{
		ID:               "p1",
		ClassesRemaining: 0,
		ValidUntil:       testNow.AddDate(0, 0, -1),
		Allowed:          false,
	}
	customer := &domain.Customer{ID: "u1"}

	sel, err := h.c.SelectBookingOption(context.Background(), option, customer)

	require.NoError(t, err)
	assert.False(t, sel.Accepted)
	assert.Equal(t, []domain.Reason{
		domain.ReasonNotAllowedForClass,
		domain.ReasonExpired,
		domain.ReasonNoClassesRemaining,
	}, sel.Reasons)
	assert.Equal(t, domain.PhaseIdle, h.c.CheckinState().Phase())
}

func TestAttendanceController_SelectBookingOption_MembershipRequired(t *testing.T) {
	h := newControllerHarness(t)

	membership := "m-gold"
	option := domain.ClassPassOption{
		ID:                   "p1",
		Unlimited:            true,
		ValidUntil:           testNow,
		Allowed:              true,
		RequiredMembershipID: &membership,
	}

	sel, err := h.c.SelectBookingOption(context.Background(), option, &domain.Customer{ID: "u1"})

	require.NoError(t, err)
	assert.False(t, sel.Accepted)
	assert.Equal(t, []domain.Reason{domain.ReasonMembershipRequired}, sel.Reasons)
}

func TestAttendanceController_SelectBookingOption_AcceptedChecksIn(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	membership := "m-gold"
	option := domain.ClassPassOption{
		ID:                   "p1",
		ClassesRemaining:     2,
		ValidUntil:           testNow,
		Allowed:              true,
		RequiredMembershipID: &membership,
	}
	customer := &domain.Customer{ID: "u1", ActiveMembershipIDs: []string{"m-gold"}}

	h.expectSubmit(domain.CheckinRequest{
		Kind:         domain.RequestCheckin,
		ClassID:      "c1",
		TargetStatus: domain.BookingStatusAttending,
		CustomerID:   "u1",
		ClassPassID:  "p1",
	})

	sel, err := h.c.SelectBookingOption(context.Background(), option, customer)

	require.NoError(t, err)
	assert.True(t, sel.Accepted)
	assert.Empty(t, sel.Reasons)
	assert.True(t, h.c.CheckinState().Loading)

	passID := "p1"
	created := &domain.Attendance{
		ID:          "a2",
		ClassID:     "c1",
		CustomerID:  "u1",
		Status:      domain.BookingStatusAttending,
		ClassPassID: &passID,
		CreatedOn:   testNow.Add(time.Minute),
	}
	h.deliver(domain.ServerResponse{Message: "customer checked in", Attendance: created})

	roster := h.c.Roster()
	require.Len(t, roster, 2)
	assert.Equal(t, "a1", roster[0].ID)
	assert.Equal(t, "a2", roster[1].ID)
	assert.Equal(t, domain.BookingStatusAttending, roster[1].Status)
}

func TestAttendanceController_SelectBookingOption_InFlight(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	h.expectSubmit(statusChange("a1", domain.BookingStatusCancelled))
	require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusCancelled))

	option := domain.ClassPassOption{ID: "p1", Unlimited: true, ValidUntil: testNow, Allowed: true}
	_, err := h.c.SelectBookingOption(context.Background(), option, &domain.Customer{ID: "u1"})

	require.ErrorIs(t, err, domain.ErrRequestAlreadyInFlight)
}

func TestAttendanceController_BookingOptions_Flow(t *testing.T) {
	h := newControllerHarness(t)

	customer := &domain.Customer{ID: "u1", ActiveMembershipIDs: []string{"m1"}}
	h.expectFetch("u1")

	require.NoError(t, h.c.RequestBookingOptions(context.Background(), customer))

	view := h.c.BookingOptions()
	assert.Equal(t, domain.PhaseLoading, view.State.Phase())
	assert.Equal(t, "u1", view.CustomerID)
	assert.Empty(t, view.Options)

	err := h.c.RequestBookingOptions(context.Background(), customer)
	require.ErrorIs(t, err, domain.ErrRequestAlreadyInFlight)

	m1 := "m1"
	options := []domain.ClassPassOption{
		{ID: "p1", Name: "Unlimited", Unlimited: true, ValidUntil: testNow, Allowed: true, RequiredMembershipID: &m1},
		{ID: "p2", Name: "5 classes", ClassesRemaining: 0, ValidUntil: testNow.AddDate(0, 1, 0), Allowed: true},
	}
	h.deliverOptions(options)

	view = h.c.BookingOptions()
	assert.Equal(t, domain.PhaseSuccess, view.State.Phase())
	assert.Equal(t, options, view.State.Data)
	require.Len(t, view.Options, 2)
	assert.True(t, view.Options[0].Evaluation.Usable)
	assert.False(t, view.Options[1].Evaluation.Usable)
	assert.Equal(t, []domain.Reason{domain.ReasonNoClassesRemaining}, view.Options[1].Evaluation.Reasons)

	got, ok := h.c.LoadedOption("u1", "p2")
	require.True(t, ok)
	assert.Equal(t, "5 classes", got.Name)

	_, ok = h.c.LoadedOption("u2", "p2")
	assert.False(t, ok)
}

func TestAttendanceController_BookingOptions_NewRequestClearsData(t *testing.T) {
	h := newControllerHarness(t)

	h.expectFetch("u1")
	require.NoError(t, h.c.RequestBookingOptions(context.Background(), &domain.Customer{ID: "u1"}))
	h.deliverOptions([]domain.ClassPassOption{{ID: "p1", Unlimited: true, ValidUntil: testNow, Allowed: true}})

	h.expectFetch("u2")
	require.NoError(t, h.c.RequestBookingOptions(context.Background(), &domain.Customer{ID: "u2"}))

	state := h.c.OptionsState()
	assert.True(t, state.Loading)
	assert.False(t, state.Loaded)
	assert.Empty(t, state.Data)

	_, ok := h.c.LoadedOption("u1", "p1")
	assert.False(t, ok)
}

func TestAttendanceController_ReceiveBookingOptions_Unexpected(t *testing.T) {
	h := newControllerHarness(t)

	err := h.c.ReceiveBookingOptions(context.Background(), []domain.ClassPassOption{{ID: "p1"}})

	require.ErrorIs(t, err, domain.ErrUnexpectedReceive)
	state := h.c.OptionsState()
	assert.False(t, state.Loaded)
	assert.Empty(t, state.Data)
}

func TestAttendanceController_SetOptionsLoading(t *testing.T) {
	h := newControllerHarness(t)

	require.NoError(t, h.c.SetOptionsLoading(true))
	assert.True(t, h.c.OptionsState().Loading)

	require.NoError(t, h.c.SetOptionsLoading(false))
	assert.False(t, h.c.OptionsState().Loading)
}

func TestAttendanceController_Evicted_RefusesRequests(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	require.True(t, h.c.evictIfIdle(testNow.Add(2*time.Hour), time.Hour))
	assert.False(t, h.c.evictIfIdle(testNow.Add(3*time.Hour), time.Hour))

	require.ErrorIs(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusAttending), errControllerEvicted)
	require.ErrorIs(t, h.c.RemoveAttendance(context.Background(), "a1"), errControllerEvicted)
	require.ErrorIs(t, h.c.RequestBookingOptions(context.Background(), &domain.Customer{ID: "u1"}), errControllerEvicted)
	require.ErrorIs(t, h.c.SetOptionsLoading(true), errControllerEvicted)

	assert.Equal(t, domain.PhaseIdle, h.c.CheckinState().Phase())
	assert.False(t, h.c.OptionsState().Loading)
}

func TestAttendanceController_Roster_SortedByCreation(t *testing.T) {
	first := booked("b")
	second := booked("a")
	second.CreatedOn = testNow.Add(time.Minute)
	third := booked("c")
	third.CreatedOn = testNow.Add(time.Minute)

	h := newControllerHarness(t, third, second, first)

	roster := h.c.Roster()
	require.Len(t, roster, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{roster[0].ID, roster[1].ID, roster[2].ID})
}

func TestAttendanceController_EvictIfIdle(t *testing.T) {
	h := newControllerHarness(t, booked("a1"))

	assert.False(t, h.c.evictIfIdle(testNow.Add(time.Minute), time.Hour))

	h.expectSubmit(statusChange("a1", domain.BookingStatusCancelled))
	require.NoError(t, h.c.ChangeStatus(context.Background(), "a1", domain.BookingStatusCancelled))

	// запрос в полёте: контроллер не простаивает
	assert.False(t, h.c.evictIfIdle(testNow.Add(2*time.Hour), time.Hour))

	h.deliver(domain.ServerResponse{Message: "status changed"})
	assert.True(t, h.c.evictIfIdle(testNow.Add(2*time.Hour), time.Hour))
}
