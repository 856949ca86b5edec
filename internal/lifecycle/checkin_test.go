package lifecycle

import (
	"sync"
	"testing"

	"github.com/mcgege/openstudio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusRequest(id string, target domain.BookingStatus) domain.CheckinRequest {
	return domain.CheckinRequest{
		Kind:         domain.RequestChangeStatus,
		ClassID:      "c1",
		AttendanceID: id,
		TargetStatus: target,
	}
}

func TestCheckinMachine_InitialState(t *testing.T) {
	m := NewCheckinMachine()

	s := m.State()
	assert.False(t, s.Loading)
	assert.False(t, s.Loaded)
	assert.False(t, s.Error)
	assert.Nil(t, s.Data)
	assert.Equal(t, domain.PhaseIdle, s.Phase())
}

func TestCheckinMachine_SubmitEntersLoading(t *testing.T) {
	m := NewCheckinMachine()

	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))

	s := m.State()
	assert.Equal(t, domain.PhaseLoading, s.Phase())
	require.NotNil(t, s.Data)
	assert.Equal(t, "a1", s.Data.AttendanceID)
	assert.True(t, m.Loading())
}

func TestCheckinMachine_SubmitWhileLoading(t *testing.T) {
	for _, target := range []domain.BookingStatus{
		domain.BookingStatusBooked,
		domain.BookingStatusAttending,
		domain.BookingStatusCancelled,
	} {
		m := NewCheckinMachine()
		require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))

		err := m.Submit(statusRequest("a2", target))
		assert.ErrorIs(t, err, domain.ErrRequestAlreadyInFlight)
		assert.Equal(t, "a1", m.State().Data.AttendanceID, "in-flight request is kept")
	}
}

func TestCheckinMachine_FailureResponse(t *testing.T) {
	m := NewCheckinMachine()
	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))

	req, err := m.OnServerResponse(domain.ServerResponse{Error: true, Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, "a1", req.AttendanceID)

	s := m.State()
	assert.Equal(t, domain.PhaseFailure, s.Phase())
	assert.Equal(t, "m", s.ErrorMessage)
}

func TestCheckinMachine_SuccessResponse(t *testing.T) {
	m := NewCheckinMachine()
	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusCancelled)))

	req, err := m.OnServerResponse(domain.ServerResponse{Error: false, Message: "ok"})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, req.TargetStatus)

	s := m.State()
	assert.Equal(t, domain.PhaseSuccess, s.Phase())
	assert.Empty(t, s.ErrorMessage)
}

func TestCheckinMachine_SubmitAfterFailureClearsError(t *testing.T) {
	m := NewCheckinMachine()
	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))
	_, err := m.OnServerResponse(domain.ServerResponse{Error: true, Message: "boom"})
	require.NoError(t, err)

	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))

	s := m.State()
	assert.Equal(t, domain.PhaseLoading, s.Phase())
	assert.False(t, s.Error)
	assert.Empty(t, s.ErrorMessage)
}

func TestCheckinMachine_UnexpectedReceive(t *testing.T) {
	m := NewCheckinMachine()

	_, err := m.OnServerResponse(domain.ServerResponse{})
	assert.ErrorIs(t, err, domain.ErrUnexpectedReceive)

	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))
	_, err = m.OnServerResponse(domain.ServerResponse{})
	require.NoError(t, err)

	_, err = m.OnServerResponse(domain.ServerResponse{Error: true, Message: "late"})
	assert.ErrorIs(t, err, domain.ErrUnexpectedReceive)
	assert.Equal(t, domain.PhaseSuccess, m.State().Phase(), "late response does not change state")
}

func TestCheckinMachine_StateIsCopy(t *testing.T) {
	m := NewCheckinMachine()
	require.NoError(t, m.Submit(statusRequest("a1", domain.BookingStatusAttending)))

	s := m.State()
	s.Data.AttendanceID = "changed"

	assert.Equal(t, "a1", m.State().Data.AttendanceID)
}

func TestCheckinMachine_ConcurrentSubmitSingleWinner(t *testing.T) {
	m := NewCheckinMachine()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Submit(statusRequest("a1", domain.BookingStatusAttending)); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}
