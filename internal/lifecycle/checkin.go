// Package lifecycle держит состояние асинхронных запросов по каналам:
// канал отметок (смена статуса, удаление, отметка по абонементу) и
// канал загрузки абонементов клиента. В каждом канале одновременно
// может выполняться только один запрос.
package lifecycle

import (
	"sync"

	"github.com/mcgege/openstudio/internal/domain"
)

// CheckinMachine: Idle -> Loading -> Success|Failure, новый Submit начинает цикл заново.
type CheckinMachine struct {
	mu    sync.Mutex
	state domain.RequestState[*domain.CheckinRequest]
}

func NewCheckinMachine() *CheckinMachine {
	return &CheckinMachine{}
}

// Submit переводит канал в Loading и сбрасывает прошлую ошибку.
func (m *CheckinMachine) Submit(req domain.CheckinRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Loading {
		return domain.ErrRequestAlreadyInFlight
	}

	m.state = domain.RequestState[*domain.CheckinRequest]{
		Loading: true,
		Data:    &req,
	}

	return nil
}

// OnServerResponse завершает запрос. Возвращает запрос, к которому относится ответ;
// при resp.Error=false вызывающий должен применить его результат к записи.
func (m *CheckinMachine) OnServerResponse(resp domain.ServerResponse) (domain.CheckinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Loading {
		return domain.CheckinRequest{}, domain.ErrUnexpectedReceive
	}

	m.state.Loading = false
	m.state.Loaded = true
	m.state.Error = resp.Error
	m.state.ErrorMessage = ""
	if resp.Error {
		m.state.ErrorMessage = resp.Message
	}

	return *m.state.Data, nil
}

func (m *CheckinMachine) State() domain.RequestState[*domain.CheckinRequest] {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	if s.Data != nil {
		req := *s.Data
		s.Data = &req
	}
	return s
}

func (m *CheckinMachine) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Loading
}
