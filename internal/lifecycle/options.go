package lifecycle

import (
	"sync"

	"github.com/mcgege/openstudio/internal/domain"
)

// OptionsMachine: Idle -> Loading -> Loaded.
type OptionsMachine struct {
	mu    sync.Mutex
	state domain.RequestState[[]domain.ClassPassOption]
}

func NewOptionsMachine() *OptionsMachine {
	return &OptionsMachine{
		state: domain.RequestState[[]domain.ClassPassOption]{
			Data: []domain.ClassPassOption{},
		},
	}
}

// Request очищает прошлые данные и начинает загрузку.
func (m *OptionsMachine) Request() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Loading {
		return domain.ErrRequestAlreadyInFlight
	}

	m.state = domain.RequestState[[]domain.ClassPassOption]{
		Loading: true,
		Data:    []domain.ClassPassOption{},
	}

	return nil
}

func (m *OptionsMachine) Receive(options []domain.ClassPassOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Loading {
		return domain.ErrUnexpectedReceive
	}

	data := make([]domain.ClassPassOption, len(options))
	copy(data, options)

	m.state.Loading = false
	m.state.Loaded = true
	m.state.Data = data

	return nil
}

// SetLoading меняет только флаг loading.
func (m *OptionsMachine) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = loading
}

func (m *OptionsMachine) State() domain.RequestState[[]domain.ClassPassOption] {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	s.Data = make([]domain.ClassPassOption, len(m.state.Data))
	copy(s.Data, m.state.Data)
	return s
}

func (m *OptionsMachine) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Loading
}
