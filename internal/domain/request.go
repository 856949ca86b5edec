package domain

// RequestState - состояние асинхронного запроса одного канала.
type RequestState[T any] struct {
	Loading      bool   `json:"loading"`
	Loaded       bool   `json:"loaded"`
	Error        bool   `json:"error"`
	ErrorMessage string `json:"error_message"`
	Data         T      `json:"data"`
}

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

func (s RequestState[T]) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Loaded && s.Error:
		return PhaseFailure
	case s.Loaded:
		return PhaseSuccess
	default:
		return PhaseIdle
	}
}

type RequestKind string

const (
	RequestChangeStatus RequestKind = "change_status"
	RequestRemove       RequestKind = "remove"
	RequestCheckin      RequestKind = "checkin"
)

// CheckinRequest - операция канала отметок: смена статуса, удаление записи
// или отметка клиента по абонементу.
type CheckinRequest struct {
	Kind         RequestKind   `json:"kind"`
	ClassID      string        `json:"class_id"`
	AttendanceID string        `json:"attendance_id,omitempty"`
	TargetStatus BookingStatus `json:"target_status,omitempty"`
	CustomerID   string        `json:"customer_id,omitempty"`
	ClassPassID  string        `json:"class_pass_id,omitempty"`
}

// ServerResponse - единственный терминальный ответ транспорта на CheckinRequest.
// Attendance заполняется только при успешной отметке по абонементу.
type ServerResponse struct {
	Error      bool        `json:"error"`
	Message    string      `json:"message"`
	Attendance *Attendance `json:"attendance,omitempty"`
}
