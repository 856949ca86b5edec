package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusAttending BookingStatus = "attending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus принимает только три известных статуса.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusBooked, BookingStatusAttending, BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func (s BookingStatus) Valid() bool {
	_, err := ParseBookingStatus(string(s))
	return err == nil
}

// allowedTransitions: текущий статус -> статусы, которые можно запросить.
// Из cancelled вперёд пути нет, только удаление записи.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusBooked: {
		BookingStatusAttending: true,
		BookingStatusCancelled: true,
	},
	BookingStatusAttending: {
		BookingStatusBooked:    true,
		BookingStatusCancelled: true,
	},
	BookingStatusCancelled: {},
}

func CanTransition(from, to BookingStatus) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// ValidateTransition возвращает *InvalidTransitionError, если переход не из таблицы.
func ValidateTransition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{Current: from, Requested: to}
	}
	return nil
}

type Action string

const (
	ActionCheckIn       Action = "check_in"
	ActionMarkBooked    Action = "mark_booked"
	ActionMarkCancelled Action = "mark_cancelled"
	ActionRemove        Action = "remove"
)

// Target возвращает статус, к которому ведёт действие. Для remove статуса нет.
func (a Action) Target() (BookingStatus, bool) {
	switch a {
	case ActionCheckIn:
		return BookingStatusAttending, true
	case ActionMarkBooked:
		return BookingStatusBooked, true
	case ActionMarkCancelled:
		return BookingStatusCancelled, true
	default:
		return "", false
	}
}

var statusActions = []Action{ActionCheckIn, ActionMarkBooked, ActionMarkCancelled}

// AvailableActions перечисляет действия, которые UI может предложить для статуса.
func AvailableActions(status BookingStatus) []Action {
	if !status.Valid() {
		return nil
	}

	res := make([]Action, 0, len(statusActions)+1)
	for _, a := range statusActions {
		target, _ := a.Target()
		if CanTransition(status, target) {
			res = append(res, a)
		}
	}

	return append(res, ActionRemove)
}
