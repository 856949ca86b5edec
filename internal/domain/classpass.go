package domain

import "time"

type ClassPassOption struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Unlimited            bool      `json:"unlimited"`
	ClassesRemaining     int       `json:"classes_remaining"`
	ValidUntil           time.Time `json:"valid_until"`
	Allowed              bool      `json:"allowed"`
	RequiredMembershipID *string   `json:"required_membership_id,omitempty"`
}

type Reason string

const (
	ReasonNotAllowedForClass Reason = "NOT_ALLOWED_FOR_CLASS"
	ReasonMembershipRequired Reason = "MEMBERSHIP_REQUIRED"
	ReasonExpired            Reason = "EXPIRED"
	ReasonNoClassesRemaining Reason = "NO_CLASSES_REMAINING"
)

// Selection - результат выбора абонемента для записи на занятие.
type Selection struct {
	Accepted bool     `json:"accepted"`
	Reasons  []Reason `json:"reasons"`
}

type Evaluation struct {
	Usable  bool     `json:"usable"`
	Reasons []Reason `json:"reasons"`
}

type EvaluatedOption struct {
	Option     ClassPassOption `json:"option"`
	Evaluation Evaluation      `json:"evaluation"`
}

// BookingOptions - состояние загрузки абонементов и их разметка для клиента,
// для которого они загружались.
type BookingOptions struct {
	CustomerID string                          `json:"customer_id"`
	State      RequestState[[]ClassPassOption] `json:"state"`
	Options    []EvaluatedOption               `json:"options"`
}
