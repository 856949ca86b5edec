package domain

import "time"

// Attendance - запись клиента на конкретное занятие.
type Attendance struct {
	ID            string        `json:"id"`
	ClassID       string        `json:"class_id"`
	CustomerID    string        `json:"customer_id"`
	Status        BookingStatus `json:"status"`
	ReservationID *string       `json:"reservation_id,omitempty"`
	ClassPassID   *string       `json:"class_pass_id,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`

	// Заполняются из занятия при чтении, в attendances не хранятся.
	ClassName     string    `json:"class_name,omitempty"`
	ClassStartsAt time.Time `json:"class_starts_at,omitzero"`
}

// Enrolled - запись создана постоянным абонементом на серию занятий, а не разовой бронью.
func (a *Attendance) Enrolled() bool {
	return a.ReservationID != nil && *a.ReservationID != ""
}
