package dto

import (
	"time"

	"github.com/mcgege/openstudio/internal/domain"
)

type ActionResponse struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

type AttendanceResponse struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customer_id"`
	Status        string           `json:"status"`
	Enrolled      bool             `json:"enrolled"`
	ReservationID *string          `json:"reservation_id,omitempty"`
	ClassPassID   *string          `json:"class_pass_id,omitempty"`
	CreatedOn     string           `json:"created_on"`
	Actions       []ActionResponse `json:"actions"`
}

type CheckinStateResponse struct {
	Phase        string                 `json:"phase"`
	Loading      bool                   `json:"loading"`
	Loaded       bool                   `json:"loaded"`
	Error        bool                   `json:"error"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Request      *domain.CheckinRequest `json:"request,omitempty"`
}

type BookingOptionResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Unlimited            bool     `json:"unlimited"`
	ClassesRemaining     int      `json:"classes_remaining"`
	ValidUntil           string   `json:"valid_until"`
	Allowed              bool     `json:"allowed"`
	RequiredMembershipID *string  `json:"required_membership_id,omitempty"`
	Usable               bool     `json:"usable"`
	Reasons              []string `json:"reasons"`
}

type BookingOptionsResponse struct {
	CustomerID string                  `json:"customer_id,omitempty"`
	Phase      string                  `json:"phase"`
	Loading    bool                    `json:"loading"`
	Loaded     bool                    `json:"loaded"`
	Options    []BookingOptionResponse `json:"options"`
}

type SelectionResponse struct {
	Accepted bool     `json:"accepted"`
	Reasons  []string `json:"reasons"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	actions := domain.AvailableActions(a.Status)
	resp := AttendanceResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		Status:        string(a.Status),
		Enrolled:      a.Enrolled(),
		ReservationID: a.ReservationID,
		ClassPassID:   a.ClassPassID,
		CreatedOn:     a.CreatedOn.Format(time.RFC3339),
		Actions:       make([]ActionResponse, 0, len(actions)),
	}

	for _, act := range actions {
		target, _ := act.Target()
		resp.Actions = append(resp.Actions, ActionResponse{Action: string(act), Target: string(target)})
	}

	return resp
}

func ToCheckinStateResponse(s domain.RequestState[*domain.CheckinRequest]) CheckinStateResponse {
	return CheckinStateResponse{
		Phase:        string(s.Phase()),
		Loading:      s.Loading,
		Loaded:       s.Loaded,
		Error:        s.Error,
		ErrorMessage: s.ErrorMessage,
		Request:      s.Data,
	}
}

func ToBookingOptionsResponse(o domain.BookingOptions) BookingOptionsResponse {
	resp := BookingOptionsResponse{
		CustomerID: o.CustomerID,
		Phase:      string(o.State.Phase()),
		Loading:    o.State.Loading,
		Loaded:     o.State.Loaded,
		Options:    make([]BookingOptionResponse, 0, len(o.Options)),
	}

	for _, e := range o.Options {
		resp.Options = append(resp.Options, BookingOptionResponse{
			ID:                   e.Option.ID,
			Name:                 e.Option.Name,
			Unlimited:            e.Option.Unlimited,
			ClassesRemaining:     e.Option.ClassesRemaining,
			ValidUntil:           e.Option.ValidUntil.Format(time.DateOnly),
			Allowed:              e.Option.Allowed,
			RequiredMembershipID: e.Option.RequiredMembershipID,
			Usable:               e.Evaluation.Usable,
			Reasons:              reasonStrings(e.Evaluation.Reasons),
		})
	}

	return resp
}

func ToSelectionResponse(s domain.Selection) SelectionResponse {
	return SelectionResponse{Accepted: s.Accepted, Reasons: reasonStrings(s.Reasons)}
}

func reasonStrings(reasons []domain.Reason) []string {
	res := make([]string, 0, len(reasons))
	for _, r := range reasons {
		res = append(res, string(r))
	}
	return res
}
