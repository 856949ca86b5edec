package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/handler/dto"
	hmocks "github.com/mcgege/openstudio/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCheckinSvc, http.Handler) {
	t.Helper()
	checkinSvc := hmocks.NewMockCheckinSvc(t)

	h := NewHandler(checkinSvc)

	r := ginext.New("test")
	api := r.Group("/api/classes/:class_id")
	{
		api.GET("/attendance", h.ListAttendance)
		api.POST("/attendance/:id/status", h.ChangeStatus)
		api.DELETE("/attendance/:id", h.RemoveAttendance)
		api.GET("/checkin", h.GetCheckinState)
		api.POST("/booking-options", h.RequestBookingOptions)
		api.GET("/booking-options", h.GetBookingOptions)
		api.POST("/booking-options/select", h.SelectBookingOption)
		api.PUT("/booking-options/loading", h.SetOptionsLoading)
	}

	return checkinSvc, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Attendance ---

func TestHandler_ListAttendance_Success(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	reservation := "r1"
	roster := []domain.Attendance{
		{ID: "a1", ClassID: classID, Status: domain.BookingStatusBooked, ReservationID: &reservation, CreatedOn: time.Now()},
		{ID: "a2", ClassID: classID, Status: domain.BookingStatusCancelled, CreatedOn: time.Now()},
	}
	svc.EXPECT().Roster(mock.Anything, classID).Return(roster, nil)

	w := doJSON(r, http.MethodGet, "/api/classes/"+classID+"/attendance", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	assert.True(t, resp[0].Enrolled)
	assert.Equal(t, []dto.ActionResponse{
		{Action: "check_in", Target: "attending"},
		{Action: "mark_cancelled", Target: "cancelled"},
		{Action: "remove"},
	}, resp[0].Actions)

	assert.False(t, resp[1].Enrolled)
	assert.Equal(t, []dto.ActionResponse{{Action: "remove"}}, resp[1].Actions)
}

func TestHandler_ListAttendance_InvalidClassID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/classes/not-a-uuid/attendance", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAttendance_InternalError(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	svc.EXPECT().Roster(mock.Anything, classID).Return(nil, errors.New("db down"))

	w := doJSON(r, http.MethodGet, "/api/classes/"+classID+"/attendance", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_ChangeStatus_Accepted(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()
	svc.EXPECT().ChangeStatus(mock.Anything, classID, attendanceID, domain.BookingStatusAttending).Return(nil)

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		dto.ChangeStatusRequest{Status: "attending"},
	)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_ChangeStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		dto.ChangeStatusRequest{Status: "checked-in"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeStatus_InvalidTransition(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()
	svc.EXPECT().ChangeStatus(mock.Anything, classID, attendanceID, domain.BookingStatusBooked).
		Return(&domain.InvalidTransitionError{
			Current:   domain.BookingStatusCancelled,
			Requested: domain.BookingStatusBooked,
		})

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		dto.ChangeStatusRequest{Status: "booked"},
	)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "cancelled -> booked")
}

func TestHandler_ChangeStatus_InFlight(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()
	svc.EXPECT().ChangeStatus(mock.Anything, classID, attendanceID, domain.BookingStatusCancelled).
		Return(domain.ErrRequestAlreadyInFlight)

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		dto.ChangeStatusRequest{Status: "cancelled"},
	)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ChangeStatus_NotFound(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()
	svc.EXPECT().ChangeStatus(mock.Anything, classID, attendanceID, domain.BookingStatusCancelled).
		Return(domain.ErrAttendanceNotFound)

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		dto.ChangeStatusRequest{Status: "cancelled"},
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ChangeStatus_MissingBody(t *testing.T) {
	_, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()

	w := doJSON(r, http.MethodPost,
		"/api/classes/"+classID+"/attendance/"+attendanceID+"/status",
		map[string]string{},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RemoveAttendance(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	attendanceID := uuid.New().String()
	svc.EXPECT().RemoveAttendance(mock.Anything, classID, attendanceID).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/classes/"+classID+"/attendance/"+attendanceID, nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_RemoveAttendance_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	classID := uuid.New().String()

	w := doJSON(r, http.MethodDelete, "/api/classes/"+classID+"/attendance/nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCheckinState_Failure(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	state := domain.RequestState[*domain.CheckinRequest]{
		Loaded:       true,
		Error:        true,
		ErrorMessage: "class pass has no classes remaining",
		Data:         &domain.CheckinRequest{Kind: domain.RequestCheckin, ClassID: classID},
	}
	svc.EXPECT().CheckinState(mock.Anything, classID).Return(state, nil)

	w := doJSON(r, http.MethodGet, "/api/classes/"+classID+"/checkin", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckinStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failure", resp.Phase)
	assert.True(t, resp.Error)
	assert.Equal(t, "class pass has no classes remaining", resp.ErrorMessage)
	require.NotNil(t, resp.Request)
	assert.Equal(t, domain.RequestCheckin, resp.Request.Kind)
}

// --- Booking options ---

func TestHandler_RequestBookingOptions(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	customerID := uuid.New().String()
	svc.EXPECT().RequestBookingOptions(mock.Anything, classID, customerID).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/classes/"+classID+"/booking-options",
		dto.BookingOptionsRequest{CustomerID: customerID},
	)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_RequestBookingOptions_InvalidCustomer(t *testing.T) {
	_, r := setupRouter(t)

	classID := uuid.New().String()

	w := doJSON(r, http.MethodPost, "/api/classes/"+classID+"/booking-options",
		dto.BookingOptionsRequest{CustomerID: "bob"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetOptionsLoading(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	svc.EXPECT().SetOptionsLoading(mock.Anything, classID, false).Return(nil)

	loading := false
	w := doJSON(r, http.MethodPut, "/api/classes/"+classID+"/booking-options/loading",
		dto.OptionsLoadingRequest{Loading: &loading},
	)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loading":false}`, w.Body.String())
}

func TestHandler_SetOptionsLoading_MissingFlag(t *testing.T) {
	_, r := setupRouter(t)

	classID := uuid.New().String()

	w := doJSON(r, http.MethodPut, "/api/classes/"+classID+"/booking-options/loading", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBookingOptions(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	opt := domain.ClassPassOption{
		ID:               "p1",
		Name:             "10 classes",
		ClassesRemaining: 0,
		ValidUntil:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Allowed:          true,
	}
	options := domain.BookingOptions{
		CustomerID: "u1",
		State: domain.RequestState[[]domain.ClassPassOption]{
			Loaded: true,
			Data:   []domain.ClassPassOption{opt},
		},
		Options: []domain.EvaluatedOption{{
			Option: opt,
			Evaluation: domain.Evaluation{
				Usable:  false,
				Reasons: []domain.Reason{domain.ReasonNoClassesRemaining},
			},
		}},
	}
	svc.EXPECT().BookingOptions(mock.Anything, classID).Return(options, nil)

	w := doJSON(r, http.MethodGet, "/api/classes/"+classID+"/booking-options", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingOptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Phase)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "2026-04-01", resp.Options[0].ValidUntil)
	assert.False(t, resp.Options[0].Usable)
	assert.Equal(t, []string{"NO_CLASSES_REMAINING"}, resp.Options[0].Reasons)
}

func TestHandler_SelectBookingOption_Accepted(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	customerID := uuid.New().String()
	passID := uuid.New().String()
	svc.EXPECT().SelectBookingOption(mock.Anything, classID, customerID, passID).
		Return(domain.Selection{Accepted: true, Reasons: []domain.Reason{}}, nil)

	w := doJSON(r, http.MethodPost, "/api/classes/"+classID+"/booking-options/select",
		dto.SelectOptionRequest{CustomerID: customerID, ClassPassID: passID},
	)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.SelectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Empty(t, resp.Reasons)
}

func TestHandler_SelectBookingOption_Rejected(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	customerID := uuid.New().String()
	passID := uuid.New().String()
	svc.EXPECT().SelectBookingOption(mock.Anything, classID, customerID, passID).
		Return(domain.Selection{
			Accepted: false,
			Reasons:  []domain.Reason{domain.ReasonExpired, domain.ReasonMembershipRequired},
		}, nil)

	w := doJSON(r, http.MethodPost, "/api/classes/"+classID+"/booking-options/select",
		dto.SelectOptionRequest{CustomerID: customerID, ClassPassID: passID},
	)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.SelectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Accepted)
	assert.Equal(t, []string{"EXPIRED", "MEMBERSHIP_REQUIRED"}, resp.Reasons)
}

func TestHandler_SelectBookingOption_NotLoaded(t *testing.T) {
	svc, r := setupRouter(t)

	classID := uuid.New().String()
	customerID := uuid.New().String()
	passID := uuid.New().String()
	svc.EXPECT().SelectBookingOption(mock.Anything, classID, customerID, passID).
		Return(domain.Selection{}, domain.ErrClassPassNotFound)

	w := doJSON(r, http.MethodPost, "/api/classes/"+classID+"/booking-options/select",
		dto.SelectOptionRequest{CustomerID: customerID, ClassPassID: passID},
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
