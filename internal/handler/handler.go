package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcgege/openstudio/internal/domain"
	"github.com/mcgege/openstudio/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CheckinSvc interface {
	Roster(ctx context.Context, classID string) ([]domain.Attendance, error)
	ChangeStatus(ctx context.Context, classID, attendanceID string, target domain.BookingStatus) error
	RemoveAttendance(ctx context.Context, classID, attendanceID string) error
	CheckinState(ctx context.Context, classID string) (domain.RequestState[*domain.CheckinRequest], error)
	RequestBookingOptions(ctx context.Context, classID, customerID string) error
	BookingOptions(ctx context.Context, classID string) (domain.BookingOptions, error)
	SelectBookingOption(ctx context.Context, classID, customerID, classPassID string) (domain.Selection, error)
	SetOptionsLoading(ctx context.Context, classID string, loading bool) error
}

type Handler struct {
	checkinService CheckinSvc
}

func NewHandler(checkinService CheckinSvc) *Handler {
	return &Handler{checkinService: checkinService}
}

// Attendance

func (h *Handler) ListAttendance(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	roster, err := h.checkinService.Roster(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(roster))
	for i := range roster {
		resp = append(resp, dto.ToAttendanceResponse(&roster[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangeStatus(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}
	attendanceID, ok := uuidParam(c, "id", "invalid attendance id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err = h.checkinService.ChangeStatus(c.Request.Context(), classID, attendanceID, target); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) RemoveAttendance(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}
	attendanceID, ok := uuidParam(c, "id", "invalid attendance id")
	if !ok {
		return
	}

	if err := h.checkinService.RemoveAttendance(c.Request.Context(), classID, attendanceID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) GetCheckinState(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	state, err := h.checkinService.CheckinState(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinStateResponse(state))
}

// Booking options

func (h *Handler) RequestBookingOptions(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	var req dto.BookingOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.checkinService.RequestBookingOptions(c.Request.Context(), classID, req.CustomerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) GetBookingOptions(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	options, err := h.checkinService.BookingOptions(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingOptionsResponse(options))
}

// SetOptionsLoading вручную ставит или снимает флаг загрузки абонементов.
func (h *Handler) SetOptionsLoading(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	var req dto.OptionsLoadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.checkinService.SetOptionsLoading(c.Request.Context(), classID, *req.Loading); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"loading": *req.Loading})
}

func (h *Handler) SelectBookingOption(c *ginext.Context) {
	classID, ok := uuidParam(c, "class_id", "invalid class id")
	if !ok {
		return
	}

	var req dto.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	selection, err := h.checkinService.SelectBookingOption(c.Request.Context(), classID, req.CustomerID, req.ClassPassID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !selection.Accepted {
		c.Set("error", "booking option rejected")
		c.JSON(http.StatusUnprocessableEntity, dto.ToSelectionResponse(selection))
		return
	}

	c.JSON(http.StatusAccepted, dto.ToSelectionResponse(selection))
}

func uuidParam(c *ginext.Context, name, msg string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return v, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrClassPassNotFound),
		errors.Is(err, domain.ErrClassNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRequestAlreadyInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
