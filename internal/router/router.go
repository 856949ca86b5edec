package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListAttendance(c *ginext.Context)
	ChangeStatus(c *ginext.Context)
	RemoveAttendance(c *ginext.Context)
	GetCheckinState(c *ginext.Context)
	RequestBookingOptions(c *ginext.Context)
	GetBookingOptions(c *ginext.Context)
	SelectBookingOption(c *ginext.Context)
	SetOptionsLoading(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/classes/:class_id")
	{
		// Attendance
		api.GET("/attendance", h.ListAttendance)
		api.POST("/attendance/:id/status", h.ChangeStatus)
		api.DELETE("/attendance/:id", h.RemoveAttendance)
		api.GET("/checkin", h.GetCheckinState)

		// Booking options
		api.POST("/booking-options", h.RequestBookingOptions)
		api.GET("/booking-options", h.GetBookingOptions)
		api.POST("/booking-options/select", h.SelectBookingOption)
		api.PUT("/booking-options/loading", h.SetOptionsLoading)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
