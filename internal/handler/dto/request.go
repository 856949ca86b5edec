package dto

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingOptionsRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type OptionsLoadingRequest struct {
	Loading *bool `json:"loading" binding:"required"`
}

type SelectOptionRequest struct {
	CustomerID  string `json:"customer_id" binding:"required,uuid"`
	ClassPassID string `json:"class_pass_id" binding:"required,uuid"`
}
