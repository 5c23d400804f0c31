package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	rateUC         *ucAppointment.RateAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	rateUC *ucAppointment.RateAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		confirmUC:      confirmUC,
		completeUC:     completeUC,
		rateUC:         rateUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`

	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`

	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	BarberID  *string `json:"barber_id"`
	ServiceID *string `json:"service_id"`

	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method"`
}

type RateAppointmentRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:      userID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE (PATCH)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: c.Param("id"),
		RequesterID:   userID,
		RequesterRole: role,
		Patch: ucAppointment.UpdateAppointmentPatch{
			Date:          req.Date,
			StartTime:     req.StartTime,
			BarberID:      req.BarberID,
			ServiceID:     req.ServiceID,
			PaymentMethod: req.PaymentMethod,
			Notes:         req.Notes,
		},
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CompleteAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), ucAppointment.CompleteAppointmentInput{
		AppointmentID: c.Param("id"),
		ActingUserID:  userID,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Rate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req RateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.rateUC.Execute(c.Request.Context(), ucAppointment.RateAppointmentInput{
		AppointmentID: c.Param("id"),
		ClientID:      userID,
		Score:         req.Score,
		Comment:       req.Comment,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": out.Appointment,
		"new_average": out.NewAverage,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	filter := domain.ListFilter{
		Status:   c.Query("status"),
		Date:     c.Query("date"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	// Cliente vê só os próprios agendamentos; barbeiro os da sua agenda
	switch role {
	case models.RoleClient:
		filter.ClientID = userID
	case models.RoleBarber:
		var barber models.Barber
		if err := h.db.Where("user_id = ?", userID).First(&barber).Error; err != nil {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		filter.BarberID = barber.ID
	default:
		filter.ClientID = c.Query("client_id")
		filter.BarberID = c.Query("barber_id")
		filter.BarbershopID = c.Query("barbershop_id")
	}

	aps, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		BarberID:  c.Param("id"),
		Date:      c.Query("date"),
		ServiceID: c.Query("service_id"),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}
