package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// ======================================================
// LISTAGEM / DETALHE
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	q := h.db.Preload("User").Where("active = ?", true)

	if shopID := c.Query("barbershop_id"); shopID != "" {
		q = q.Where("barbershop_id = ?", shopID)
	}

	var barbers []models.Barber
	if err := q.Order("rating DESC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	var barber models.Barber
	if err := h.db.Preload("User").Preload("Barbershop").
		First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var reviews []models.Review
	h.db.Where("barber_id = ?", barber.ID).
		Order("created_at DESC").
		Limit(20).
		Find(&reviews)

	httpresp.OK(c, gin.H{
		"barber":  barber,
		"reviews": reviews,
	})
}

// ======================================================
// HORÁRIOS DE ATENDIMENTO
// ======================================================

type WorkingHoursEntry struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}

func (h *BarberHandler) GetWorkingHours(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.Where("barber_id = ?", c.Param("id")).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, hours)
}

// UpdateWorkingHours substitui a grade semanal inteira do barbeiro logado.
func (h *BarberHandler) UpdateWorkingHours(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var barber models.Barber
	if err := h.db.Where("user_id = ?", userID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var entries []WorkingHoursEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, e := range entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barber.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, e := range entries {
			wh := models.WorkingHours{
				BarberID:  barber.ID,
				Weekday:   e.Weekday,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
				Active:    e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao salvar horários.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// CADASTRO (ADMIN)
// ======================================================

type CreateBarberRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	BarbershopID string `json:"barbershop_id" binding:"required"`
	Specialties  string `json:"specialties"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RoleAdmin {
		httperr.Forbidden(c, "unauthorized", "Apenas administradores.")
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	barber := models.Barber{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		BarbershopID: req.BarbershopID,
		Specialties:  req.Specialties,
		Active:       true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}
		// Promove o usuário junto com o vínculo
		return tx.Model(&user).Update("role", models.RoleBarber).Error
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}
