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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Where("active = ?", true)

	if shopID := c.Query("barbershop_id"); shopID != "" {
		q = q.Where("barbershop_id = ?", shopID)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, service)
}

type CreateServiceRequest struct {
	BarbershopID string  `json:"barbershop_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DurationMin  int     `json:"duration_min" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RoleAdmin {
		httperr.Forbidden(c, "unauthorized", "Apenas administradores.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		ID:           uuid.NewString(),
		BarbershopID: req.BarbershopID,
		Name:         req.Name,
		Description:  req.Description,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		Active:       true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	DurationMin *int     `json:"duration_min"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) Update(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RoleAdmin {
		httperr.Forbidden(c, "unauthorized", "Apenas administradores.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
		updates["duration_min"] = *req.DurationMin
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := h.db.Model(&service).Updates(updates).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}
