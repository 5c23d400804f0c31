package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// List devolve as notificações do usuário logado, mais recentes primeiro.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	q := h.db.Where("recipient_id = ?", userID)

	if c.Query("unread") == "true" {
		q = q.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Order("created_at DESC").Limit(50).Find(&notifications).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res := h.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", c.Param("id"), userID).
		Update("is_read", true)

	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar notificação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
