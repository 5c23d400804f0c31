package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Service persiste cada notificação e despacha o envio em background.
// A fila descarta quando cheia: notificação nunca derruba a API.
type Service struct {
	db      *gorm.DB
	log     zerolog.Logger
	senders map[string]Sender
	queue   chan models.Notification
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	s := &Service{
		db:  db,
		log: log,
		senders: map[string]Sender{
			models.ChannelEmail: NewEmailSender(log),
			models.ChannelSMS:   NewSMSSender(log),
		},
		queue: make(chan models.Notification, 100),
	}

	go s.worker()
	return s
}

var errQueueFull = errors.New("fila de notificações cheia")

// initialStatus: canais com entrega assíncrona nascem pendentes e só
// viram "sent" depois do envio; in-app/push são entregues pela própria
// linha no banco.
func initialStatus(channel string) string {
	if channel == models.ChannelEmail || channel == models.ChannelSMS {
		return "pending"
	}
	return "sent"
}

func (s *Service) Notify(ctx context.Context, msg Message) {
	channel := msg.Channel
	if channel == "" {
		channel = models.ChannelInApp
	}

	n := models.Notification{
		ID:          uuid.NewString(),
		RecipientID: msg.RecipientID,
		Type:        msg.Type,
		Title:       msg.Title,
		Message:     msg.Body,
		RelatedKind: msg.RelatedKind,
		RelatedID:   msg.RelatedID,
		Channel:     channel,
		Status:      initialStatus(channel),
	}

	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		s.log.Error().Err(err).
			Str("recipient_id", msg.RecipientID).
			Str("type", msg.Type).
			Msg("falha ao persistir notificação")
		metrics.IncNotificationFailure(channel)
		return
	}

	if n.Status != "pending" {
		return
	}

	select {
	case s.queue <- n:
		// enfileirado
	default:
		s.markFailed(ctx, n, errQueueFull)
	}
}

func (s *Service) worker() {
	for n := range s.queue {
		s.deliver(n)
	}
}

func (s *Service) deliver(n models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var recipient models.User
	if err := s.db.WithContext(ctx).First(&recipient, "id = ?", n.RecipientID).Error; err != nil {
		s.markFailed(ctx, n, err)
		return
	}

	sender, ok := s.senders[n.Channel]
	if !ok {
		return
	}

	if err := sender.Send(ctx, &recipient, n.Title, n.Message); err != nil {
		s.markFailed(ctx, n, err)
		return
	}

	s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", n.ID).
		Update("status", "sent")
}

func (s *Service) markFailed(ctx context.Context, n models.Notification, cause error) {
	s.log.Error().Err(cause).
		Str("notification_id", n.ID).
		Str("channel", n.Channel).
		Msg("falha ao enviar notificação")
	metrics.IncNotificationFailure(n.Channel)

	s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", n.ID).
		Updates(map[string]any{"status": "failed", "error": cause.Error()})
}

var _ Notifier = (*Service)(nil)
