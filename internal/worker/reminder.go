package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const reminderLockTTL = 24 * time.Hour

// ReminderWorker varre periodicamente os agendamentos do dia seguinte
// e envia lembrete para cada um que ainda não recebeu. Idempotente em
// duas camadas: lock distribuído por agendamento e flag reminder_sent
// com check-and-set no banco.
type ReminderWorker struct {
	repo     domain.Repository
	notifier notification.Notifier
	redis    *redis.Client
	log      zerolog.Logger
	interval time.Duration
}

func NewReminderWorker(
	repo domain.Repository,
	notifier notification.Notifier,
	redisClient *redis.Client,
	log zerolog.Logger,
	interval time.Duration,
) *ReminderWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ReminderWorker{
		repo:     repo,
		notifier: notifier,
		redis:    redisClient,
		log:      log,
		interval: interval,
	}
}

func (w *ReminderWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep processa os lembretes de amanhã. Exportado para o teste e para
// disparo manual.
func (w *ReminderWorker) Sweep(ctx context.Context) {
	tomorrow := timezone.Tomorrow()

	appointments, err := w.repo.ListRemindableAppointments(ctx, tomorrow)
	if err != nil {
		w.log.Error().Err(err).Str("date", tomorrow).Msg("falha ao listar lembretes pendentes")
		return
	}

	for _, ap := range appointments {
		w.remind(ctx, ap)
	}
}

func (w *ReminderWorker) remind(ctx context.Context, ap models.Appointment) {
	// Lock distribuído evita varreduras concorrentes de várias instâncias
	if w.redis != nil {
		key := fmt.Sprintf("reminder:%s", ap.ID)
		owner, err := cache.AcquireLock(ctx, w.redis, key, reminderLockTTL)
		if err != nil {
			w.log.Warn().Err(err).Str("appointment_id", ap.ID).Msg("lock de lembrete indisponível")
		} else if !owner {
			return
		}
	}

	// A flag no banco é a fonte de verdade
	first, err := w.repo.MarkReminderSent(ctx, ap.ID)
	if err != nil {
		w.log.Error().Err(err).Str("appointment_id", ap.ID).Msg("falha ao marcar lembrete")
		return
	}
	if !first {
		return
	}

	w.notifier.Notify(ctx, notification.Message{
		RecipientID: ap.ClientID,
		Type:        models.NotificationTypeReminder,
		Title:       "Lembrete de Agendamento",
		Body: fmt.Sprintf(
			"Você tem um agendamento amanhã, %s às %s. Não esqueça!",
			ap.Date, ap.StartTime,
		),
		Channel:     models.ChannelEmail,
		RelatedKind: models.RelatedKindAppointment,
		RelatedID:   ap.ID,
	})

	w.log.Info().
		Str("appointment_id", ap.ID).
		Str("date", ap.Date).
		Msg("lembrete enviado")
}
