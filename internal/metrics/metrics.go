package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "appointments_created_total",
			Help:      "Appointments successfully created.",
		},
	)

	slotConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "slot_conflicts_total",
			Help:      "Booking attempts rejected by the availability check.",
		},
	)

	notificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "notification_failures_total",
			Help:      "Notification sends that failed, by channel.",
		},
		[]string{"channel"},
	)
)

// Register registra as métricas. Seguro chamar mais de uma vez.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsCreated, slotConflicts, notificationFailures)
	})
}

func IncAppointmentsCreated() {
	appointmentsCreated.Inc()
}

func IncSlotConflicts() {
	slotConflicts.Inc()
}

func IncNotificationFailure(channel string) {
	notificationFailures.WithLabelValues(channel).Inc()
}
