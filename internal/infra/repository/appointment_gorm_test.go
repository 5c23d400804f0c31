package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Sessão dry-run com o dialeto postgres: gera o SQL real sem conectar.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=barber dbname=barber sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func slotAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        "ap-1",
		BarberID:  "barber-1",
		Date:      "2026-09-10",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
}

// Postgres rejeita FOR UPDATE em consultas com agregação (SQLSTATE 0A000);
// a checagem de conflito precisa travar as linhas, não contar com lock.
func TestSlotConflictQueryLocksRowsWithoutAggregate(t *testing.T) {
	db := dryRunDB(t)

	var ids []string
	res := slotConflictQuery(db, slotAppointment(), "").Pluck("id", &ids)
	require.NoError(t, res.Error)

	sql := strings.ToLower(res.Statement.SQL.String())

	assert.Contains(t, sql, "for update")
	assert.NotContains(t, sql, "count(")

	// Sobreposição semiaberta: start < fim-do-novo e end > início-do-novo
	assert.Contains(t, sql, "start_time <")
	assert.Contains(t, sql, "end_time >")
}

func TestSlotConflictQueryExcludesOwnID(t *testing.T) {
	db := dryRunDB(t)

	var ids []string
	res := slotConflictQuery(db, slotAppointment(), "ap-1").Pluck("id", &ids)
	require.NoError(t, res.Error)

	sql := strings.ToLower(res.Statement.SQL.String())

	assert.Contains(t, sql, "id <>")
	assert.Contains(t, sql, "for update")
}
