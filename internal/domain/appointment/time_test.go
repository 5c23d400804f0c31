package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"9:30", 0, true},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHHMM(tt.in)
		if tt.wantErr {
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTimeFormat), "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		want     string
	}{
		{"09:00", 30, "09:30"},
		{"09:15", 45, "10:00"},
		{"09:45", 30, "10:15"},
		{"23:45", 30, "00:15"}, // rollover de 24h
		{"00:00", 0, "00:00"},
		{"12:00", 1440, "12:00"},
	}

	for _, tt := range tests {
		got, err := ComputeEndTime(tt.start, tt.duration)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %dmin", tt.start, tt.duration)
	}
}

// endTime - startTime == duration módulo 24h, para qualquer entrada válida.
func TestComputeEndTimeDurationPreserved(t *testing.T) {
	for start := 0; start < minutesPerDay; start += 17 {
		for _, duration := range []int{5, 30, 45, 90, 600} {
			end, err := ComputeEndTime(FormatHHMM(start), duration)
			require.NoError(t, err)

			endMin, err := ParseHHMM(end)
			require.NoError(t, err)

			diff := ((endMin-start)%minutesPerDay + minutesPerDay) % minutesPerDay
			assert.Equal(t, duration%minutesPerDay, diff)
		}
	}
}

func TestComputeEndTimeInvalidStart(t *testing.T) {
	_, err := ComputeEndTime("25:00", 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTimeFormat))
}

func TestSpillsOverMidnight(t *testing.T) {
	spills, err := SpillsOverMidnight("23:45", 30)
	require.NoError(t, err)
	assert.True(t, spills)

	spills, err = SpillsOverMidnight("23:30", 30)
	require.NoError(t, err)
	assert.False(t, spills)
}

func TestGenerateDaySlots(t *testing.T) {
	slots, err := GenerateDaySlots("09:00", "11:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateDaySlotsDefaultStep(t *testing.T) {
	slots, err := GenerateDaySlots("08:00", "09:00", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30"}, slots)
}

func TestGenerateDaySlotsInvalidRange(t *testing.T) {
	_, err := GenerateDaySlots("11:00", "09:00", 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))

	_, err = GenerateDaySlots("09:00", "09:00", 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
}

func TestGenerateDaySlotsInvalidFormat(t *testing.T) {
	_, err := GenerateDaySlots("nove", "11:00", 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTimeFormat))
}

// Puro: duas chamadas com as mesmas entradas produzem o mesmo resultado.
func TestGenerateDaySlotsRestartable(t *testing.T) {
	a, err := GenerateDaySlots("09:00", "18:00", 30)
	require.NoError(t, err)
	b, err := GenerateDaySlots("09:00", "18:00", 30)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
