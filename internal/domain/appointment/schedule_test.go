package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

func TestScheduleFromSettings_SemRegistro(t *testing.T) {
	sched := ScheduleFromSettings(nil)

	assert.Equal(t, DefaultSchedule(), sched)
	assert.Equal(t, "09:00", sched.Start)
	assert.Equal(t, "18:00", sched.End)
	assert.Equal(t, 30, sched.Interval)
	assert.NotContains(t, sched.Days, "saturday")
	assert.NotContains(t, sched.Days, "sunday")
}

func TestScheduleFromSettings_DefaultsCampoACampo(t *testing.T) {
	s := &models.Settings{
		WorkingHoursStart: "10:00",
	}
	require.NoError(t, s.SetWorkingDays([]string{"saturday"}))

	sched := ScheduleFromSettings(s)

	assert.Equal(t, []string{"saturday"}, sched.Days)
	assert.Equal(t, "10:00", sched.Start)
	assert.Equal(t, "18:00", sched.End)
	assert.Equal(t, 30, sched.Interval)
}

func TestIsDateBookable(t *testing.T) {
	sched := DefaultSchedule()

	// 2025-03-05 é quarta, 2025-03-08 é sábado
	ok, err := sched.IsDateBookable("2025-03-05")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sched.IsDateBookable("2025-03-08")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDateBookable_DataInvalida(t *testing.T) {
	sched := DefaultSchedule()

	_, err := sched.IsDateBookable("05/03/2025")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday("monday"))
	assert.True(t, IsValidWeekday("sunday"))
	assert.False(t, IsValidWeekday("segunda"))
	assert.False(t, IsValidWeekday("Monday"))
}
