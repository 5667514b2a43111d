package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultramind-solutions/agendepro/internal/models"
)

func TestGetAvailability_GradeMenosOcupados(t *testing.T) {
	repo := newStubRepo()
	repo.settings = mustSetWorkingDays(&models.Settings{
		BusinessID:          1,
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "12:00",
		AppointmentInterval: 60,
	}, []string{"monday"})

	// 2025-03-03 é segunda-feira
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 99, BusinessID: 1, Date: "2025-03-03", Time: "10:00", Status: "confirmado",
	})

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), 1, "2025-03-03")
	require.NoError(t, err)

	assert.True(t, out.Bookable)
	assert.Equal(t, []string{"09:00", "11:00"}, out.Slots)
}

func TestGetAvailability_CanceladoLiberaHorario(t *testing.T) {
	repo := newStubRepo()
	repo.settings = mustSetWorkingDays(&models.Settings{
		BusinessID:          1,
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "11:00",
		AppointmentInterval: 60,
	}, []string{"monday"})

	repo.appointments = append(repo.appointments,
		models.Appointment{ID: 1, BusinessID: 1, Date: "2025-03-03", Time: "09:00", Status: "cancelado"},
		models.Appointment{ID: 2, BusinessID: 1, Date: "2025-03-03", Time: "10:00", Status: "pending"},
	)

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), 1, "2025-03-03")
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00"}, out.Slots)
}

func TestGetAvailability_DiaSemAtendimento(t *testing.T) {
	repo := newStubRepo()

	// sem settings valem os defaults (seg a sex); 2025-03-08 é sábado
	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), 1, "2025-03-08")
	require.NoError(t, err)

	assert.False(t, out.Bookable)
	assert.NotNil(t, out.Slots)
	assert.Empty(t, out.Slots)
}

func TestGetAvailability_DefaultsSemSettings(t *testing.T) {
	repo := newStubRepo()

	// 2025-03-05 é quarta; grade default 09:00–18:00 de 30 em 30
	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), 1, "2025-03-05")
	require.NoError(t, err)

	assert.True(t, out.Bookable)
	assert.Len(t, out.Slots, 18)
	assert.Equal(t, "09:00", out.Slots[0])
	assert.Equal(t, "17:30", out.Slots[17])
}
