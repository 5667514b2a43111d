package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultramind-solutions/agendepro/internal/models"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = append(repo.appointments,
		models.Appointment{ID: 1, BusinessID: 1, Date: "2025-03-03", Time: "09:00", Status: "confirmado",
			ClientName: "Maria", Service: &models.Service{Name: "Corte", Price: 50}},
		models.Appointment{ID: 2, BusinessID: 1, Date: "2025-03-04", Time: "09:00", Status: "pending",
			ClientName: "João"},
	)

	uc := NewListAppointmentsByDate(repo)
	items, err := uc.Execute(context.Background(), 1, "2025-03-03")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Maria", items[0].ClientName)
	assert.Equal(t, "Corte", items[0].ServiceName)
	assert.Equal(t, 50.0, items[0].Price)
}

func TestListAppointmentsByDate_ServicoRemovido(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 1, BusinessID: 1, Date: "2025-03-03", Time: "09:00", Status: "confirmado",
		ClientName: "Maria", Service: nil,
	})

	uc := NewListAppointmentsByDate(repo)
	items, err := uc.Execute(context.Background(), 1, "2025-03-03")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Empty(t, items[0].ServiceName)
	assert.Zero(t, items[0].Price)
}

func TestListAppointmentsByMonth(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = append(repo.appointments,
		models.Appointment{ID: 1, BusinessID: 1, Date: "2025-03-03", Time: "09:00", Status: "confirmado"},
		models.Appointment{ID: 2, BusinessID: 1, Date: "2025-03-28", Time: "10:00", Status: "pending"},
		models.Appointment{ID: 3, BusinessID: 1, Date: "2025-04-01", Time: "10:00", Status: "pending"},
	)

	uc := NewListAppointmentsByMonth(repo)
	items, err := uc.Execute(context.Background(), 1, 2025, 3)
	require.NoError(t, err)

	assert.Len(t, items, 2)
}
