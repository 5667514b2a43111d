package appointment

import (
	"time"

	"github.com/ultramind-solutions/agendepro/internal/httperr"
	"github.com/ultramind-solutions/agendepro/internal/models"
)

const DateLayout = "2006-01-02"

// Schedule é a configuração efetiva de agenda de um negócio, já com
// defaults aplicados (fronteira única de defaults, ver Settings).
type Schedule struct {
	Days     []string
	Start    string
	End      string
	Interval int
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// IsValidWeekday aceita os identificadores sunday..saturday.
func IsValidWeekday(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// DefaultSchedule: segunda a sexta, 09:00–18:00, grade de 30 minutos.
func DefaultSchedule() Schedule {
	return Schedule{
		Days:     []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		Start:    "09:00",
		End:      "18:00",
		Interval: 30,
	}
}

// ScheduleFromSettings aplica os defaults campo a campo sobre o registro
// de configuração, que pode ser nulo (negócio nunca configurou agenda).
func ScheduleFromSettings(s *models.Settings) Schedule {
	sched := DefaultSchedule()
	if s == nil {
		return sched
	}

	if days := s.WorkingDaysList(); len(days) > 0 {
		sched.Days = days
	}
	if s.WorkingHoursStart != "" {
		sched.Start = s.WorkingHoursStart
	}
	if s.WorkingHoursEnd != "" {
		sched.End = s.WorkingHoursEnd
	}
	if s.AppointmentInterval > 0 {
		sched.Interval = s.AppointmentInterval
	}

	return sched
}

// Slots gera a grade completa do expediente configurado.
func (s Schedule) Slots() ([]string, error) {
	return GenerateSlots(s.Start, s.End, s.Interval)
}

// IsDateBookable informa se o dia da semana da data está entre os dias
// de atendimento. Datas fora desses dias são rejeitadas antes de
// qualquer cálculo de grade.
func (s Schedule) IsDateBookable(date string) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	name := weekdayNames[d.Weekday()]
	for _, day := range s.Days {
		if day == name {
			return true, nil
		}
	}

	return false, nil
}
