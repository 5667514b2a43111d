package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Settings é o registro único de configuração de agenda por negócio.
// Quando ausente, valem os defaults de domain/appointment.DefaultSchedule.
type Settings struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex" json:"business_id"`

	WorkingDays         datatypes.JSON `json:"working_days"`
	WorkingHoursStart   string         `gorm:"size:5" json:"working_hours_start"`
	WorkingHoursEnd     string         `gorm:"size:5" json:"working_hours_end"`
	AppointmentInterval int            `json:"appointment_interval"`

	AutoConfirm   bool   `gorm:"default:true" json:"auto_confirm"`
	SendReminders bool   `gorm:"default:false" json:"send_reminders"`
	ReminderHours int    `gorm:"default:24" json:"reminder_hours"`
	Theme         string `gorm:"size:20" json:"theme"`
	Language      string `gorm:"size:10" json:"language"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkingDaysList decodifica a coluna JSON de dias de atendimento.
func (s *Settings) WorkingDaysList() []string {
	if len(s.WorkingDays) == 0 {
		return nil
	}
	var days []string
	if err := json.Unmarshal(s.WorkingDays, &days); err != nil {
		return nil
	}
	return days
}

// SetWorkingDays codifica os dias de atendimento para a coluna JSON.
func (s *Settings) SetWorkingDays(days []string) error {
	b, err := json.Marshal(days)
	if err != nil {
		return err
	}
	s.WorkingDays = datatypes.JSON(b)
	return nil
}
