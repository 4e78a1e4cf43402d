package models

import (
	"time"

	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// Expediente de um barbeiro para um dia da semana.
// Horários como "HH:MM"; pausa opcional (os dois campos juntos ou nenhum).
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_barber_weekday,unique" json:"weekday"`

	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSchedule projeta o registro persistido para o snapshot que o motor de
// disponibilidade consome.
func (wh WorkingHours) ToSchedule() schedule.WorkingHours {
	return schedule.WorkingHours{
		Weekday:    wh.Weekday,
		StartTime:  wh.StartTime,
		EndTime:    wh.EndTime,
		BreakStart: wh.BreakStart,
		BreakEnd:   wh.BreakEnd,
		Active:     wh.Active,
	}
}
