package models

import "time"

// Bloqueio: intervalo em que o barbeiro não atende (folga, compromisso,
// manutenção). Para efeito de conflito é tratado igual a um agendamento.
type BlockedPeriod struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint `json:"barbershop_id"`
	BarberID     uint `gorm:"index" json:"barber_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
