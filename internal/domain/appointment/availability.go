package appointment

import "time"

// AvailabilityInput pede os horários livres de um barbeiro em um dia.
// Now é o instante de referência para filtrar horários já passados quando a
// data é hoje — vem de quem chama, nunca de relógio ambiente, para manter o
// cálculo determinístico em teste.
type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ProductID    uint
	Date         time.Time
	Now          time.Time
}

// TimelineInput pede a linha do tempo unificada de todos os barbeiros da
// barbearia em um dia (as linhas da grade do painel).
type TimelineInput struct {
	BarbershopID uint
	ProductID    uint
	Date         time.Time
	Now          time.Time
}

// RescheduleInput descreve um drag-and-drop: mover o agendamento para outro
// barbeiro e/ou outro horário no mesmo dia.
type RescheduleInput struct {
	BarbershopID  uint
	AppointmentID uint
	NewBarberID   uint
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}
