package schedule

import "time"

// TimeSlot é uma janela candidata (ou confirmada) de atendimento. Valor
// derivado, recalculado a cada chamada — nunca persistido.
type TimeSlot struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`
}

func newSlot(startMin, endMin int) TimeSlot {
	return TimeSlot{
		Start:    FormatClock(startMin),
		End:      FormatClock(endMin),
		StartMin: startMin,
		EndMin:   endMin,
	}
}

// BookedInterval é a projeção de um agendamento existente (ou de um bloqueio)
// no eixo de minutos-do-dia de um único dia. AppointmentID zero identifica
// intervalos sem agendamento associado (bloqueios), que nunca são excluídos
// por ID.
type BookedInterval struct {
	StartMin      int
	EndMin        int
	AppointmentID uint
	BarberID      uint
}

// IntervalOf projeta os instantes de início e fim de um agendamento para
// minutos-do-dia. Ambos devem cair no mesmo dia-calendário; o motor não
// verifica isso.
func IntervalOf(start, end time.Time, appointmentID, barberID uint) BookedInterval {
	return BookedInterval{
		StartMin:      MinutesOfDay(start),
		EndMin:        MinutesOfDay(end),
		AppointmentID: appointmentID,
		BarberID:      barberID,
	}
}

// BarberAvailability agrega a entrada do cálculo multi-barbeiro: expediente
// do dia e intervalos já ocupados daquele barbeiro.
type BarberAvailability struct {
	BarberID uint
	Hours    WorkingHours
	Booked   []BookedInterval
}

// overlaps testa interseção de intervalos semiabertos:
// [aStart,aEnd) cruza [bStart,bEnd) sse aStart < bEnd && bStart < aEnd.
// Único teste de sobreposição do pacote — aplicado uniformemente.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
