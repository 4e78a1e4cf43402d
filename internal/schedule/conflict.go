package schedule

// ConflictReason identifica por que uma janela candidata foi recusada.
// Os valores coincidem com os códigos de erro de negócio da API.
type ConflictReason string

const (
	ConflictNone                ConflictReason = ""
	ConflictClosedDay           ConflictReason = "closed_day"
	ConflictOutsideWorkingHours ConflictReason = "outside_working_hours"
	ConflictDuringBreak         ConflictReason = "during_break"
	ConflictTimeConflict        ConflictReason = "time_conflict"
)

// CheckSlot avalia uma janela candidata [startMin, startMin+durMin) contra o
// expediente e os intervalos já ocupados, e devolve o primeiro motivo de
// recusa encontrado — ou ConflictNone quando todas as restrições passam.
//
// excludeAppointmentID != 0 ignora o intervalo daquele agendamento, usado ao
// validar o reagendamento de um horário contra ele mesmo.
//
// durMin <= 0 é bug de quem chama e gera panic.
func CheckSlot(
	wh WorkingHours,
	booked []BookedInterval,
	startMin int,
	durMin int,
	excludeAppointmentID uint,
) ConflictReason {

	if durMin <= 0 {
		panic("schedule: duration must be positive")
	}

	w, ok := wh.window()
	if !ok {
		return ConflictClosedDay
	}

	endMin := startMin + durMin

	if startMin < w.open || endMin > w.close {
		return ConflictOutsideWorkingHours
	}

	if w.hasBreak && overlaps(startMin, endMin, w.breakStart, w.breakEnd) {
		return ConflictDuringBreak
	}

	for _, b := range booked {
		if excludeAppointmentID != 0 && b.AppointmentID == excludeAppointmentID {
			continue
		}
		if overlaps(startMin, endMin, b.StartMin, b.EndMin) {
			return ConflictTimeConflict
		}
	}

	return ConflictNone
}

// IsSlotAvailable é o predicado puro sobre CheckSlot: true apenas quando
// nenhuma restrição recusa a janela.
func IsSlotAvailable(
	wh WorkingHours,
	booked []BookedInterval,
	startMin int,
	durMin int,
	excludeAppointmentID uint,
) bool {
	return CheckSlot(wh, booked, startMin, durMin, excludeAppointmentID) == ConflictNone
}
