package schedule

// ValidateReschedule decide se mover um agendamento para newStartMin no
// barbeiro de destino é legal, e qual seria a janela resultante.
//
// O intervalo atual do próprio agendamento é excluído da checagem de
// sobreposição: mudar só o horário (ou só o barbeiro) nunca conflita com a
// posição anterior dele mesmo.
//
// Quem chama é dono da persistência: este pacote apenas decide. Em caso de
// recusa, o TimeSlot retornado é zero e o motivo indica o que barrar na UI
// ou na API.
func ValidateReschedule(
	target BarberAvailability,
	appointmentID uint,
	durationMin int,
	newStartMin int,
) (TimeSlot, ConflictReason) {

	reason := CheckSlot(target.Hours, target.Booked, newStartMin, durationMin, appointmentID)
	if reason != ConflictNone {
		return TimeSlot{}, reason
	}

	return newSlot(newStartMin, newStartMin+durationMin), ConflictNone
}
