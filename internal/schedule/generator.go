package schedule

// GenerateSlots materializa, em ordem crescente, todas as janelas de
// slotMin minutos dentro do expediente informado.
//
// Regras:
//   - dia fechado ou expediente malformado → sequência vazia (caso comum,
//     não é erro);
//   - candidato cujo início cai dentro de [breakStart, breakEnd) não é
//     emitido: o cursor salta para breakEnd e segue de lá;
//   - nenhum slot termina depois do fechamento — quem estoura é descartado,
//     não truncado.
//
// slotMin <= 0 é bug de quem chama e gera panic.
func GenerateSlots(wh WorkingHours, slotMin int) []TimeSlot {
	if slotMin <= 0 {
		panic("schedule: slot duration must be positive")
	}

	w, ok := wh.window()
	if !ok {
		return nil
	}

	var slots []TimeSlot

	cur := w.open
	for {
		if w.hasBreak && cur >= w.breakStart && cur < w.breakEnd {
			cur = w.breakEnd
			continue
		}

		end := cur + slotMin
		if end > w.close {
			break
		}

		slots = append(slots, newSlot(cur, end))
		cur += slotMin
	}

	return slots
}

// AvailableSlots gera os slots do expediente e mantém apenas os que passam
// no detector de conflito contra os intervalos ocupados do próprio barbeiro.
func AvailableSlots(b BarberAvailability, slotMin int) []TimeSlot {
	var free []TimeSlot
	for _, s := range GenerateSlots(b.Hours, slotMin) {
		if CheckSlot(b.Hours, b.Booked, s.StartMin, slotMin, 0) == ConflictNone {
			free = append(free, s)
		}
	}
	return free
}
