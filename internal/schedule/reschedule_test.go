package schedule

import "testing"

func TestValidateReschedule_Success(t *testing.T) {
	target := BarberAvailability{
		BarberID: 3,
		Hours:    weekdayHours("09:00", "18:00", "12:00", "13:00"),
		Booked: []BookedInterval{
			{StartMin: mustClock(t, "10:00"), EndMin: mustClock(t, "10:45"), AppointmentID: 42, BarberID: 3},
			{StartMin: mustClock(t, "14:00"), EndMin: mustClock(t, "14:30"), AppointmentID: 51, BarberID: 3},
		},
	}

	slot, reason := ValidateReschedule(target, 42, 45, mustClock(t, "15:00"))
	if reason != ConflictNone {
		t.Fatalf("expected legal move, got %q", reason)
	}
	if slot.Start != "15:00" || slot.End != "15:45" {
		t.Fatalf("expected 15:00-15:45, got %s-%s", slot.Start, slot.End)
	}
}

func TestValidateReschedule_KeepsOwnSlot(t *testing.T) {
	// Mover para o próprio horário atual (mudou só o barbeiro de volta,
	// ou arrastou e soltou no mesmo lugar) é sempre legal.
	target := BarberAvailability{
		BarberID: 3,
		Hours:    weekdayHours("09:00", "18:00", "", ""),
		Booked: []BookedInterval{
			{StartMin: mustClock(t, "10:00"), EndMin: mustClock(t, "10:45"), AppointmentID: 42, BarberID: 3},
		},
	}

	_, reason := ValidateReschedule(target, 42, 45, mustClock(t, "10:00"))
	if reason != ConflictNone {
		t.Fatalf("expected own slot to be legal, got %q", reason)
	}
}

func TestValidateReschedule_EndsAfterClosing(t *testing.T) {
	// Serviço de 45 min movido para um início que estoura o fechamento.
	target := BarberAvailability{
		BarberID: 3,
		Hours:    weekdayHours("09:00", "18:00", "", ""),
	}

	slot, reason := ValidateReschedule(target, 42, 45, mustClock(t, "17:30"))
	if reason != ConflictOutsideWorkingHours {
		t.Fatalf("expected outside_working_hours, got %q", reason)
	}
	if slot != (TimeSlot{}) {
		t.Fatalf("expected zero slot on refusal, got %+v", slot)
	}
}

func TestValidateReschedule_OntoAnotherAppointment(t *testing.T) {
	target := BarberAvailability{
		BarberID: 3,
		Hours:    weekdayHours("09:00", "18:00", "", ""),
		Booked: []BookedInterval{
			{StartMin: mustClock(t, "14:00"), EndMin: mustClock(t, "14:30"), AppointmentID: 51, BarberID: 3},
		},
	}

	_, reason := ValidateReschedule(target, 42, 45, mustClock(t, "13:45"))
	if reason != ConflictTimeConflict {
		t.Fatalf("expected time_conflict, got %q", reason)
	}
}

func TestValidateReschedule_DuringBreak(t *testing.T) {
	target := BarberAvailability{
		BarberID: 3,
		Hours:    weekdayHours("09:00", "18:00", "12:00", "13:00"),
	}

	_, reason := ValidateReschedule(target, 42, 30, mustClock(t, "12:15"))
	if reason != ConflictDuringBreak {
		t.Fatalf("expected during_break, got %q", reason)
	}
}

func TestValidateReschedule_ClosedDay(t *testing.T) {
	hours := weekdayHours("09:00", "18:00", "", "")
	hours.Active = false

	_, reason := ValidateReschedule(BarberAvailability{BarberID: 3, Hours: hours}, 42, 30, mustClock(t, "10:00"))
	if reason != ConflictClosedDay {
		t.Fatalf("expected closed_day, got %q", reason)
	}
}
