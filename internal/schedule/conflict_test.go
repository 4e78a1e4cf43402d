package schedule

import "testing"

func mustClock(t *testing.T, hm string) int {
	t.Helper()
	min, ok := ParseClock(hm)
	if !ok {
		t.Fatalf("bad clock in test: %q", hm)
	}
	return min
}

func TestCheckSlot_ClosedDay(t *testing.T) {
	wh := weekdayHours("09:00", "18:00", "", "")
	wh.Active = false

	reason := CheckSlot(wh, nil, mustClock(t, "10:00"), 30, 0)
	if reason != ConflictClosedDay {
		t.Fatalf("expected closed_day, got %q", reason)
	}
}

func TestCheckSlot_MalformedHoursAsClosed(t *testing.T) {
	wh := weekdayHours("09:00", "", "", "")

	if reason := CheckSlot(wh, nil, mustClock(t, "10:00"), 30, 0); reason != ConflictClosedDay {
		t.Fatalf("expected closed_day for malformed hours, got %q", reason)
	}
}

func TestCheckSlot_OutsideWorkingHours(t *testing.T) {
	wh := weekdayHours("09:00", "12:00", "", "")

	// Começa antes da abertura.
	if reason := CheckSlot(wh, nil, mustClock(t, "08:30"), 30, 0); reason != ConflictOutsideWorkingHours {
		t.Errorf("before opening: expected outside_working_hours, got %q", reason)
	}
	// Começa dentro mas termina depois do fechamento.
	if reason := CheckSlot(wh, nil, mustClock(t, "11:45"), 30, 0); reason != ConflictOutsideWorkingHours {
		t.Errorf("past closing: expected outside_working_hours, got %q", reason)
	}
	// Termina exatamente no fechamento: permitido.
	if reason := CheckSlot(wh, nil, mustClock(t, "11:30"), 30, 0); reason != ConflictNone {
		t.Errorf("ends at closing: expected ok, got %q", reason)
	}
}

func TestCheckSlot_DuringBreak(t *testing.T) {
	wh := weekdayHours("09:00", "12:00", "10:00", "10:30")

	// Cruza a pausa por qualquer lado.
	if reason := CheckSlot(wh, nil, mustClock(t, "09:45"), 30, 0); reason != ConflictDuringBreak {
		t.Errorf("crossing into break: expected during_break, got %q", reason)
	}
	if reason := CheckSlot(wh, nil, mustClock(t, "10:15"), 30, 0); reason != ConflictDuringBreak {
		t.Errorf("starting inside break: expected during_break, got %q", reason)
	}
	// Encosta na pausa sem cruzar: permitido dos dois lados.
	if reason := CheckSlot(wh, nil, mustClock(t, "09:30"), 30, 0); reason != ConflictNone {
		t.Errorf("ending at break start: expected ok, got %q", reason)
	}
	if reason := CheckSlot(wh, nil, mustClock(t, "10:30"), 30, 0); reason != ConflictNone {
		t.Errorf("starting at break end: expected ok, got %q", reason)
	}
}

func TestCheckSlot_OverlapExisting(t *testing.T) {
	wh := weekdayHours("09:00", "12:00", "10:00", "10:30")
	booked := []BookedInterval{
		{StartMin: mustClock(t, "11:00"), EndMin: mustClock(t, "11:30"), AppointmentID: 7, BarberID: 1},
	}

	if IsSlotAvailable(wh, booked, mustClock(t, "11:00"), 30, 0) {
		t.Error("expected 11:00 unavailable")
	}
	if !IsSlotAvailable(wh, booked, mustClock(t, "11:30"), 30, 0) {
		t.Error("expected 11:30 available")
	}
}

func TestCheckSlot_HalfOpenBoundaries(t *testing.T) {
	wh := weekdayHours("09:00", "18:00", "", "")
	booked := []BookedInterval{
		{StartMin: mustClock(t, "10:00"), EndMin: mustClock(t, "11:00"), AppointmentID: 3, BarberID: 1},
	}

	// Termina exatamente onde o ocupado começa: sem conflito.
	if !IsSlotAvailable(wh, booked, mustClock(t, "09:00"), 60, 0) {
		t.Error("slot ending at booked start should be free")
	}
	// Começa exatamente onde o ocupado termina: sem conflito.
	if !IsSlotAvailable(wh, booked, mustClock(t, "11:00"), 60, 0) {
		t.Error("slot starting at booked end should be free")
	}
	// Idêntico ao ocupado: sempre conflito.
	if IsSlotAvailable(wh, booked, mustClock(t, "10:00"), 60, 0) {
		t.Error("slot equal to booked interval should conflict")
	}
}

func TestCheckSlot_ExcludesOwnAppointment(t *testing.T) {
	wh := weekdayHours("09:00", "18:00", "", "")
	booked := []BookedInterval{
		{StartMin: mustClock(t, "14:00"), EndMin: mustClock(t, "14:45"), AppointmentID: 42, BarberID: 2},
	}

	// A janela atual do próprio agendamento passa quando excluída...
	if !IsSlotAvailable(wh, booked, mustClock(t, "14:00"), 45, 42) {
		t.Error("own interval should not conflict with itself when excluded")
	}
	// ...e conflita quando não excluída.
	if IsSlotAvailable(wh, booked, mustClock(t, "14:00"), 45, 0) {
		t.Error("expected conflict without exclusion")
	}
}

func TestCheckSlot_ExclusionIgnoresBlockedPeriods(t *testing.T) {
	// Bloqueios carregam AppointmentID zero e nunca são excluídos por ID.
	wh := weekdayHours("09:00", "18:00", "", "")
	booked := []BookedInterval{
		{StartMin: mustClock(t, "15:00"), EndMin: mustClock(t, "16:00"), AppointmentID: 0, BarberID: 2},
	}

	if IsSlotAvailable(wh, booked, mustClock(t, "15:00"), 30, 42) {
		t.Error("blocked period must still conflict when an exclusion is active")
	}
}

func TestCheckSlot_PanicsOnInvalidDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive duration")
		}
	}()
	CheckSlot(weekdayHours("09:00", "18:00", "", ""), nil, 600, -15, 0)
}
