package schedule

import "testing"

func weekdayHours(start, end, breakStart, breakEnd string) WorkingHours {
	return WorkingHours{
		Weekday:    2,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
		Active:     true,
	}
}

func slotStarts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	wh := weekdayHours("09:00", "18:00", "", "")
	wh.Active = false

	if slots := GenerateSlots(wh, 30); len(slots) != 0 {
		t.Fatalf("expected no slots on closed day, got %d", len(slots))
	}
}

func TestGenerateSlots_MissingTimes(t *testing.T) {
	cases := []WorkingHours{
		weekdayHours("", "", "", ""),
		weekdayHours("09:00", "", "", ""),
		weekdayHours("", "18:00", "", ""),
	}
	for i, wh := range cases {
		if slots := GenerateSlots(wh, 30); len(slots) != 0 {
			t.Errorf("case %d: expected empty, got %d slots", i, len(slots))
		}
	}
}

func TestGenerateSlots_NoBreak(t *testing.T) {
	wh := weekdayHours("09:00", "12:00", "", "")

	slots := GenerateSlots(wh, 30)

	// floor((12:00-09:00)/30) = 6
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d: %v", len(slots), slotStarts(slots))
	}

	closeMin, _ := ParseClock("12:00")
	for i, s := range slots {
		if s.EndMin-s.StartMin != 30 {
			t.Errorf("slot %d: expected 30 min, got %d", i, s.EndMin-s.StartMin)
		}
		if s.EndMin > closeMin {
			t.Errorf("slot %d ends past closing: %s", i, s.End)
		}
		if i > 0 && slots[i-1].StartMin >= s.StartMin {
			t.Errorf("slots out of order at %d: %s >= %s", i, slots[i-1].Start, s.Start)
		}
	}
}

func TestGenerateSlots_BreakSubtraction(t *testing.T) {
	// 09:00-12:00, pausa 10:00-10:30, slots de 30 min.
	// O slot das 09:30 fica: termina exatamente no início da pausa.
	wh := weekdayHours("09:00", "12:00", "10:00", "10:30")

	slots := GenerateSlots(wh, 30)

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateSlots_NoStartInsideBreak(t *testing.T) {
	wh := weekdayHours("08:00", "19:00", "12:10", "13:25")

	bs, _ := ParseClock("12:10")
	be, _ := ParseClock("13:25")

	for _, s := range GenerateSlots(wh, 15) {
		if s.StartMin >= bs && s.StartMin < be {
			t.Errorf("slot starts inside break: %s", s.Start)
		}
	}
}

func TestGenerateSlots_ResumesAtBreakEnd(t *testing.T) {
	// Pausa terminando fora da grade de 30 min: o cursor retoma exatamente
	// às 10:40, não às 10:30 nem às 11:00.
	wh := weekdayHours("09:00", "13:00", "10:00", "10:40")

	slots := GenerateSlots(wh, 30)

	found := false
	for _, s := range slots {
		if s.Start == "10:40" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a slot starting at 10:40, got %v", slotStarts(slots))
	}
}

func TestGenerateSlots_DropsSlotPastClosing(t *testing.T) {
	// 11:40 + 30 estouraria as 12:00: descartado, não truncado.
	wh := weekdayHours("09:00", "11:50", "", "")

	slots := GenerateSlots(wh, 30)
	last := slots[len(slots)-1]
	if last.End != "11:30" {
		t.Fatalf("expected last slot to end 11:30, got %s", last.End)
	}
}

func TestGenerateSlots_BreakOverlapEmittedButRejected(t *testing.T) {
	// Com slots de 45 min o gerador emite 09:45-10:30 (início fora da pausa),
	// mas o detector recusa a mesma janela por cruzar a pausa. AvailableSlots
	// aplica o detector e a filtra.
	wh := weekdayHours("09:00", "12:00", "10:00", "10:30")

	var emitted bool
	for _, s := range GenerateSlots(wh, 45) {
		if s.Start == "09:45" {
			emitted = true
		}
	}
	if !emitted {
		t.Fatal("expected generator to emit the 09:45 slot")
	}

	free := AvailableSlots(BarberAvailability{BarberID: 1, Hours: wh}, 45)
	for _, s := range free {
		if s.Start == "09:45" {
			t.Fatal("expected detector to reject the 09:45 slot")
		}
	}
}

func TestGenerateSlots_MalformedTreatedAsClosed(t *testing.T) {
	cases := []WorkingHours{
		weekdayHours("18:00", "09:00", "", ""),      // abertura depois do fechamento
		weekdayHours("09:00", "18:00", "12:00", ""), // pausa pela metade
		weekdayHours("09:00", "18:00", "", "13:00"),
		weekdayHours("09:00", "18:00", "13:00", "12:00"), // pausa invertida
		weekdayHours("09:00", "18:00", "08:00", "09:30"), // pausa fora do expediente
		weekdayHours("9h00", "18:00", "", ""),            // formato inválido
	}
	for i, wh := range cases {
		if slots := GenerateSlots(wh, 30); len(slots) != 0 {
			t.Errorf("case %d: expected empty for malformed hours, got %d slots", i, len(slots))
		}
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	wh := weekdayHours("09:00", "17:00", "12:00", "13:00")

	first := GenerateSlots(wh, 25)
	second := GenerateSlots(wh, 25)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateSlots_ZeroWidthWindow(t *testing.T) {
	// Janela menor que a duração: resultado vazio é válido.
	wh := weekdayHours("09:00", "09:20", "", "")
	if slots := GenerateSlots(wh, 30); len(slots) != 0 {
		t.Fatalf("expected 0 slots, got %d", len(slots))
	}
}

func TestGenerateSlots_PanicsOnInvalidDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive slot duration")
		}
	}()
	GenerateSlots(weekdayHours("09:00", "18:00", "", ""), 0)
}
