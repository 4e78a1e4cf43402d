package schedule

import "testing"

func TestMergeAvailability_UnionDistinctStarts(t *testing.T) {
	// A oferece {09:00, 09:30}; B oferece {09:30, 10:00}.
	// Linha do tempo mesclada: {09:00, 09:30, 10:00}, cada um uma vez.
	a := BarberAvailability{
		BarberID: 1,
		Hours:    weekdayHours("09:00", "10:00", "", ""),
	}
	b := BarberAvailability{
		BarberID: 2,
		Hours:    weekdayHours("09:30", "10:30", "", ""),
	}

	merged := MergeAvailability([]BarberAvailability{a, b}, 30)

	want := []string{"09:00", "09:30", "10:00"}
	got := slotStarts(merged)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestMergeAvailability_FiltersPerBarberBookings(t *testing.T) {
	// Mesmo expediente, mas A está ocupado às 09:00 e B às 09:30:
	// cada horário segue na linha do tempo porque o outro barbeiro está livre.
	hours := weekdayHours("09:00", "10:00", "", "")

	a := BarberAvailability{
		BarberID: 1,
		Hours:    hours,
		Booked: []BookedInterval{
			{StartMin: 540, EndMin: 570, AppointmentID: 10, BarberID: 1},
		},
	}
	b := BarberAvailability{
		BarberID: 2,
		Hours:    hours,
		Booked: []BookedInterval{
			{StartMin: 570, EndMin: 600, AppointmentID: 11, BarberID: 2},
		},
	}

	merged := MergeAvailability([]BarberAvailability{a, b}, 30)
	got := slotStarts(merged)
	want := []string{"09:00", "09:30"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Com os dois ocupados no mesmo horário, ele some da linha do tempo.
	b.Booked = append(b.Booked, BookedInterval{StartMin: 540, EndMin: 570, AppointmentID: 12, BarberID: 2})
	merged = MergeAvailability([]BarberAvailability{a, b}, 30)
	got = slotStarts(merged)
	if len(got) != 1 || got[0] != "09:30" {
		t.Fatalf("expected only 09:30, got %v", got)
	}
}

func TestMergeAvailability_ClosedBarberContributesNothing(t *testing.T) {
	open := BarberAvailability{BarberID: 1, Hours: weekdayHours("09:00", "10:00", "", "")}

	closed := BarberAvailability{BarberID: 2, Hours: weekdayHours("08:00", "12:00", "", "")}
	closed.Hours.Active = false

	merged := MergeAvailability([]BarberAvailability{open, closed}, 30)
	if len(merged) != 2 {
		t.Fatalf("expected 2 slots from the open barber, got %v", slotStarts(merged))
	}
	if merged[0].Start != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", merged[0].Start)
	}
}

func TestMergeAvailability_Empty(t *testing.T) {
	if merged := MergeAvailability(nil, 30); len(merged) != 0 {
		t.Fatalf("expected empty merge, got %d", len(merged))
	}
}
