package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("America/Sao_Paulo") {
		t.Error("expected America/Sao_Paulo to be valid")
	}
	if IsValid("") {
		t.Error("expected empty timezone to be invalid")
	}
	if IsValid("Marte/Olympus") {
		t.Error("expected unknown timezone to be invalid")
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("nada/disso")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
}

func TestLocation_Valid(t *testing.T) {
	loc := Location("America/Recife")
	if loc.String() != "America/Recife" {
		t.Fatalf("expected America/Recife, got %s", loc)
	}
}
