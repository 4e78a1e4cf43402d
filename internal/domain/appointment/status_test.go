package appointment

import (
	"testing"
	"time"

	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("cancel not applied: %+v", ap)
	}

	// Cancelar duas vezes é estado inválido.
	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("complete not applied: %+v", ap)
	}
}

func TestMove(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	start := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	ap := &models.Appointment{Status: string(StatusScheduled), BarberID: 1}
	if err := Move(ap, 2, start, end, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.BarberID != 2 || !ap.StartTime.Equal(start) || !ap.EndTime.Equal(end) {
		t.Fatalf("move not applied: %+v", ap)
	}
	if ap.Status != string(StatusScheduled) {
		t.Fatalf("move must keep status, got %s", ap.Status)
	}
	if ap.RescheduledAt == nil {
		t.Fatal("expected RescheduledAt to be set")
	}

	// Concluído não se move.
	done := &models.Appointment{Status: string(StatusCompleted)}
	if err := Move(done, 2, start, end, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
