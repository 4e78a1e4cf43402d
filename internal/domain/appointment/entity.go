package appointment

import (
	"time"

	"github.com/StudioNavalha/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Move aplica um reagendamento já validado pelo motor de disponibilidade:
// troca barbeiro e janela, mantendo o status.
func Move(ap *models.Appointment, barberID uint, start, end, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.BarberID = barberID
	ap.StartTime = start
	ap.EndTime = end
	ap.RescheduledAt = &now
	return nil
}
