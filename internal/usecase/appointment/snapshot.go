package appointment

import (
	"context"
	"time"

	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// dayBounds delimita o dia-calendário da data no fuso dela.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	return start, start.Add(24 * time.Hour)
}

// loadBarberAvailability monta o snapshot que o motor consome: expediente do
// dia da semana mais agendamentos e bloqueios do dia projetados para
// minutos-do-dia. Barbeiro sem expediente cadastrado vira dia fechado, não
// erro.
func loadBarberAvailability(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date time.Time,
) (schedule.BarberAvailability, error) {

	avail := schedule.BarberAvailability{BarberID: barberID}

	wh, err := repo.GetWorkingHours(ctx, barberID, int(date.Weekday()))
	if err != nil {
		// sem registro = fechado
		return avail, nil
	}
	avail.Hours = wh.ToSchedule()

	dayStart, dayEnd := dayBounds(date)

	appointments, err := repo.ListAppointmentsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return schedule.BarberAvailability{}, err
	}
	for _, ap := range appointments {
		avail.Booked = append(avail.Booked, schedule.IntervalOf(
			ap.StartTime.In(date.Location()),
			ap.EndTime.In(date.Location()),
			ap.ID,
			barberID,
		))
	}

	blocks, err := repo.ListBlockedPeriodsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return schedule.BarberAvailability{}, err
	}
	for _, b := range blocks {
		// bloqueios entram sem AppointmentID: nunca são excluídos por ID
		avail.Booked = append(avail.Booked, schedule.IntervalOf(
			b.StartTime.In(date.Location()),
			b.EndTime.In(date.Location()),
			0,
			barberID,
		))
	}

	return avail, nil
}

// sameDay compara dois instantes no fuso do primeiro.
func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// filterPast remove slots cujo início já passou quando a data consultada é o
// dia do instante de referência. Dias futuros passam intactos.
func filterPast(slots []schedule.TimeSlot, date, now time.Time) []schedule.TimeSlot {
	if !sameDay(date, now) {
		return slots
	}

	nowMin := schedule.MinutesOfDay(now.In(date.Location()))

	var future []schedule.TimeSlot
	for _, s := range slots {
		if s.StartMin >= nowMin {
			future = append(future, s)
		}
	}
	return future
}
