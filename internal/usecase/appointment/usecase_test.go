package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/models"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// fakeRepo é um Repository em memória para exercitar os use cases sem banco.
type fakeRepo struct {
	shop         models.Barbershop
	product      models.BarberProduct
	hours        map[int]models.WorkingHours // por weekday
	appointments []models.Appointment
	blocks       []models.BlockedPeriod

	saved *models.Appointment
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != f.shop.ID {
		return nil, errors.New("not found")
	}
	shop := f.shop
	return &shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != f.shop.Slug {
		return nil, errors.New("not found")
	}
	shop := f.shop
	return &shop, nil
}

func (f *fakeRepo) GetProduct(_ context.Context, _, productID uint) (*models.BarberProduct, error) {
	if productID != f.product.ID {
		return nil, errors.New("not found")
	}
	product := f.product
	return &product, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.appointments) + 100)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, barberID uint, start, end time.Time, excludeID uint) error {
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].BarberID == barberID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetAppointmentForShop(_ context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].BarbershopID == barbershopID {
			ap := f.appointments[i]
			ap.BarberProduct = f.product
			return &ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.saved = ap
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
		}
	}
	return nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := f.hours[weekday]
	if !ok {
		return nil, errors.New("not found")
	}
	return &wh, nil
}

func (f *fakeRepo) ListBarbers(_ context.Context, _ uint) ([]models.User, error) {
	return []models.User{{ID: 1, Name: "Rafael"}}, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlockedPeriodsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.BlockedPeriod, error) {
	var out []models.BlockedPeriod
	for _, b := range f.blocks {
		if b.BarberID == barberID && b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointmentsForDay(context.Background(), barberID, start, end)
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Fixture: terça 2026-05-12, expediente 09:00-12:00,
// corte de 30min, 11:00-11:30 já ocupado.
// --------------------------------------------------

func newFixture() *fakeRepo {
	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)

	return &fakeRepo{
		shop: models.Barbershop{
			ID:       1,
			Slug:     "studio-navalha",
			Timezone: "UTC",
		},
		product: models.BarberProduct{
			ID:           10,
			BarbershopID: 1,
			Name:         "Corte",
			DurationMin:  30,
		},
		hours: map[int]models.WorkingHours{
			2: {
				BarberID:  1,
				Weekday:   2,
				Active:    true,
				StartTime: "09:00",
				EndTime:   "12:00",
			},
		},
		appointments: []models.Appointment{
			{
				ID:           7,
				BarbershopID: 1,
				BarberID:     1,
				StartTime:    day.Add(11 * time.Hour),
				EndTime:      day.Add(11*time.Hour + 30*time.Minute),
				Status:       string(domain.StatusScheduled),
			},
		},
	}
}

func TestGetAvailability_SkipsBookedSlot(t *testing.T) {
	repo := newFixture()
	uc := NewGetAvailability(repo, nil)

	date := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 11, 8, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     1,
		ProductID:    10,
		Date:         date,
		Now:          now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %+v", len(want), len(slots), slots)
	}
	for i, s := range slots {
		if s.Start != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], s.Start)
		}
	}
}

func TestGetAvailability_FiltersPastSlotsToday(t *testing.T) {
	repo := newFixture()
	uc := NewGetAvailability(repo, nil)

	date := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 12, 10, 15, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     1,
		ProductID:    10,
		Date:         date,
		Now:          now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		if s.StartMin < 10*60+15 {
			t.Errorf("slot %s already in the past", s.Start)
		}
	}
	if len(slots) != 2 { // 10:30 e 11:30
		t.Fatalf("expected 2 future slots, got %d: %+v", len(slots), slots)
	}
}

func TestGetAvailability_BlockedPeriodOccupiesSlots(t *testing.T) {
	repo := newFixture()
	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	repo.blocks = append(repo.blocks, models.BlockedPeriod{
		ID:        1,
		BarberID:  1,
		StartTime: day.Add(9 * time.Hour),
		EndTime:   day.Add(10 * time.Hour),
		Reason:    "folga",
	})

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     1,
		ProductID:    10,
		Date:         day,
		Now:          day.Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00", "10:30", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %+v", len(want), len(slots), slots)
	}
	for i, s := range slots {
		if s.Start != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], s.Start)
		}
	}
}

func TestReschedule_MovesWithinOwnWindow(t *testing.T) {
	repo := newFixture()
	uc := NewRescheduleAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), 1, domain.RescheduleInput{
		BarbershopID:  1,
		AppointmentID: 7,
		Date:          "2026-05-12",
		Time:          "11:15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ap.StartTime.Format("15:04"); got != "11:15" {
		t.Fatalf("expected start 11:15, got %s", got)
	}
	if ap.RescheduledAt == nil {
		t.Fatal("expected RescheduledAt to be set")
	}
	if repo.saved == nil {
		t.Fatal("expected appointment to be persisted")
	}
}

func TestReschedule_RejectsConflictWithOtherAppointment(t *testing.T) {
	repo := newFixture()
	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:           8,
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    day.Add(9 * time.Hour),
		EndTime:      day.Add(9*time.Hour + 30*time.Minute),
		Status:       string(domain.StatusScheduled),
	})

	uc := NewRescheduleAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, domain.RescheduleInput{
		BarbershopID:  1,
		AppointmentID: 7,
		Date:          "2026-05-12",
		Time:          "09:15",
	})
	if !httperr.IsBusiness(err, string(schedule.ConflictTimeConflict)) {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestReschedule_RejectsOutsideWorkingHours(t *testing.T) {
	repo := newFixture()
	uc := NewRescheduleAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, domain.RescheduleInput{
		BarbershopID:  1,
		AppointmentID: 7,
		Date:          "2026-05-12",
		Time:          "11:45", // terminaria 12:15, depois do fechamento
	})
	if !httperr.IsBusiness(err, string(schedule.ConflictOutsideWorkingHours)) {
		t.Fatalf("expected outside_working_hours, got %v", err)
	}
}

func TestCreatePrivate_RejectsDuringBreak(t *testing.T) {
	repo := newFixture()
	wh := repo.hours[2]
	wh.BreakStart = "10:00"
	wh.BreakEnd = "10:40"
	repo.hours[2] = wh

	uc := NewCreatePrivateAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), CreatePrivateAppointmentInput{
		BarbershopID:   1,
		BarberID:       1,
		ClientName:     "João",
		ClientPhone:    "11999990000",
		ProductID:      10,
		Date:           "2026-05-12",
		Time:           "10:10",
		SkipMinAdvance: true,
	})
	if !httperr.IsBusiness(err, string(schedule.ConflictDuringBreak)) {
		t.Fatalf("expected during_break, got %v", err)
	}
}
