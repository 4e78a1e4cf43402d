package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StudioNavalha/agenda-api/internal/audit"
	"github.com/StudioNavalha/agenda-api/internal/cache"
	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/models"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
	"github.com/StudioNavalha/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePrivateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ProductID uint

	Date  string
	Time  string
	Notes string

	// Agendamento interno (pelo painel) não exige antecedência mínima.
	SkipMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreatePrivateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreatePrivateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreatePrivateAppointment {
	return &CreatePrivateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePrivateAppointment) Execute(
	ctx context.Context,
	in CreatePrivateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima
	// --------------------------------------------------
	now := timezone.NowIn(shop.Timezone)

	if !in.SkipMinAdvance {
		minAdvance := shop.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Serviço
	// --------------------------------------------------
	product, err := uc.repo.GetProduct(
		ctx,
		in.BarbershopID,
		in.ProductID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("product_not_found")
	}

	if product.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("product_without_duration")
	}

	end := start.Add(time.Duration(product.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5️⃣ Expediente, pausa, bloqueios e agendamentos
	// --------------------------------------------------
	avail, err := loadBarberAvailability(ctx, uc.repo, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	reason := schedule.CheckSlot(
		avail.Hours,
		avail.Booked,
		schedule.MinutesOfDay(start),
		product.DurationMin,
		0,
	)
	if reason != schedule.ConflictNone {
		return nil, httperr.ErrBusiness(string(reason))
	}

	// --------------------------------------------------
	// 6️⃣ Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Conflito de horário (última linha, contra corrida)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.BarberID,
		start,
		end,
		0,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Criação do agendamento (status centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicCode:      uuid.NewString(),
		BarbershopID:    in.BarbershopID,
		BarberID:        in.BarberID,
		ClientID:        client.ID,
		BarberProductID: product.ID,
		StartTime:       start,
		EndTime:         end,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateBarberDay(ctx, in.BarberID, in.Date)

	// --------------------------------------------------
	// 9️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
