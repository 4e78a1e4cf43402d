package appointment

import (
	"context"
	"time"

	"github.com/StudioNavalha/agenda-api/internal/audit"
	"github.com/StudioNavalha/agenda-api/internal/cache"
	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/models"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
	"github.com/StudioNavalha/agenda-api/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// RescheduleAppointment move um agendamento para outro horário e/ou outro
// barbeiro (o drag-and-drop do painel). A janela nova é validada contra o
// expediente do barbeiro de destino ignorando o intervalo do próprio
// agendamento: reagendar dentro do próprio horário é legal.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actorID uint,
	in domain.RescheduleInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia e agendamento
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForShop(ctx, in.AppointmentID, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Janela nova no timezone da barbearia
	// --------------------------------------------------
	loc := timezone.Location(shop.Timezone)

	newStart, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// A duração vem do serviço contratado; agendamento antigo sem serviço
	// preservado mantém a duração original.
	durMin := ap.BarberProduct.DurationMin
	if durMin <= 0 {
		durMin = int(ap.EndTime.Sub(ap.StartTime).Minutes())
	}
	if durMin <= 0 {
		return nil, httperr.ErrBusiness("product_without_duration")
	}

	newEnd := newStart.Add(time.Duration(durMin) * time.Minute)

	newBarberID := in.NewBarberID
	if newBarberID == 0 {
		newBarberID = ap.BarberID
	}

	// --------------------------------------------------
	// 3️⃣ Validação pelo motor de disponibilidade
	// --------------------------------------------------
	target, err := loadBarberAvailability(ctx, uc.repo, newBarberID, newStart)
	if err != nil {
		return nil, err
	}

	_, reason := schedule.ValidateReschedule(
		target,
		ap.ID,
		durMin,
		schedule.MinutesOfDay(newStart),
	)
	if reason != schedule.ConflictNone {
		return nil, httperr.ErrBusiness(string(reason))
	}

	// --------------------------------------------------
	// 4️⃣ Última linha contra corrida
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		newBarberID,
		newStart,
		newEnd,
		ap.ID,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Movimento (status centralizado)
	// --------------------------------------------------
	oldBarberID := ap.BarberID
	oldDate := ap.StartTime.In(loc).Format("2006-01-02")

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Move(ap, newBarberID, newStart, newEnd, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Dia antigo e dia novo saem do cache; barbeiro antigo também quando a
	// mudança foi de coluna.
	uc.cache.InvalidateBarberDay(ctx, oldBarberID, oldDate)
	uc.cache.InvalidateBarberDay(ctx, newBarberID, in.Date)

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &actorID,
		Action:       "appointment_rescheduled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
