package appointment

import (
	"context"

	"github.com/StudioNavalha/agenda-api/internal/cache"
	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.TimeSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	product, err := uc.repo.GetProduct(ctx, in.BarbershopID, in.ProductID)
	if err != nil {
		return nil, httperr.ErrBusiness("product_not_found")
	}

	durMin := product.DurationMin
	if durMin <= 0 {
		return nil, httperr.ErrBusiness("product_without_duration")
	}

	gridMin := shop.SlotGridMinutes
	if gridMin <= 0 {
		gridMin = durMin
	}

	dateKey := in.Date.Format("2006-01-02")

	// O cache guarda a grade completa do dia; o corte de horários já
	// passados depende do instante da chamada e é aplicado depois.
	if slots, ok := uc.cache.GetSlots(ctx, in.BarberID, dateKey, durMin); ok {
		return filterPast(slots, in.Date, in.Now), nil
	}

	avail, err := loadBarberAvailability(ctx, uc.repo, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := freeSlots(avail, gridMin, durMin)

	uc.cache.SetSlots(ctx, in.BarberID, dateKey, durMin, slots)

	return filterPast(slots, in.Date, in.Now), nil
}

// freeSlots percorre a grade do expediente e mantém os inícios em que o
// serviço inteiro cabe. Quando a barbearia usa grade fixa (ex.: de 15 em 15
// minutos) o passo difere da duração do serviço e cada slot é remontado com
// o fim real.
func freeSlots(avail schedule.BarberAvailability, gridMin, durMin int) []schedule.TimeSlot {
	if gridMin == durMin {
		return schedule.AvailableSlots(avail, durMin)
	}

	var free []schedule.TimeSlot
	for _, s := range schedule.GenerateSlots(avail.Hours, gridMin) {
		if schedule.CheckSlot(avail.Hours, avail.Booked, s.StartMin, durMin, 0) != schedule.ConflictNone {
			continue
		}
		free = append(free, schedule.TimeSlot{
			Start:    schedule.FormatClock(s.StartMin),
			End:      schedule.FormatClock(s.StartMin + durMin),
			StartMin: s.StartMin,
			EndMin:   s.StartMin + durMin,
		})
	}
	return free
}
