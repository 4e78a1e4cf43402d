package appointment

import (
	"context"

	domain "github.com/StudioNavalha/agenda-api/internal/domain/appointment"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/schedule"
)

// ======================================================
// OUTPUT
// ======================================================

// BarberColumn é a coluna de um barbeiro no painel do dia.
type BarberColumn struct {
	BarberID   uint                `json:"barber_id"`
	BarberName string              `json:"barber_name"`
	FreeSlots  []schedule.TimeSlot `json:"free_slots"`
}

// TimelineResult junta as linhas da grade (união dos horários em que pelo
// menos um barbeiro atende) com as colunas por barbeiro.
type TimelineResult struct {
	Slots   []schedule.TimeSlot `json:"slots"`
	Barbers []BarberColumn      `json:"barbers"`
}

// ======================================================
// USE CASE
// ======================================================

type GetTimeline struct {
	repo domain.Repository
}

func NewGetTimeline(repo domain.Repository) *GetTimeline {
	return &GetTimeline{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetTimeline) Execute(
	ctx context.Context,
	in domain.TimelineInput,
) (*TimelineResult, error) {

	if _, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID); err != nil {
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

	barbers, err := uc.repo.ListBarbers(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	result := &TimelineResult{
		Slots:   []schedule.TimeSlot{},
		Barbers: make([]BarberColumn, 0, len(barbers)),
	}

	var snapshots []schedule.BarberAvailability

	for _, b := range barbers {
		avail, err := loadBarberAvailability(ctx, uc.repo, b.ID, in.Date)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, avail)

		result.Barbers = append(result.Barbers, BarberColumn{
			BarberID:   b.ID,
			BarberName: b.Name,
			FreeSlots:  filterPast(schedule.AvailableSlots(avail, durMin), in.Date, in.Now),
		})
	}

	// As linhas são a união dos horários livres: um horário aparece uma
	// única vez mesmo quando vários barbeiros atendem nele.
	merged := schedule.MergeAvailability(snapshots, durMin)
	result.Slots = filterPast(merged, in.Date, in.Now)

	return result, nil
}
