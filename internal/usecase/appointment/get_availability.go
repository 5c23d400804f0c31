package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const defaultSlotStepMinutes = 30

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GetAvailabilityInput struct {
	BarberID  string
	Date      string // 2006-01-02
	ServiceID string // opcional; define a duração do slot
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]TimeSlot, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}

	duration := defaultSlotStepMinutes
	if in.ServiceID != "" {
		service, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		duration = service.DurationMin
	}

	weekday := int(date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil || !wh.Active {
		// Barbeiro não trabalha neste dia
		return []TimeSlot{}, nil
	}

	starts, err := domain.GenerateDaySlots(wh.StartTime, wh.EndTime, defaultSlotStepMinutes)
	if err != nil {
		return nil, err
	}

	workEnd, err := domain.ParseHHMM(wh.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListActiveAppointmentsForDay(ctx, in.BarberID, in.Date, "")
	if err != nil {
		return nil, err
	}

	slots := []TimeSlot{}

	for _, start := range starts {
		startMin, err := domain.ParseHHMM(start)
		if err != nil {
			return nil, err
		}

		// Slot precisa caber no expediente
		if startMin+duration > workEnd {
			continue
		}

		end := domain.FormatHHMM(startMin + duration)

		conflict := false
		for _, ap := range existing {
			overlap, err := domain.Overlaps(start, end, ap.StartTime, ap.EndTime)
			if err != nil {
				return nil, err
			}
			if overlap {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{Start: start, End: end})
		}
	}

	return slots, nil
}
