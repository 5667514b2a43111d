package appointment

import (
	"context"

	domain "github.com/ultramind-solutions/agendepro/internal/domain/appointment"
)

// DayAvailability é o resultado da consulta pública de horários.
type DayAvailability struct {
	Date     string   `json:"date"`
	Bookable bool     `json:"bookable"`
	Slots    []string `json:"slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários ainda livres do negócio na data: grade
// completa do expediente menos o conjunto ocupado. A ordem da grade é
// preservada e a duração do serviço nunca bloqueia horários seguintes.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	businessID uint,
	date string,
) (*DayAvailability, error) {

	settings, err := uc.repo.GetSettings(ctx, businessID)
	if err != nil {
		return nil, err
	}

	sched := domain.ScheduleFromSettings(settings)

	bookable, err := sched.IsDateBookable(date)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return &DayAvailability{Date: date, Bookable: false, Slots: []string{}}, nil
	}

	all, err := sched.Slots()
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		occupied[t] = struct{}{}
	}

	free := make([]string, 0, len(all))
	for _, t := range all {
		if _, taken := occupied[t]; !taken {
			free = append(free, t)
		}
	}

	return &DayAvailability{Date: date, Bookable: true, Slots: free}, nil
}
