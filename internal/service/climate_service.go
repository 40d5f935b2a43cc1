package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ulascansenturk/climate-service/internal/db/climate"
)

// RecentWindowDays is the length of the trailing window that ends at the latest
// recorded date.
const RecentWindowDays = 366

var ErrInvalidDate = errors.New("invalid date")

type PrecipitationReading struct {
	Date          string
	Precipitation *float64
}

type TemperatureObservation struct {
	Date        string
	Temperature float64
}

type TemperatureSummary struct {
	Minimum *float64
	Maximum *float64
	Average *float64
}

// Window is the open date interval (After, Before).
type Window struct {
	After  string
	Before string
}

type ClimateService interface {
	Precipitation(ctx context.Context) ([]PrecipitationReading, error)
	StationNames(ctx context.Context) ([]string, error)
	MostActiveStationTemperatures(ctx context.Context) ([]TemperatureObservation, error)
	TemperatureStatsFrom(ctx context.Context, start string) (TemperatureSummary, error)
	TemperatureStatsBetween(ctx context.Context, start, end string) (TemperatureSummary, error)
}

type climateService struct {
	repo climate.Repository
}

func NewClimateService(repo climate.Repository) ClimateService {
	return &climateService{
		repo: repo,
	}
}

func (s *climateService) Precipitation(ctx context.Context) ([]PrecipitationReading, error) {
	window, ok, err := s.recentWindow(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []PrecipitationReading{}, nil
	}

	rows, err := s.repo.PrecipitationBetween(ctx, window.After, window.Before)
	if err != nil {
		return nil, fmt.Errorf("query precipitation: %w", err)
	}

	readings := make([]PrecipitationReading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, PrecipitationReading{
			Date:          row.Date,
			Precipitation: row.Precipitation,
		})
	}

	return readings, nil
}

func (s *climateService) StationNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.StationNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	if names == nil {
		return []string{}, nil
	}
	return names, nil
}

func (s *climateService) MostActiveStationTemperatures(ctx context.Context) ([]TemperatureObservation, error) {
	window, ok, err := s.recentWindow(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []TemperatureObservation{}, nil
	}

	activity, err := s.repo.MostActiveStation(ctx, window.After, window.Before)
	if err != nil {
		return nil, fmt.Errorf("query most active station: %w", err)
	}
	if activity == nil {
		return []TemperatureObservation{}, nil
	}

	rows, err := s.repo.TemperatureObservations(ctx, activity.Station)
	if err != nil {
		return nil, fmt.Errorf("query temperatures of station %s: %w", activity.Station, err)
	}

	observations := make([]TemperatureObservation, 0, len(rows))
	for _, row := range rows {
		observations = append(observations, TemperatureObservation{
			Date:        row.Date,
			Temperature: row.Temperature,
		})
	}

	return observations, nil
}

func (s *climateService) TemperatureStatsFrom(ctx context.Context, start string) (TemperatureSummary, error) {
	from, err := ParseDate(start)
	if err != nil {
		return TemperatureSummary{}, err
	}

	return s.temperatureStats(ctx, from, nil)
}

func (s *climateService) TemperatureStatsBetween(ctx context.Context, start, end string) (TemperatureSummary, error) {
	from, err := ParseDate(start)
	if err != nil {
		return TemperatureSummary{}, err
	}

	to, err := ParseDate(end)
	if err != nil {
		return TemperatureSummary{}, err
	}

	return s.temperatureStats(ctx, from, &to)
}

func (s *climateService) temperatureStats(ctx context.Context, from time.Time, to *time.Time) (TemperatureSummary, error) {
	var toDate *string
	if to != nil {
		formatted := to.Format(climate.DateLayout)
		toDate = &formatted
	}

	stats, err := s.repo.TemperatureStats(ctx, from.Format(climate.DateLayout), toDate)
	if err != nil {
		return TemperatureSummary{}, fmt.Errorf("query temperature stats: %w", err)
	}

	return TemperatureSummary{
		Minimum: stats.Minimum,
		Maximum: stats.Maximum,
		Average: stats.Average,
	}, nil
}

// recentWindow returns the trailing window ending at the latest stored date.
// ok is false when there are no measurements.
func (s *climateService) recentWindow(ctx context.Context) (Window, bool, error) {
	latest, ok, err := s.repo.LatestDate(ctx)
	if err != nil {
		return Window{}, false, fmt.Errorf("query latest date: %w", err)
	}
	if !ok {
		return Window{}, false, nil
	}

	window, err := RecentWindow(latest)
	if err != nil {
		return Window{}, false, err
	}

	return window, true, nil
}

// RecentWindow computes (latest - 366 days, latest) from a stored date.
func RecentWindow(latest string) (Window, error) {
	end, err := ParseDate(latest)
	if err != nil {
		return Window{}, err
	}

	return Window{
		After:  end.AddDate(0, 0, -RecentWindowDays).Format(climate.DateLayout),
		Before: end.Format(climate.DateLayout),
	}, nil
}

// ParseDate accepts only YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(climate.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, value, err)
	}
	return parsed, nil
}
