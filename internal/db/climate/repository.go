package climate

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	LatestDate(ctx context.Context) (string, bool, error)
	PrecipitationBetween(ctx context.Context, after, before string) ([]Measurement, error)
	StationNames(ctx context.Context) ([]string, error)
	MostActiveStation(ctx context.Context, after, before string) (*StationActivity, error)
	TemperatureObservations(ctx context.Context, station string) ([]Measurement, error)
	TemperatureStats(ctx context.Context, from string, to *string) (TemperatureStats, error)
}

type ClimateSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ClimateSQLRepository{db: db}
}

// LatestDate returns MAX(date) of measurement. ok is false when the table is empty.
func (r *ClimateSQLRepository) LatestDate(ctx context.Context) (string, bool, error) {
	var latest sql.NullString
	err := r.db.WithContext(ctx).Model(&Measurement{}).Select("MAX(date)").Scan(&latest).Error
	if err != nil {
		return "", false, err
	}
	return latest.String, latest.Valid, nil
}

// PrecipitationBetween returns date and prcp for after < date < before, both bounds exclusive.
func (r *ClimateSQLRepository) PrecipitationBetween(ctx context.Context, after, before string) ([]Measurement, error) {
	var rows []Measurement
	err := r.db.WithContext(ctx).
		Select("date", "prcp").
		Where("date > ? AND date < ?", after, before).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ClimateSQLRepository) StationNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Station{}).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// MostActiveStation returns the station with the most measurements in after < date < before.
// Equal counts are resolved by station code. It returns nil when the window is empty.
func (r *ClimateSQLRepository) MostActiveStation(ctx context.Context, after, before string) (*StationActivity, error) {
	var activity StationActivity
	result := r.db.WithContext(ctx).
		Model(&Measurement{}).
		Select("station, COUNT(id) AS observations").
		Where("date > ? AND date < ?", after, before).
		Group("station").
		Order("observations DESC, station ASC").
		Limit(1).
		Scan(&activity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &activity, nil
}

// TemperatureObservations returns date and tobs for every measurement of station.
func (r *ClimateSQLRepository) TemperatureObservations(ctx context.Context, station string) ([]Measurement, error) {
	var rows []Measurement
	err := r.db.WithContext(ctx).
		Select("date", "tobs").
		Where("station = ?", station).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TemperatureStats aggregates tobs for date >= from and, when to is set, date <= to.
func (r *ClimateSQLRepository) TemperatureStats(ctx context.Context, from string, to *string) (TemperatureStats, error) {
	var stats TemperatureStats

	query := r.db.WithContext(ctx).
		Model(&Measurement{}).
		Select("MIN(tobs) AS min_tobs, MAX(tobs) AS max_tobs, AVG(tobs) AS avg_tobs").
		Where("date >= ?", from)
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	if err := query.Scan(&stats).Error; err != nil {
		return TemperatureStats{}, err
	}
	return stats, nil
}
