package climate

// DateLayout is the storage format of measurement.date.
const DateLayout = "2006-01-02"

type Station struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Code      string  `json:"station" gorm:"column:station"`
	Name      string  `json:"name" gorm:"column:name"`
	Latitude  float64 `json:"latitude" gorm:"column:latitude"`
	Longitude float64 `json:"longitude" gorm:"column:longitude"`
	Elevation float64 `json:"elevation" gorm:"column:elevation"`
}

func (Station) TableName() string {
	return "station"
}

type Measurement struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	Station       string   `json:"station" gorm:"column:station;index"`
	Date          string   `json:"date" gorm:"column:date;index"`
	Precipitation *float64 `json:"prcp" gorm:"column:prcp"`
	Temperature   float64  `json:"tobs" gorm:"column:tobs"`
}

func (Measurement) TableName() string {
	return "measurement"
}

// StationActivity is the observation count of one station inside a date window.
type StationActivity struct {
	Station      string `gorm:"column:station"`
	Observations int64  `gorm:"column:observations"`
}

// TemperatureStats holds MIN/MAX/AVG of tobs. Fields are nil when no rows matched.
type TemperatureStats struct {
	Minimum *float64 `gorm:"column:min_tobs"`
	Maximum *float64 `gorm:"column:max_tobs"`
	Average *float64 `gorm:"column:avg_tobs"`
}
