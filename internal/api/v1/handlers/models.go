package handlers

import "ulascansenturk/climate-service/internal/service"

type PrecipitationResponse struct {
	Date          string   `json:"date"`
	Precipitation *float64 `json:"precipitation"`
}

type TemperatureObservationResponse struct {
	Date        string  `json:"Date"`
	Temperature float64 `json:"Temperature"`
}

type TemperatureSummaryResponse struct {
	Minimum *float64 `json:"Minimum Temperature"`
	Maximum *float64 `json:"Maximum Temperature"`
	Average *float64 `json:"Average Temperature"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

func toPrecipitationResponses(readings []service.PrecipitationReading) []PrecipitationResponse {
	out := make([]PrecipitationResponse, 0, len(readings))
	for _, reading := range readings {
		out = append(out, PrecipitationResponse{
			Date:          reading.Date,
			Precipitation: reading.Precipitation,
		})
	}
	return out
}

func toTemperatureObservationResponses(observations []service.TemperatureObservation) []TemperatureObservationResponse {
	out := make([]TemperatureObservationResponse, 0, len(observations))
	for _, observation := range observations {
		out = append(out, TemperatureObservationResponse{
			Date:        observation.Date,
			Temperature: observation.Temperature,
		})
	}
	return out
}

// toTemperatureSummaryResponses wraps the single aggregate row in a list to keep the
// array-of-objects shape shared by every data route.
func toTemperatureSummaryResponses(summary service.TemperatureSummary) []TemperatureSummaryResponse {
	return []TemperatureSummaryResponse{{
		Minimum: summary.Minimum,
		Maximum: summary.Maximum,
		Average: summary.Average,
	}}
}
