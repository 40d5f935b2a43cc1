package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/climate-service/internal/service"
)

const apiPrefix = "/api/v1.0"

var availableRoutes = []string{
	apiPrefix + "/precipitation",
	apiPrefix + "/stations",
	apiPrefix + "/tobs",
	apiPrefix + "/start",
	apiPrefix + "/start/end",
}

type ClimateHandler struct {
	climateService service.ClimateService
	timeout        time.Duration
	handler        http.Handler
}

func NewClimateHandler(climateService service.ClimateService, timeout time.Duration) *ClimateHandler {
	h := &ClimateHandler{
		climateService: climateService,
		timeout:        timeout,
	}
	h.handler = accessLog(h.routes())

	return h
}

func (h *ClimateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

// routes registers the literal API paths before the date patterns so that
// "precipitation", "stations" and "tobs" never reach the date parser.
func (h *ClimateHandler) routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Index).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/precipitation", h.GetPrecipitation).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/stations", h.GetStations).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/tobs", h.GetMostActiveStationTemperatures).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/{start}", h.GetTemperatureStatsFrom).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/{start}/{end}", h.GetTemperatureStatsBetween).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

func (h *ClimateHandler) Index(w http.ResponseWriter, r *http.Request) {
	var body strings.Builder
	body.WriteString("Available Routes:<br/>")
	for _, route := range availableRoutes {
		body.WriteString(route)
		body.WriteString("<br/>")
	}

	respondWithHTML(w, http.StatusOK, body.String())
}

func (h *ClimateHandler) GetPrecipitation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	readings, err := h.climateService.Precipitation(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get precipitation data")
		respondWithError(w, http.StatusInternalServerError, "failed to get precipitation data")
		return
	}

	respondWithJSON(w, http.StatusOK, toPrecipitationResponses(readings))
}

func (h *ClimateHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names, err := h.climateService.StationNames(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stations")
		respondWithError(w, http.StatusInternalServerError, "failed to get stations")
		return
	}
	if names == nil {
		names = []string{}
	}

	respondWithJSON(w, http.StatusOK, names)
}

func (h *ClimateHandler) GetMostActiveStationTemperatures(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	observations, err := h.climateService.MostActiveStationTemperatures(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get most active station temperatures")
		respondWithError(w, http.StatusInternalServerError, "failed to get temperature observations")
		return
	}

	respondWithJSON(w, http.StatusOK, toTemperatureObservationResponses(observations))
}

// GetTemperatureStatsFrom answers malformed dates with 500, like any other failed query.
// The response carries a fixed detail; the cause only goes to the log.
func (h *ClimateHandler) GetTemperatureStatsFrom(w http.ResponseWriter, r *http.Request) {
	start := mux.Vars(r)["start"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summary, err := h.climateService.TemperatureStatsFrom(ctx, start)
	if err != nil {
		log.Error().Err(err).Str("start", start).Msg("failed to get temperature stats")
		respondWithError(w, http.StatusInternalServerError, "failed to get temperature stats")
		return
	}

	respondWithJSON(w, http.StatusOK, toTemperatureSummaryResponses(summary))
}

func (h *ClimateHandler) GetTemperatureStatsBetween(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	start, end := vars["start"], vars["end"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summary, err := h.climateService.TemperatureStatsBetween(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Str("start", start).Str("end", end).Msg("failed to get temperature stats")
		respondWithError(w, http.StatusInternalServerError, "failed to get temperature stats")
		return
	}

	respondWithJSON(w, http.StatusOK, toTemperatureSummaryResponses(summary))
}
