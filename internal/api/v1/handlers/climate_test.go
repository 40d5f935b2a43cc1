package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/climate-service/internal/api/v1/handlers"
	"ulascansenturk/climate-service/internal/mocks"
	"ulascansenturk/climate-service/internal/service"
)

type ClimateHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockClimateService
	handler     *handlers.ClimateHandler
}

func (s *ClimateHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockClimateService(s.T())
	s.handler = handlers.NewClimateHandler(s.mockService, 5*time.Second)
}

func (s *ClimateHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	return serve(s.handler, method, target)
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	return recorder
}

func floatPtr(v float64) *float64 {
	return &v
}

func (s *ClimateHandlerTestSuite) TestIndexListsRoutes() {
	recorder := s.serve(http.MethodGet, "/")

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Header().Get("Content-Type"), "text/html")
	s.Equal(
		"Available Routes:<br/>/api/v1.0/precipitation<br/>/api/v1.0/stations<br/>/api/v1.0/tobs<br/>/api/v1.0/start<br/>/api/v1.0/start/end<br/>",
		recorder.Body.String(),
	)
}

func (s *ClimateHandlerTestSuite) TestGetPrecipitation() {
	s.mockService.On("Precipitation", mock.Anything).Return(
		[]service.PrecipitationReading{
			{Date: "2016-08-23", Precipitation: floatPtr(0.08)},
			{Date: "2016-08-24", Precipitation: nil},
		},
		nil,
	)

	recorder := s.serve(http.MethodGet, "/api/v1.0/precipitation")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))
	s.JSONEq(`[{"date":"2016-08-23","precipitation":0.08},{"date":"2016-08-24","precipitation":null}]`, recorder.Body.String())
}

func (s *ClimateHandlerTestSuite) TestGetPrecipitationEmpty() {
	s.mockService.On("Precipitation", mock.Anything).Return([]service.PrecipitationReading{}, nil)

	recorder := s.serve(http.MethodGet, "/api/v1.0/precipitation")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("[]\n", recorder.Body.String())
}

func (s *ClimateHandlerTestSuite) TestGetStations() {
	s.mockService.On("StationNames", mock.Anything).Return([]string{"WAIKIKI 717.2, HI US", "KANEOHE 838.1, HI US"}, nil)

	recorder := s.serve(http.MethodGet, "/api/v1.0/stations")

	s.Equal(http.StatusOK, recorder.Code)

	var names []string
	s.NoError(json.NewDecoder(recorder.Body).Decode(&names))
	s.Equal([]string{"WAIKIKI 717.2, HI US", "KANEOHE 838.1, HI US"}, names)
}

func (s *ClimateHandlerTestSuite) TestGetStationsNilBecomesEmptyArray() {
	s.mockService.On("StationNames", mock.Anything).Return(nil, nil)

	recorder := s.serve(http.MethodGet, "/api/v1.0/stations")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("[]\n", recorder.Body.String())
}

func (s *ClimateHandlerTestSuite) TestGetMostActiveStationTemperatures() {
	s.mockService.On("MostActiveStationTemperatures", mock.Anything).Return(
		[]service.TemperatureObservation{
			{Date: "2017-08-17", Temperature: 76},
			{Date: "2017-08-18", Temperature: 79},
		},
		nil,
	)

	recorder := s.serve(http.MethodGet, "/api/v1.0/tobs")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(
		`[{"Date":"2017-08-17","Temperature":76},{"Date":"2017-08-18","Temperature":79}]`+"\n",
		recorder.Body.String(),
	)
}

func (s *ClimateHandlerTestSuite) TestGetTemperatureStatsFrom() {
	s.mockService.On("TemperatureStatsFrom", mock.Anything, "2017-08-22").Return(
		service.TemperatureSummary{Minimum: floatPtr(80), Maximum: floatPtr(81), Average: floatPtr(80.5)},
		nil,
	)

	recorder := s.serve(http.MethodGet, "/api/v1.0/2017-08-22")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(
		`[{"Minimum Temperature":80,"Maximum Temperature":81,"Average Temperature":80.5}]`+"\n",
		recorder.Body.String(),
	)
}

func (s *ClimateHandlerTestSuite) TestGetTemperatureStatsBetween() {
	s.mockService.On("TemperatureStatsBetween", mock.Anything, "2017-08-22", "2017-08-23").Return(
		service.TemperatureSummary{Minimum: floatPtr(80), Maximum: floatPtr(81), Average: floatPtr(80.5)},
		nil,
	)

	recorder := s.serve(http.MethodGet, "/api/v1.0/2017-08-22/2017-08-23")

	s.Equal(http.StatusOK, recorder.Code)

	var response []handlers.TemperatureSummaryResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Len(response, 1)
	s.Equal(80.0, *response[0].Minimum)
	s.Equal(81.0, *response[0].Maximum)
	s.Equal(80.5, *response[0].Average)
}

func (s *ClimateHandlerTestSuite) TestGetTemperatureStatsNullSummary() {
	s.mockService.On("TemperatureStatsBetween", mock.Anything, "2017-08-23", "2017-01-01").Return(service.TemperatureSummary{}, nil)

	recorder := s.serve(http.MethodGet, "/api/v1.0/2017-08-23/2017-01-01")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(
		`[{"Minimum Temperature":null,"Maximum Temperature":null,"Average Temperature":null}]`+"\n",
		recorder.Body.String(),
	)
}

func (s *ClimateHandlerTestSuite) TestMalformedStartIsServerError() {
	s.mockService.On("TemperatureStatsFrom", mock.Anything, "not-a-date").Return(
		service.TemperatureSummary{},
		fmt.Errorf("%w %q", service.ErrInvalidDate, "not-a-date"),
	)

	recorder := s.serve(http.MethodGet, "/api/v1.0/not-a-date")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Len(response.Errors, 1)
	s.Equal("INTERNAL_ERROR", response.Errors[0].Code)
	s.Equal("failed to get temperature stats", response.Errors[0].Detail)
	s.NotContains(recorder.Body.String(), "not-a-date")
}

func (s *ClimateHandlerTestSuite) TestServiceErrorDetailIsGeneric() {
	expectedError := errors.New(`query most active station: pq: relation "measurement" does not exist`)
	s.mockService.On("MostActiveStationTemperatures", mock.Anything).Return(nil, expectedError)

	recorder := s.serve(http.MethodGet, "/api/v1.0/tobs")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Len(response.Errors, 1)
	s.Equal("failed to get temperature observations", response.Errors[0].Detail)
	s.NotContains(recorder.Body.String(), "measurement")
}

func (s *ClimateHandlerTestSuite) TestWrongMethod() {
	recorder := s.serve(http.MethodPost, "/api/v1.0/stations")

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)

	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Len(response.Errors, 1)
	s.Equal("METHOD_NOT_ALLOWED", response.Errors[0].Code)

	s.mockService.AssertNotCalled(s.T(), "StationNames", mock.Anything)
}

func (s *ClimateHandlerTestSuite) TestWrongPath() {
	for _, target := range []string{"/weather", "/api/v2.0/stations", "/api/v1.0/2017-01-01/2017-02-01/extra"} {
		recorder := s.serve(http.MethodGet, target)

		s.Equal(http.StatusNotFound, recorder.Code, target)

		var response handlers.ErrorResponse
		s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
		s.Equal("NOT_FOUND", response.Errors[0].Code)
	}
}

func (s *ClimateHandlerTestSuite) TestContextTimeout() {
	s.mockService.On("Precipitation", mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded)

	s.handler = handlers.NewClimateHandler(s.mockService, 50*time.Millisecond)

	recorder := s.serve(http.MethodGet, "/api/v1.0/precipitation")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("failed to get precipitation data", response.Errors[0].Detail)
}

func TestClimateHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClimateHandlerTestSuite))
}
