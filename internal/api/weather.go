package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/weatherdesk/server/internal/weather"
)

// EndpointGetCurrentWeather handles the 'GET /weather/current?location={string}' endpoint
func (service *Service) EndpointGetCurrentWeather(writer http.ResponseWriter, request *http.Request) {
	service.proxyWeather(writer, request, service.Weather.Current)
}

// EndpointGetForecast handles the 'GET /weather/forecast?location={string}' endpoint
func (service *Service) EndpointGetForecast(writer http.ResponseWriter, request *http.Request) {
	service.proxyWeather(writer, request, service.Weather.Forecast)
}

// proxyWeather passes a location lookup through to the provider gateway and returns its payload verbatim
func (service *Service) proxyWeather(writer http.ResponseWriter, request *http.Request, fetch func(context.Context, string) (json.RawMessage, error)) {
	location := strings.TrimSpace(request.URL.Query().Get("location"))
	if location == "" {
		service.writer.WriteError(writer, http.StatusBadRequest, "Location parameter is required.")
		return
	}

	payload, err := fetch(request.Context(), location)
	if err != nil {
		service.writeProviderError(writer, err, false)
		return
	}
	service.writer.WriteJSON(writer, payload)
}

// writeProviderError translates a provider gateway failure into an API response.
// A location the provider does not know is the caller's fault: it yields a 404 on the pure proxy
// endpoints and a 400 on the record write path (mutating). Credential and transient upstream
// failures are attributable to the system and always yield a 500.
func (service *Service) writeProviderError(writer http.ResponseWriter, err error, mutating bool) {
	if errors.Is(err, weather.ErrLocationNotFound) {
		if mutating {
			service.writer.WriteError(writer, http.StatusBadRequest, "Invalid location or unable to fetch weather data for the provided location.")
		} else {
			service.writer.WriteError(writer, http.StatusNotFound, "Could not fetch weather data. Check the location or try again later.")
		}
		return
	}

	service.writer.InternalErrorHook(err)
	service.writer.WriteError(writer, http.StatusInternalServerError, "Could not fetch weather data. Check the location or try again later.")
}
