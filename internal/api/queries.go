package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/weatherdesk/server/internal/api/schema"
	"github.com/weatherdesk/server/internal/weatherquery"
)

type endpointCreateQueryRequestPayload struct {
	Location  *string `json:"location" required:"true"`
	StartDate *string `json:"start_date" required:"true"`
	EndDate   *string `json:"end_date" required:"true"`
}

type endpointUpdateQueryRequestPayload struct {
	Location  *string `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// EndpointCreateQuery handles the 'POST /queries' endpoint.
// A record is only ever persisted after the provider confirmed the requested location;
// the snapshot it returned is frozen into the record.
func (service *Service) EndpointCreateQuery(writer http.ResponseWriter, request *http.Request) {
	payload, validationErr, err := schema.UnmarshalBody[endpointCreateQueryRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr.Message)
		return
	}

	startDate, err := weatherquery.ParseDate(*payload.StartDate)
	if err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format.")
		return
	}
	endDate, err := weatherquery.ParseDate(*payload.EndDate)
	if err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format.")
		return
	}
	if err := weatherquery.ValidateRange(startDate, endDate); err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, "start_date cannot be after end_date.")
		return
	}

	location := strings.TrimSpace(*payload.Location)
	snapshot, err := service.Weather.Current(request.Context(), location)
	if err != nil {
		service.writeProviderError(writer, err, true)
		return
	}

	obj, err := service.Storage.Queries().Create(request.Context(), &weatherquery.Create{
		Location:  location,
		StartDate: startDate,
		EndDate:   endDate,
		Result:    snapshot,
	})
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSONCode(writer, http.StatusCreated, obj)
}

// EndpointGetQueries handles the 'GET /queries' endpoint
func (service *Service) EndpointGetQueries(writer http.ResponseWriter, request *http.Request) {
	objs, err := service.Storage.Queries().GetAll(request.Context())
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, objs)
}

// EndpointExportQueries handles the 'GET /queries/export' endpoint.
// The representation equals the one of the list endpoint; the attachment disposition marks the
// response as intended for bulk retrieval.
func (service *Service) EndpointExportQueries(writer http.ResponseWriter, request *http.Request) {
	objs, err := service.Storage.Queries().GetAll(request.Context())
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	writer.Header().Set("Content-Disposition", `attachment; filename="weather_queries.json"`)
	service.writer.WriteJSON(writer, objs)
}

// EndpointGetQuery handles the 'GET /queries/{id}' endpoint
func (service *Service) EndpointGetQuery(writer http.ResponseWriter, request *http.Request) {
	obj, err := service.Storage.Queries().GetByID(request.Context(), queryID(request))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteError(writer, http.StatusNotFound, "Query not found.")
		return
	}
	service.writer.WriteJSON(writer, obj)
}

// EndpointUpdateQuery handles the 'PUT /queries/{id}' endpoint.
// Each field is independently optional; omitted fields retain their stored values.
// A location change re-fetches the provider snapshot so location and result always change together,
// and the date range is re-validated on the post-update values before anything is committed.
// Any failure leaves the stored record untouched.
func (service *Service) EndpointUpdateQuery(writer http.ResponseWriter, request *http.Request) {
	id := queryID(request)
	obj, err := service.Storage.Queries().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteError(writer, http.StatusNotFound, "Query not found.")
		return
	}

	payload, validationErr, err := schema.UnmarshalBody[endpointUpdateQueryRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr.Message)
		return
	}

	update := &weatherquery.Update{}
	startDate := obj.StartDate
	endDate := obj.EndDate

	if payload.Location != nil {
		location := strings.TrimSpace(*payload.Location)
		if location == "" {
			service.writer.WriteError(writer, http.StatusBadRequest, "Location must not be empty.")
			return
		}
		snapshot, err := service.Weather.Current(request.Context(), location)
		if err != nil {
			service.writeProviderError(writer, err, true)
			return
		}
		update.Location = &location
		update.Result = snapshot
	}

	if payload.StartDate != nil {
		parsed, err := weatherquery.ParseDate(*payload.StartDate)
		if err != nil {
			service.writer.WriteError(writer, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format.")
			return
		}
		update.StartDate = &parsed
		startDate = parsed
	}
	if payload.EndDate != nil {
		parsed, err := weatherquery.ParseDate(*payload.EndDate)
		if err != nil {
			service.writer.WriteError(writer, http.StatusBadRequest, "end_date must be in YYYY-MM-DD format.")
			return
		}
		update.EndDate = &parsed
		endDate = parsed
	}

	if err := weatherquery.ValidateRange(startDate, endDate); err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, "start_date cannot be after end_date.")
		return
	}

	updated, err := service.Storage.Queries().Update(request.Context(), id, update)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if updated == nil {
		service.writer.WriteError(writer, http.StatusNotFound, "Query not found.")
		return
	}
	service.writer.WriteJSON(writer, updated)
}

// EndpointDeleteQuery handles the 'DELETE /queries/{id}' endpoint
func (service *Service) EndpointDeleteQuery(writer http.ResponseWriter, request *http.Request) {
	obj, err := service.Storage.Queries().GetByID(request.Context(), queryID(request))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteError(writer, http.StatusNotFound, "Query not found.")
		return
	}

	if err := service.Storage.Queries().Delete(request.Context(), obj.ID); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, map[string]string{
		"message": "Query deleted successfully.",
	})
}

// queryID extracts the record ID out of the request path.
// The route pattern restricts the parameter to digits; a value exceeding the int64 range parses
// to 0 and falls through to the regular not-found handling.
func queryID(request *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	return id
}
