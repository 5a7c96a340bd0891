package calendar

import (
	"net/http"
	"organise/infras/otel"
	"organise/internal/domains/calendar/model"
	"organise/internal/domains/calendar/model/dto"
	"organise/internal/domains/calendar/service"
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/failure"
	"organise/shared/validator"
	"organise/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CalendarEvent
	otel    otel.Otel
}

func New(service service.CalendarEvent, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Route("/events", func(events chi.Router) {
			events.Post("/", handler.CreateEvent)
			events.Get("/", handler.GetEvents)
			events.Get("/range", handler.GetEventsByDateRange)
			events.Get("/{id}", handler.GetEventByID)
			events.Put("/{id}", handler.UpdateEvent)
			events.Delete("/{id}", handler.DeleteEvent)
		})

		routerGroup.Post("/sync/google", handler.SyncGoogle)
	})
}

// CreateEvent handles the creation of a new calendar event.
// @Summary Create a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Create Event Request"
// @Success 201 {object} dto.EventResponse "Created event"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/calendar/events [post]
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.EventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create calendar event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, event)
}

// GetEvents retrieves all calendar events.
// @Summary Get all calendar events
// @Tags Calendar
// @Produce json
// @Param source query string false "Filter by origin" Enums(local, google)
// @Param page query int false "Page number, requires limit"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort field" Enums(title, start_time, end_time, source, created_at, updated_at)
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/calendar/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	if err := queryParams.AllowSort(model.SortableFields...); err != nil {
		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if source := r.URL.Query().Get(model.FieldSource); source != "" {
		filterGroup.Add(gDto.Filter{Field: model.FieldSource, Operator: gDto.FilterOperatorEq, Value: source})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventsByDateRange retrieves the events intersecting a time range.
// @Summary Get calendar events in a range
// @Description Every event whose interval intersects [start_date, end_date], bounds included.
// @Tags Calendar
// @Produce json
// @Param start_date query string true "Range start (RFC3339)"
// @Param end_date query string true "Range end (RFC3339)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/calendar/events/range [get]
func (handler *Handler) GetEventsByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventsByDateRange")
	defer scope.End()

	start, err := parseDateParam(r, constant.RequestParamStartDate)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	end, err := parseDateParam(r, constant.RequestParamEndDate)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	events, err := handler.service.GetByDateRange(ctx, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Time("start", start).Time("end", end).Msg("failed to get calendar events by range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		msg := name + " is required"

		return time.Time{}, failure.Validation(msg, map[string]string{name: msg}) //nolint:wrapcheck
	}

	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		msg := name + " must be an RFC3339 timestamp"

		return time.Time{}, failure.Validation(msg, map[string]string{name: msg}) //nolint:wrapcheck
	}

	return parsed, nil
}

// GetEventByID retrieves a calendar event by its ID.
// @Summary Get a calendar event by ID
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/calendar/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get calendar event by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent replaces an existing calendar event.
// @Summary Update a calendar event by ID
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.EventRequest true "Update Event Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/calendar/events/{id} [put]
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.EventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update calendar event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Calendar event updated successfully")
}

// DeleteEvent deletes a calendar event.
// @Summary Delete a calendar event by ID
// @Tags Calendar
// @Param id path string true "Event ID"
// @Success 204 "Deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/calendar/events/{id} [delete]
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete calendar event")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// SyncGoogle pulls the user's primary Google calendar into the store.
// @Summary Sync with Google Calendar
// @Description Upserts every event of the primary Google calendar in the window by its Google id.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body dto.SyncRequest true "Credentials and token"
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/calendar/sync/google [post]
func (handler *Handler) SyncGoogle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncGoogle")
	defer scope.End()

	req := dto.SyncRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate sync request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SyncGoogle(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync google calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
