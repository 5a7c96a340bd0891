package note

import (
	"net/http"
	"organise/infras/otel"
	"organise/internal/domains/note/model"
	"organise/internal/domains/note/model/dto"
	"organise/internal/domains/note/service"
	"organise/shared"
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/validator"
	"organise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamTag = "tag"

type Handler struct {
	service service.Note
	otel    otel.Otel
}

func New(service service.Note, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateNote)
		routerGroup.Get("/", handler.GetNotes)
		routerGroup.Get("/{id}", handler.GetNoteByID)
		routerGroup.Put("/{id}", handler.UpdateNote)
		routerGroup.Delete("/{id}", handler.DeleteNote)
		routerGroup.Post("/{id}/archive", handler.ArchiveNote)
		routerGroup.Post("/{id}/unarchive", handler.UnarchiveNote)
	})
}

// CreateNote handles the creation of a new note.
// @Summary Create a new note
// @Tags Note
// @Accept json
// @Produce json
// @Param request body dto.NoteRequest true "Create Note Request"
// @Success 201 {object} dto.NoteResponse "Created note"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notes [post]
func (handler *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNote")
	defer scope.End()

	req := dto.NoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	note, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, note)
}

// GetNotes retrieves all notes.
// @Summary Get all notes
// @Description Retrieve all notes in storage order, with optional filtering and pagination.
// @Tags Note
// @Produce json
// @Param title query string false "Filter by title (case-insensitive contains)"
// @Param tag query string false "Only notes carrying this tag"
// @Param is_archived query boolean false "Filter by archive status"
// @Param page query int false "Page number, requires limit"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort field" Enums(title, is_archived, created_at, updated_at)
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} dto.NoteResponse "List of notes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notes [get]
func (handler *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	if err := queryParams.AllowSort(model.SortableFields...); err != nil {
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if title := query.Get(model.FieldTitle); title != "" {
		filterGroup.Add(gDto.Filter{Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: title})
	}

	if tag := query.Get(queryParamTag); tag != "" {
		filterGroup.Add(gDto.Filter{Field: model.FieldTags, Operator: gDto.FilterOperatorEq, Value: tag})
	}

	if archived := shared.ConvertStringToBool(query.Get(model.FieldIsArchived)); archived != nil {
		filterGroup.Add(gDto.Filter{Field: model.FieldIsArchived, Operator: gDto.FilterOperatorEq, Value: *archived})
	}

	notes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, notes)
}

// GetNoteByID retrieves a note by its ID.
// @Summary Get a note by ID
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/notes/{id} [get]
func (handler *Handler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNoteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	note, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get note by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, note)
}

// UpdateNote replaces an existing note.
// @Summary Update a note by ID
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body dto.NoteRequest true "Update Note Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/notes/{id} [put]
func (handler *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.NoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Note updated successfully")
}

// DeleteNote deletes a note.
// @Summary Delete a note by ID
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/notes/{id} [delete]
func (handler *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Note deleted successfully")
}

// ArchiveNote archives a note. Archiving is idempotent.
// @Summary Archive a note
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/notes/{id}/archive [post]
func (handler *Handler) ArchiveNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Archive(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to archive note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Note archived successfully")
}

// UnarchiveNote restores an archived note.
// @Summary Unarchive a note
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/notes/{id}/unarchive [post]
func (handler *Handler) UnarchiveNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnarchiveNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Unarchive(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to unarchive note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Note unarchived successfully")
}
