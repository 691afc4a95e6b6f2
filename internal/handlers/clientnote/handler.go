package clientnote

import (
	"net/http"

	"thorn/infras/otel"
	"thorn/internal/domains/clientnote/model"
	"thorn/internal/domains/clientnote/model/dto"
	"thorn/internal/domains/clientnote/service"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/validator"
	"thorn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ClientNote
	otel    otel.Otel
}

func New(service service.ClientNote, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/client-notes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClientNotes)
		routerGroup.Post("/", handler.CreateClientNote)
		routerGroup.Get("/{id}", handler.GetClientNoteByID)
		routerGroup.Patch("/{id}", handler.UpdateClientNote)
		routerGroup.Delete("/{id}", handler.DeleteClientNote)
	})
}

// GetClientNotes retrieves notes, optionally for a single client email.
// @Summary Get client notes
// @Tags ClientNote
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param client_email query string false "Filter by client email"
// @Success 200 {object} response.Data[dto.GetClientNotesResponse] "List of notes"
// @Failure 500 {object} response.Error
// @Router /v1/admin/client-notes [get]
// @Security BearerAuth
func (handler *Handler) GetClientNotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientNotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	clientEmail := r.URL.Query().Get(model.FieldClientEmail)

	notes, err := handler.service.GetAll(ctx, queryParams, clientEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client notes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, notes)
}

// CreateClientNote pins a note to a client email.
// @Summary Create a client note
// @Tags ClientNote
// @Accept json
// @Produce json
// @Param request body dto.CreateClientNoteRequest true "Create Client Note Request"
// @Success 201 {object} response.Data[dto.ClientNoteResponse] "Note created"
// @Failure 400 {object} response.Error
// @Router /v1/admin/client-notes [post]
// @Security BearerAuth
func (handler *Handler) CreateClientNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClientNote")
	defer scope.End()

	req := dto.CreateClientNoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	note, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, note)
}

// GetClientNoteByID retrieves a note by its ID.
// @Summary Get a client note by ID
// @Tags ClientNote
// @Produce json
// @Param id path string true "Client Note ID"
// @Success 200 {object} response.Data[dto.ClientNoteResponse] "Note details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/client-notes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientNoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientNoteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	note, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client note by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, note)
}

// UpdateClientNote updates a note by ID.
// @Summary Update a client note
// @Tags ClientNote
// @Accept json
// @Produce json
// @Param id path string true "Client Note ID"
// @Param request body dto.UpdateClientNoteRequest true "Update Client Note Request"
// @Success 200 {object} response.Message "Client note updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/client-notes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClientNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClientNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientNoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Client note updated successfully")
}

// DeleteClientNote removes a note by ID.
// @Summary Delete a client note
// @Tags ClientNote
// @Produce json
// @Param id path string true "Client Note ID"
// @Success 200 {object} response.Message "Client note deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/client-notes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClientNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClientNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client note")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Client note deleted successfully")
}
