package blockedtime

import (
	"net/http"

	"thorn/infras/otel"
	"thorn/internal/domains/blockedtime/model"
	"thorn/internal/domains/blockedtime/model/dto"
	"thorn/internal/domains/blockedtime/service"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/validator"
	"thorn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BlockedTime
	otel    otel.Otel
}

func New(service service.BlockedTime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blocked-times", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBlockedTimes)
		routerGroup.Post("/", handler.CreateBlockedTime)
		routerGroup.Delete("/{id}", handler.DeleteBlockedTime)
	})
}

// GetBlockedTimes retrieves blocks with optional date filtering.
// @Summary Get blocked times
// @Tags BlockedTime
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBlockedTimesResponse] "List of blocks"
// @Failure 500 {object} response.Error
// @Router /v1/admin/blocked-times [get]
// @Security BearerAuth
func (handler *Handler) GetBlockedTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedTimes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date := r.URL.Query().Get(model.FieldDate); date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	blocks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked times")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, blocks)
}

// CreateBlockedTime adds a one-off or recurring block.
// @Summary Create a blocked time
// @Tags BlockedTime
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedTimeRequest true "Create Blocked Time Request"
// @Success 201 {object} response.Data[dto.BlockedTimeResponse] "Block created"
// @Failure 400 {object} response.Error
// @Router /v1/admin/blocked-times [post]
// @Security BearerAuth
func (handler *Handler) CreateBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlockedTime")
	defer scope.End()

	req := dto.CreateBlockedTimeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	block, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blocked time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, block)
}

// DeleteBlockedTime removes a block by ID.
// @Summary Delete a blocked time
// @Tags BlockedTime
// @Produce json
// @Param id path string true "Blocked Time ID"
// @Success 200 {object} response.Message "Blocked time deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/blocked-times/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockedTime")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked time")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blocked time deleted successfully")
}
