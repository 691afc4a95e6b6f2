package availability

import (
	"net/http"
	"strconv"

	"thorn/infras/otel"
	"thorn/internal/domains/availability/model"
	"thorn/internal/domains/availability/model/dto"
	"thorn/internal/domains/availability/service"
	"thorn/shared"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/validator"
	"thorn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailabilities)
		routerGroup.Post("/", handler.CreateAvailability)
		routerGroup.Patch("/{id}", handler.UpdateAvailability)
		routerGroup.Delete("/{id}", handler.DeleteAvailability)
	})
}

// GetAvailabilities retrieves the weekly working-hours windows.
// @Summary Get availability windows
// @Tags Availability
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param day_of_week query int false "Filter by weekday (0=Monday..6=Sunday)"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetAvailabilitiesResponse] "List of windows"
// @Failure 500 {object} response.Error
// @Router /v1/admin/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if dayOfWeek := r.URL.Query().Get(model.FieldDayOfWeek); dayOfWeek != "" {
		if day, err := strconv.Atoi(dayOfWeek); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    model.TableName,
			})
		}
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	availabilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availabilities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availabilities)
}

// CreateAvailability adds a working-hours window.
// @Summary Create an availability window
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Create Availability Request"
// @Success 201 {object} response.Data[dto.AvailabilityResponse] "Window created"
// @Failure 400 {object} response.Error
// @Router /v1/admin/availability [post]
// @Security BearerAuth
func (handler *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAvailability")
	defer scope.End()

	req := dto.CreateAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, availability)
}

// UpdateAvailability updates a window by ID.
// @Summary Update an availability window
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability ID"
// @Param request body dto.UpdateAvailabilityRequest true "Update Availability Request"
// @Success 200 {object} response.Message "Availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/availability/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}

// DeleteAvailability removes a window by ID.
// @Summary Delete an availability window
// @Tags Availability
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} response.Message "Availability deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/availability/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability deleted successfully")
}
