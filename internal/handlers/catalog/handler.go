package catalog

import (
	"io"
	"net/http"

	"thorn/infras/otel"
	"thorn/internal/domains/catalog/model"
	"thorn/internal/domains/catalog/model/dto"
	"thorn/internal/domains/catalog/service"
	"thorn/shared"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"
	"thorn/shared/validator"
	"thorn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Post("/import/preview", handler.ImportPreview)
		routerGroup.Post("/import", handler.ImportConfirm)
		routerGroup.Get("/import/sample", handler.ImportSample)
		routerGroup.Patch("/reorder", handler.ReorderServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// readImportFile pulls the uploaded CSV out of the multipart form.
func readImportFile(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, constant.Empty, failure.BadRequestFromString("invalid multipart form") // nolint:wrapcheck
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		return nil, constant.Empty, failure.BadRequestFromString("missing file upload") // nolint:wrapcheck
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, constant.Empty, failure.BadRequestFromString("failed to read file upload") // nolint:wrapcheck
	}

	return data, header.Filename, nil
}

// GetServices retrieves services with optional filtering.
// @Summary Get all services
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category_id query string false "Filter by category"
// @Param active query string false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 500 {object} response.Error
// @Router /v1/admin/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if categoryID := r.URL.Query().Get(model.FieldCategoryID); categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}

// CreateService creates a new service.
// @Summary Create a service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Message "Service created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Service created successfully")
}

// ReorderServices rewrites the display order from an ordered ID list.
// @Summary Reorder services
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.ReorderServicesRequest true "Reorder Request"
// @Success 200 {object} response.Message "Services reordered successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/services/reorder [patch]
// @Security BearerAuth
func (handler *Handler) ReorderServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderServices")
	defer scope.End()

	req := dto.ReorderServicesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder services")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Services reordered successfully")
}

// GetServiceByID retrieves a service by ID.
// @Summary Get a service by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service details"
// @Failure 404 {object} response.Error
// @Router /v1/admin/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateService updates a service by ID.
// @Summary Update a service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a service by ID.
// @Summary Delete a service
// @Tags Catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// ImportPreview validates an uploaded CSV and reports per-row errors.
// @Summary Preview a service import
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} response.Data[dto.ImportPreviewResponse] "Preview rows"
// @Failure 400 {object} response.Error
// @Router /v1/admin/services/import/preview [post]
// @Security BearerAuth
func (handler *Handler) ImportPreview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportPreview")
	defer scope.End()

	data, _, err := readImportFile(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read import file")

		response.WithError(w, err)

		return
	}

	preview, err := handler.service.ImportPreview(ctx, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview import")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, preview)
}

// ImportConfirm imports the valid rows of an uploaded CSV.
// @Summary Confirm a service import
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} response.Data[dto.ImportConfirmResponse] "Import result"
// @Failure 400 {object} response.Error
// @Router /v1/admin/services/import [post]
// @Security BearerAuth
func (handler *Handler) ImportConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportConfirm")
	defer scope.End()

	data, fileName, err := readImportFile(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read import file")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.ImportConfirm(ctx, data, fileName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm import")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Services imported successfully by user " + user)

	response.WithJSON(w, http.StatusOK, result)
}

// ImportSample serves a CSV template for the import format.
// @Summary Download a sample import CSV
// @Tags Catalog
// @Produce text/csv
// @Success 200 {string} string "CSV sample"
// @Router /v1/admin/services/import/sample [get]
// @Security BearerAuth
func (handler *Handler) ImportSample(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportSample")
	defer scope.End()

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="services-import-sample.csv"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(service.SampleCSV()); err != nil {
		log.Error().Err(err).Msg("failed to write sample csv")
	}
}
