package settings

import (
	"net/http"

	"thorn/infras/otel"
	notificationService "thorn/internal/domains/notification/service"
	"thorn/internal/domains/settings/model/dto"
	"thorn/internal/domains/settings/service"
	"thorn/shared/constant"
	"thorn/shared/validator"
	"thorn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Settings
	notification notificationService.Notification
	otel         otel.Otel
}

func New(service service.Settings, notification notificationService.Notification, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		notification: notification,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Patch("/", handler.UpdateSettings)
		routerGroup.Post("/test-email", handler.SendTestEmail)
	})
}

// GetSettings returns every setting with secrets masked.
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.GetSettingsResponse] "Settings"
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings upserts the given settings keys.
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Router /v1/admin/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}

// SendTestEmail delivers a test message using the stored SMTP settings.
// @Summary Send a test email
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.TestEmailRequest true "Test Email Request"
// @Success 200 {object} response.Message "Test email sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/test-email [post]
// @Security BearerAuth
func (handler *Handler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendTestEmail")
	defer scope.End()

	req := dto.TestEmailRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.notification.SendTest(ctx, req.Recipient); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send test email")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Test email sent successfully")
}
