package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"thorn/config"
	"thorn/infras/kafka"
	"thorn/infras/otel"
	availabilityRepository "thorn/internal/domains/availability/repository"
	blockedtimeRepository "thorn/internal/domains/blockedtime/repository"
	"thorn/internal/domains/booking/model"
	"thorn/internal/domains/booking/model/dto"
	"thorn/internal/domains/booking/repository"
	catalogModel "thorn/internal/domains/catalog/model"
	catalogRepository "thorn/internal/domains/catalog/repository"
	notificationService "thorn/internal/domains/notification/service"
	settingsModel "thorn/internal/domains/settings/model"
	settingsService "thorn/internal/domains/settings/service"
	"thorn/shared"
	"thorn/shared/cache"
	"thorn/shared/clock"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"
	"thorn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"

	eventBookingCreated   = "booking.created"
	eventBookingCancelled = "booking.cancelled"
	eventBookingMoved     = "booking.moved"

	followupDaysBack     = 42
	followupCatchupDays  = 3
	defaultReminderHours = 24

	systemUser = "system"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	NoShow(ctx context.Context, id string) error
	UndoNoShow(ctx context.Context, id string) error
	Move(ctx context.Context, req dto.MoveBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	AvailableSlots(ctx context.Context, req dto.SlotsRequest) (dto.SlotsResponse, error)
	AutoCompletePast(ctx context.Context) (int, error)
	SendDueReminders(ctx context.Context) (int, error)
	SendDueFollowups(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo             repository.Booking
	catalogRepo      catalogRepository.Catalog
	availabilityRepo availabilityRepository.Availability
	blockedRepo      blockedtimeRepository.BlockedTime
	notification     notificationService.Notification
	settings         settingsService.Settings
	events           kafka.Client
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.Booking,
	catalogRepo catalogRepository.Catalog,
	availabilityRepo availabilityRepository.Availability,
	blockedRepo blockedtimeRepository.BlockedTime,
	notification notificationService.Notification,
	settings settingsService.Settings,
	events kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:             repo,
		catalogRepo:      catalogRepo,
		availabilityRepo: availabilityRepo,
		blockedRepo:      blockedRepo,
		notification:     notification,
		settings:         settings,
		events:           events,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

// dateOnly truncates to the calendar day in the application timezone.
func dateOnly(t time.Time) time.Time {
	t = timezone.ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// withinWindow checks the bookable range: today through today plus the
// configured window.
func (s *serviceImpl) withinWindow(date time.Time) bool {
	today := dateOnly(timezone.Now())
	day := dateOnly(date)

	if day.Before(today) {
		return false
	}

	return !day.After(today.AddDate(0, 0, s.cfg.App.BookingWindowDays))
}

func (s *serviceImpl) activeService(ctx context.Context, serviceID string) (catalogModel.Service, error) {
	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return service, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return service, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if !service.Active {
		return service, failure.BadRequestFromString("service is not bookable") // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Events.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: booking.ID, Value: dto.NewBookingEvent(event, booking)}
		if err := s.events.SendMessages(c, s.cfg.Events.Topic, message); err != nil {
			log.Error().Err(err).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

// dispatchConfirmation sends the confirmation email off the request path and
// records the send on success.
func (s *serviceImpl) dispatchConfirmation(ctx context.Context, booking model.Booking, serviceName string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notification.SendConfirmation(c, booking, serviceName); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send confirmation email")

			return
		}

		updatedFields := map[string]any{
			model.FieldConfirmationSent: true,
			constant.FieldModifiedAt:    timezone.Now(),
			constant.FieldModifiedBy:    systemUser,
		}

		if err := s.repo.Update(c, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to record confirmation send")
		}
	}()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.activeService(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("booking_date is not a valid date") // nolint:wrapcheck
	}

	if !s.withinWindow(date) {
		return res, failure.BadRequestFromString("booking_date is outside the booking window") // nolint:wrapcheck
	}

	start, err := clock.ToMinutes(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString("start_time is not a valid time") // nolint:wrapcheck
	}

	available, reason, err := s.checkSlot(ctx, service.DurationMinutes, date, start, constant.Empty)
	if err != nil {
		return res, err
	}

	if !available {
		return res, failure.Conflict(reason) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	booking := req.ToModel(user)
	booking.EndTime = clock.FromMinutes(start + service.DurationMinutes)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.invalidate(ctx)
	s.dispatchConfirmation(ctx, booking, service.Name)
	s.publish(ctx, eventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// setStatus transitions a booking, guarding the allowed source statuses.
func (s *serviceImpl) setStatus(ctx context.Context, id, target string, extraFields map[string]any, from ...string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return booking, err
	}

	allowed := false

	for _, status := range from {
		if booking.Status == status {
			allowed = true

			break
		}
	}

	if !allowed {
		return booking, failure.Conflict(fmt.Sprintf("booking is %s, cannot mark it %s", booking.Status, target)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	for field, value := range extraFields {
		updatedFields[field] = value
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.invalidate(ctx)

	booking.Status = target

	return booking, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.setStatus(ctx, id, constant.BookingStatusCancelled, nil, constant.BookingStatusConfirmed)
	if err != nil {
		return err
	}

	s.publish(ctx, eventBookingCancelled, booking)

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.setStatus(ctx, id, constant.BookingStatusCompleted, nil, constant.BookingStatusConfirmed)

	return err
}

func (s *serviceImpl) NoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	extraFields := map[string]any{model.FieldNoShowAt: timezone.Now()}

	_, err = s.setStatus(ctx, id, constant.BookingStatusNoShow, extraFields,
		constant.BookingStatusConfirmed, constant.BookingStatusCompleted)

	return err
}

func (s *serviceImpl) UndoNoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UndoNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	extraFields := map[string]any{model.FieldNoShowAt: nil}

	_, err = s.setStatus(ctx, id, constant.BookingStatusConfirmed, extraFields, constant.BookingStatusNoShow)

	return err
}

// Move reschedules a confirmed booking. The slot check ignores the booking
// itself so it can shift within its own window.
func (s *serviceImpl) Move(ctx context.Context, req dto.MoveBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Move")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusConfirmed {
		return failure.Conflict("only confirmed bookings can be moved") // nolint:wrapcheck
	}

	service, err := s.activeService(ctx, booking.ServiceID)
	if err != nil {
		return err
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return failure.BadRequestFromString("booking_date is not a valid date") // nolint:wrapcheck
	}

	if !s.withinWindow(date) {
		return failure.BadRequestFromString("booking_date is outside the booking window") // nolint:wrapcheck
	}

	start, err := clock.ToMinutes(req.StartTime)
	if err != nil {
		return failure.BadRequestFromString("start_time is not a valid time") // nolint:wrapcheck
	}

	available, reason, err := s.checkSlot(ctx, service.DurationMinutes, date, start, booking.ID)
	if err != nil {
		return err
	}

	if !available {
		return failure.Conflict(reason) // nolint:wrapcheck
	}

	oldDate := booking.BookingDate.Format(constant.DateOnlyFormat)
	oldStart := booking.StartTime

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldBookingDate:   date.Format(constant.DateOnlyFormat),
		model.FieldStartTime:     req.StartTime,
		model.FieldEndTime:       clock.FromMinutes(start + service.DurationMinutes),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to move booking")

		return fmt.Errorf("failed to move booking: %w", err)
	}

	s.invalidate(ctx)

	booking.BookingDate = date
	booking.StartTime = req.StartTime
	booking.EndTime = clock.FromMinutes(start + service.DurationMinutes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notification.SendReschedule(c, booking, service.Name, oldDate, oldStart); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to send reschedule email")
		}
	}()

	s.publish(ctx, eventBookingMoved, booking)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) AvailableSlots(ctx context.Context, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.activeService(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date is not a valid date") // nolint:wrapcheck
	}

	res.Date = req.Date
	res.Slots = []string{}

	if !s.withinWindow(date) {
		return res, nil
	}

	starts, err := s.availableStarts(ctx, service.DurationMinutes, date)
	if err != nil {
		return res, err
	}

	for _, start := range starts {
		res.Slots = append(res.Slots, clock.FromMinutes(start))
	}

	return res, nil
}

// AutoCompletePast marks confirmed bookings whose end has passed as
// completed. Returns the number of bookings transitioned.
func (s *serviceImpl) AutoCompletePast(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AutoCompletePast")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	today := dateOnly(now)
	nowMinutes := now.Hour()*60 + now.Minute()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    today.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get past bookings")

		return 0, fmt.Errorf("failed to get past bookings: %w", err)
	}

	for _, booking := range bookings {
		day := dateOnly(booking.BookingDate)

		if day.Equal(today) {
			end, errClock := clock.ToMinutes(booking.EndTime)
			if errClock != nil || end > nowMinutes {
				continue
			}
		}

		updatedFields := map[string]any{
			model.FieldStatus:        constant.BookingStatusCompleted,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: systemUser,
		}

		if errUpdate := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); errUpdate != nil {
			log.Error().Err(errUpdate).Str("booking_id", booking.ID).Msg("failed to auto-complete booking")

			continue
		}

		count++
	}

	if count > 0 {
		s.invalidate(ctx)
	}

	return count, nil
}

// serviceNames resolves the service name for each booking, one lookup per
// distinct service.
func (s *serviceImpl) serviceNames(ctx context.Context, bookings []model.Booking) map[string]string {
	names := map[string]string{}

	for _, booking := range bookings {
		if _, done := names[booking.ServiceID]; done {
			continue
		}

		service, err := s.catalogRepo.Get(ctx, shared.FilterByID(booking.ServiceID, catalogModel.FieldID, catalogModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("service_id", booking.ServiceID).Msg("failed to resolve service name")

			names[booking.ServiceID] = constant.Empty

			continue
		}

		names[booking.ServiceID] = service.Name
	}

	return names
}

// SendDueReminders emails confirmed bookings starting within the configured
// reminder window that have not been reminded yet.
func (s *serviceImpl) SendDueReminders(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendDueReminders")
	defer scope.End()
	defer scope.TraceIfError(err)

	hours := s.settings.Int(ctx, settingsModel.KeyReminderHoursBefore)
	if hours <= 0 {
		hours = defaultReminderHours
	}

	now := timezone.Now()
	today := dateOnly(now)
	horizon := now.Add(time.Duration(hours) * time.Hour)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReminderSent,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldBookingDate,
				Value:    today.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldBookingDate,
				Value:    dateOnly(horizon).Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings due a reminder")

		return 0, fmt.Errorf("failed to get bookings due a reminder: %w", err)
	}

	names := s.serviceNames(ctx, bookings)

	for _, booking := range bookings {
		start, errClock := clock.ToMinutes(booking.StartTime)
		if errClock != nil {
			continue
		}

		day := dateOnly(booking.BookingDate)
		startsAt := day.Add(time.Duration(start) * time.Minute)

		if startsAt.Before(now) || startsAt.After(horizon) {
			continue
		}

		if errSend := s.notification.SendReminder(ctx, booking, names[booking.ServiceID]); errSend != nil {
			log.Error().Err(errSend).Str("booking_id", booking.ID).Msg("failed to send reminder email")

			continue
		}

		updatedFields := map[string]any{
			model.FieldReminderSent:  true,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: systemUser,
		}

		if errUpdate := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); errUpdate != nil {
			log.Error().Err(errUpdate).Str("booking_id", booking.ID).Msg("failed to record reminder send")

			continue
		}

		count++
	}

	return count, nil
}

// SendDueFollowups emails completed bookings around followupDaysBack days
// old. The catch-up window tolerates missed runs.
func (s *serviceImpl) SendDueFollowups(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendDueFollowups")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := dateOnly(timezone.Now())
	newest := today.AddDate(0, 0, -followupDaysBack)
	oldest := newest.AddDate(0, 0, -followupCatchupDays)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusCompleted,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldFollowupSent,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldBookingDate,
				Value:    oldest.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldBookingDate,
				Value:    newest.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings due a follow-up")

		return 0, fmt.Errorf("failed to get bookings due a follow-up: %w", err)
	}

	names := s.serviceNames(ctx, bookings)

	for _, booking := range bookings {
		if errSend := s.notification.SendFollowup(ctx, booking, names[booking.ServiceID]); errSend != nil {
			log.Error().Err(errSend).Str("booking_id", booking.ID).Msg("failed to send follow-up email")

			continue
		}

		updatedFields := map[string]any{
			model.FieldFollowupSent:  true,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: systemUser,
		}

		if errUpdate := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); errUpdate != nil {
			log.Error().Err(errUpdate).Str("booking_id", booking.ID).Msg("failed to record follow-up send")

			continue
		}

		count++
	}

	return count, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}
