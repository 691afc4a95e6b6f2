package service

import (
	"context"
	"fmt"
	"time"

	availabilityModel "thorn/internal/domains/availability/model"
	blockedModel "thorn/internal/domains/blockedtime/model"
	"thorn/internal/domains/booking/model"
	"thorn/shared/clock"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"

	"github.com/rs/zerolog/log"
)

// slotStepMinutes is the grid candidate slots are generated on.
const slotStepMinutes = 30

// weekdayOf maps time.Weekday onto the schema convention 0=Monday..6=Sunday.
func weekdayOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// loadBlocks returns the blocks in effect on a date: one-off blocks on that
// date plus recurring blocks on its weekday. ArgNames are set explicitly so
// the two recurring_weekly filters do not collide in the named args.
func (s *serviceImpl) loadBlocks(ctx context.Context, date time.Time) ([]blockedModel.BlockedTime, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{
						ArgName:  "block_date",
						Field:    blockedModel.FieldDate,
						Value:    date.Format(constant.DateOnlyFormat),
						Operator: gDto.FilterOperatorEq,
						Table:    blockedModel.TableName,
					},
					gDto.Filter{
						ArgName:  "one_off",
						Field:    blockedModel.FieldRecurringWeekly,
						Value:    false,
						Operator: gDto.FilterOperatorEq,
						Table:    blockedModel.TableName,
					},
				},
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{
						ArgName:  "recurring",
						Field:    blockedModel.FieldRecurringWeekly,
						Value:    true,
						Operator: gDto.FilterOperatorEq,
						Table:    blockedModel.TableName,
					},
					gDto.Filter{
						ArgName:  "block_weekday",
						Field:    blockedModel.FieldRecurringDayOfWeek,
						Value:    weekdayOf(date),
						Operator: gDto.FilterOperatorEq,
						Table:    blockedModel.TableName,
					},
				},
			},
		},
	}

	blocks, err := s.blockedRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked times: %w", err)
	}

	return blocks, nil
}

// loadWindows returns the active availability windows for the date's weekday,
// earliest first.
func (s *serviceImpl) loadWindows(ctx context.Context, date time.Time) ([]availabilityModel.Availability, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    availabilityModel.FieldDayOfWeek,
				Value:    weekdayOf(date),
				Operator: gDto.FilterOperatorEq,
				Table:    availabilityModel.TableName,
			},
			gDto.Filter{
				Field:    availabilityModel.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    availabilityModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: availabilityModel.FieldStartTime, SortDir: gDto.SortDirAsc}

	windows, err := s.availabilityRepo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get availabilities: %w", err)
	}

	return windows, nil
}

// loadConfirmed returns the confirmed bookings on a date.
func (s *serviceImpl) loadConfirmed(ctx context.Context, date time.Time) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    date.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func dayFullyBlocked(blocks []blockedModel.BlockedTime) bool {
	for _, block := range blocks {
		if block.AllDay {
			return true
		}
	}

	return false
}

// slotBlocked reports whether [start,end) overlaps any timed block. Blocks
// with missing times are ignored rather than treated as all-day.
func slotBlocked(start, end int, blocks []blockedModel.BlockedTime) bool {
	for _, block := range blocks {
		if block.AllDay || block.StartTime == nil || block.EndTime == nil {
			continue
		}

		blockStart, err := clock.ToMinutes(*block.StartTime)
		if err != nil {
			log.Warn().Str("id", block.ID).Msg("blocked time has an unparseable start_time")

			continue
		}

		blockEnd, err := clock.ToMinutes(*block.EndTime)
		if err != nil {
			log.Warn().Str("id", block.ID).Msg("blocked time has an unparseable end_time")

			continue
		}

		if clock.Overlaps(start, end, blockStart, blockEnd) {
			return true
		}
	}

	return false
}

// slotTaken reports whether [start,end) overlaps a confirmed booking.
// ignoreID exempts the booking being moved from conflicting with itself.
func slotTaken(start, end int, bookings []model.Booking, ignoreID string) bool {
	for _, booking := range bookings {
		if booking.ID == ignoreID {
			continue
		}

		bookingStart, err := clock.ToMinutes(booking.StartTime)
		if err != nil {
			continue
		}

		bookingEnd, err := clock.ToMinutes(booking.EndTime)
		if err != nil {
			continue
		}

		if clock.Overlaps(start, end, bookingStart, bookingEnd) {
			return true
		}
	}

	return false
}

// availableStarts computes the bookable start minutes for a service duration
// on a date. Candidates run on the slot grid inside each availability window
// while the full duration still fits.
func (s *serviceImpl) availableStarts(ctx context.Context, durationMinutes int, date time.Time) ([]int, error) {
	blocks, err := s.loadBlocks(ctx, date)
	if err != nil {
		return nil, err
	}

	if dayFullyBlocked(blocks) {
		return []int{}, nil
	}

	windows, err := s.loadWindows(ctx, date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.loadConfirmed(ctx, date)
	if err != nil {
		return nil, err
	}

	starts := []int{}

	for _, window := range windows {
		windowStart, err := clock.ToMinutes(window.StartTime)
		if err != nil {
			log.Warn().Str("id", window.ID).Msg("availability has an unparseable start_time")

			continue
		}

		windowEnd, err := clock.ToMinutes(window.EndTime)
		if err != nil {
			log.Warn().Str("id", window.ID).Msg("availability has an unparseable end_time")

			continue
		}

		for start := windowStart; start+durationMinutes <= windowEnd; start += slotStepMinutes {
			end := start + durationMinutes

			if slotBlocked(start, end, blocks) || slotTaken(start, end, bookings, constant.Empty) {
				continue
			}

			starts = append(starts, start)
		}
	}

	return starts, nil
}

// checkSlot verifies that [start, start+duration) is bookable on the date:
// inside an active window, clear of blocks, and clear of other confirmed
// bookings. Returns false with a reason when it is not.
func (s *serviceImpl) checkSlot(ctx context.Context, durationMinutes int, date time.Time, start int, ignoreBookingID string) (bool, string, error) {
	end := start + durationMinutes

	blocks, err := s.loadBlocks(ctx, date)
	if err != nil {
		return false, constant.Empty, err
	}

	if dayFullyBlocked(blocks) || slotBlocked(start, end, blocks) {
		return false, "the requested time is blocked", nil
	}

	windows, err := s.loadWindows(ctx, date)
	if err != nil {
		return false, constant.Empty, err
	}

	inWindow := false

	for _, window := range windows {
		windowStart, errStart := clock.ToMinutes(window.StartTime)
		windowEnd, errEnd := clock.ToMinutes(window.EndTime)

		if errStart != nil || errEnd != nil {
			continue
		}

		if start >= windowStart && end <= windowEnd {
			inWindow = true

			break
		}
	}

	if !inWindow {
		return false, "the requested time is outside working hours", nil
	}

	bookings, err := s.loadConfirmed(ctx, date)
	if err != nil {
		return false, constant.Empty, err
	}

	if slotTaken(start, end, bookings, ignoreBookingID) {
		return false, "the requested time is already booked", nil
	}

	return true, constant.Empty, nil
}
