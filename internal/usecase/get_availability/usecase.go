package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/facility"
)

// UseCase use case для получения доступных слотов площадки на дату
type UseCase struct {
	facilityRepo    FacilityRepository
	hours           HoursResolver
	reservationRepo ReservationRepository
	cache           SnapshotCache
	params          SlotParams
	loc             *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil, тогда снимок всегда читается из БД
func NewUseCase(
	facilityRepo FacilityRepository,
	hours HoursResolver,
	reservationRepo ReservationRepository,
	cache SnapshotCache,
	params SlotParams,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo:    facilityRepo,
		hours:           hours,
		reservationRepo: reservationRepo,
		cache:           cache,
		params:          params,
		loc:             loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	day := dayWindow(req.Date, uc.loc)
	date := day.Start.Format(domain.DateFormat)

	uc.logger.Info("GetAvailability: facility=%d, date=%s", req.FacilityID, date)

	// 2. Получаем площадку
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsBookable() {
		uc.logger.Warn("GetAvailability: facility id=%d is inactive", req.FacilityID)
		return nil, ErrFacilityNotFound
	}

	// 3. Часы работы на день недели
	weekday := day.Start.Weekday()
	hours, err := uc.hours.Resolve(ctx, req.FacilityID, weekday)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve hours facility=%d, day=%d: %v", req.FacilityID, weekday, err)
		return nil, fmt.Errorf("%w: failed to resolve operating hours: %v", ErrInternal, err)
	}

	resp := &Response{
		Facility:       facility,
		Date:           day.Start,
		DayOfWeek:      weekday,
		Available:      hours.IsAvailable,
		OperatingHours: hours,
		Slots:          []Slot{},
	}

	// 4. Закрытый день: сетка пустая
	if !hours.IsAvailable {
		uc.logger.Info("GetAvailability: facility=%d is closed on %s", req.FacilityID, date)
		resp.Message = MsgFacilityClosed
		return resp, nil
	}

	// 5. Снимок активных бронирований, пересекающих сутки
	reserved, err := uc.snapshot(ctx, req.FacilityID, date, day)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load reservations facility=%d, date=%s: %v", req.FacilityID, date, err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	// 6. Генерируем сетку
	slots := GenerateSlots(hours, day.Start, uc.loc, reserved, uc.timeProvider.Now(), uc.params)

	resp.Slots = toSlots(slots, uc.loc)
	resp.ExistingReservations = len(reserved)

	uc.logger.Info("GetAvailability: generated %d slots for facility=%d, date=%s", len(slots), req.FacilityID, date)
	return resp, nil
}

// snapshot читает интервалы активных бронирований из кэша или из БД
// Ошибки кэша не прерывают запрос
func (uc *UseCase) snapshot(ctx context.Context, facilityID int64, date string, day domain.Interval) ([]domain.Interval, error) {
	if uc.cache != nil {
		intervals, ok, err := uc.cache.Get(ctx, facilityID, date)
		if err != nil {
			uc.logger.Warn("GetAvailability: cache read failed facility=%d, date=%s: %v", facilityID, date, err)
		} else if ok {
			return intervals, nil
		}
	}

	reservations, err := uc.reservationRepo.FindActive(ctx, facilityID, &day, nil)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, facilityID, date, reservations); err != nil {
			uc.logger.Warn("GetAvailability: cache write failed facility=%d, date=%s: %v", facilityID, date, err)
		}
	}

	intervals := make([]domain.Interval, 0, len(reservations))
	for _, r := range reservations {
		if r.IsActive() {
			intervals = append(intervals, r.Interval())
		}
	}
	return intervals, nil
}
