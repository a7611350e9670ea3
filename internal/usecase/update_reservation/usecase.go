package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	facilityRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

const (
	operationUpdate = "update"

	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	checker         ConflictChecker
	txManager       TransactionManager
	notifier        ChangeNotifier
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	notifier ChangeNotifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		checker:         checker,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования
//
// Если передана хотя бы одна граница окна:
//   - окно пересобирается и проверяется (start < end)
//   - при активном итоговом статусе проверяется конфликт, исключая само бронирование
//   - стоимость пересчитывается по текущей ставке площадки
//
// Иначе поля стоимости не меняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	if req.ID <= 0 {
		uc.record(outcomeInvalid)
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	var previous, result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем бронирование с блокировкой строки
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		snapshot := *current
		previous = &snapshot

		// 2. Применяем поля запроса
		if err := applyText(req, current); err != nil {
			return err
		}
		if err := applyStatus(req, current); err != nil {
			return err
		}

		// 3. Изменение окна: проверка, конфликт, пересчет стоимости
		if req.timeChanged() {
			window, err := applyWindow(req, current)
			if err != nil {
				return err
			}

			if current.IsActive() {
				conflict, err := uc.checker.HasConflict(txCtx, current.FacilityID, window, &current.ID)
				if err != nil {
					return err
				}
				if conflict {
					return ErrTimeSlotConflict
				}
			}

			facility, err := uc.facilityRepo.GetByID(txCtx, current.FacilityID)
			if err != nil {
				if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
					return ErrFacilityNotFound
				}
				return err
			}
			current.ApplyPricing(domain.CalculateCost(window, facility.HourlyRate))
		}

		// 4. Сохраняем
		updated, err := uc.reservationRepo.Update(txCtx, current)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.classify(req, err)
	}

	eventType := events.EventReservationUpdated
	if result.Status == domain.StatusCancelled && previous.Status != domain.StatusCancelled {
		eventType = events.EventReservationCancelled
	}
	uc.notifier.ReservationChanged(ctx, eventType, previous, result)
	uc.record(outcomeSuccess)

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)
	return &Response{Reservation: result}, nil
}

// classify сводит ошибки транзакции к ошибкам use case
func (uc *UseCase) classify(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidTimeRange),
		errors.Is(err, ErrInvalidTransition):
		uc.logger.Warn("UpdateReservation: validation failed id=%d: %v", req.ID, err)
		uc.record(outcomeInvalid)
		return err

	case errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrFacilityNotFound):
		uc.logger.Warn("UpdateReservation: not found id=%d: %v", req.ID, err)
		uc.record(outcomeNotFound)
		return err

	case errors.Is(err, ErrTimeSlotConflict),
		errors.Is(err, reservationRepo.ErrOverlap),
		errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("UpdateReservation: time slot conflict id=%d: %v", req.ID, err)
		uc.record(outcomeConflict)
		return ErrTimeSlotConflict

	default:
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
		uc.record(outcomeError)
		return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordReservation(operationUpdate, outcome)
	}
}
