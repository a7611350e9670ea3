package create_reservation

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
	operationCreate = "create"

	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка конфликта и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: facility=%d, start=%s, end=%s",
		req.FacilityID, req.StartDateTime.Format("2006-01-02T15:04"), req.EndDateTime.Format("2006-01-02T15:04"))

	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.record(outcomeInvalid)
		return nil, err
	}

	// 2. Получаем площадку
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateReservation: facility id=%d not found", req.FacilityID)
			uc.record(outcomeNotFound)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateReservation: failed to get facility id=%d: %v", req.FacilityID, err)
		uc.record(outcomeError)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !facility.IsBookable() {
		uc.logger.Warn("CreateReservation: facility id=%d is inactive", req.FacilityID)
		uc.record(outcomeNotFound)
		return nil, ErrFacilityNotFound
	}

	var result *domain.Reservation

	// 3. Проверка конфликта и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокирующее чтение активных бронирований площадки
		conflict, err := uc.checker.HasConflict(txCtx, req.FacilityID, window, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrTimeSlotConflict
		}

		// 3.2. Стоимость по текущей ставке площадки
		reservation := &domain.Reservation{
			FacilityID:       req.FacilityID,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			EventTitle:       req.EventTitle,
			EventDescription: req.EventDescription,
			StartDateTime:    window.Start,
			EndDateTime:      window.End,
			Status:           domain.StatusPending,
			Notes:            req.Notes,
		}
		reservation.ApplyPricing(domain.CalculateCost(window, facility.HourlyRate))

		// 3.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.classify(req, err)
	}

	uc.notifier.ReservationChanged(ctx, events.EventReservationCreated, nil, result)
	uc.record(outcomeSuccess)

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, facility=%d", result.ID, result.FacilityID)
	return &Response{Reservation: result}, nil
}

// classify сводит ошибки транзакции к ошибкам use case
// Отказ БД из-за пересечения или сериализации означает конкурентное бронирование того же окна
func (uc *UseCase) classify(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrTimeSlotConflict),
		errors.Is(err, reservationRepo.ErrOverlap),
		errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("CreateReservation: time slot conflict facility=%d: %v", req.FacilityID, err)
		uc.record(outcomeConflict)
		return ErrTimeSlotConflict
	default:
		uc.logger.Error("CreateReservation: failed to create reservation facility=%d: %v", req.FacilityID, err)
		uc.record(outcomeError)
		return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordReservation(operationCreate, outcome)
	}
}
