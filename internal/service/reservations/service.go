package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
)

const (
	operationCancel = "cancel"

	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	repo     ReservationRepository
	notifier ChangeNotifier
	metrics  MetricsRecorder
	loc      *time.Location
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
// loc используется для трактовки дат фильтра списка, metrics может быть nil
func NewService(
	repo ReservationRepository,
	notifier ChangeNotifier,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		loc:      loc,
		logger:   logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List возвращает бронирования по фильтрам, упорядоченные по началу
//
// Примеры использования:
//   - все бронирования площадки: {FacilityID: 1}
//   - бронирования за период: {StartDate: "2026-10-01", EndDate: "2026-10-31"}
//   - отмененные: {Status: "cancelled"}
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter, err := s.toFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Cancel переводит бронирование в статус cancelled
// Повторная отмена возвращает бронирование без изменений
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOrInternal("Cancel", id, err)
	}

	if current.Status == domain.StatusCancelled {
		s.logger.Info("Cancel: reservation id=%d is already cancelled", id)
		s.record(outcomeSuccess)
		return models.FromDomainReservation(current), nil
	}

	cancelled, err := s.repo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		return nil, s.notFoundOrInternal("Cancel", id, err)
	}

	s.notifier.ReservationChanged(ctx, events.EventReservationCancelled, current, cancelled)
	s.record(outcomeSuccess)

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(cancelled), nil
}

func (s *Service) notFoundOrInternal(op string, id int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found", op, id)
		s.record(outcomeNotFound)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	s.record(outcomeError)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordReservation(operationCancel, outcome)
	}
}

// toFilter конвертирует запрос в фильтр репозитория
// Конечная дата включается целиком: start_date_time <= конец дня
func (s *Service) toFilter(req *models.ListRequest) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{FacilityID: req.FacilityID}

	if req.StartDate != nil {
		from, err := time.ParseInLocation(domain.DateFormat, *req.StartDate, s.loc)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, *req.StartDate)
		}
		filter.StartFrom = &from
	}

	if req.EndDate != nil {
		day, err := time.ParseInLocation(domain.DateFormat, *req.EndDate, s.loc)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
		to := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.StartTo = &to
	}

	if filter.StartFrom != nil && filter.StartTo != nil && filter.StartTo.Before(*filter.StartFrom) {
		return filter, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	if req.Status != nil {
		status, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			return filter, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}
