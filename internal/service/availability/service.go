package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/facility"
	ruleRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/availability"
	"github.com/m04kA/SMC-VenueBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Service хранилище политики доступности: правила по дням недели с часами по умолчанию
type Service struct {
	ruleRepo     RuleRepository
	facilityRepo FacilityRepository
	defaults     domain.OperatingHours
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
// defaults применяются для дней без заданного правила
func NewService(
	ruleRepo RuleRepository,
	facilityRepo FacilityRepository,
	defaults domain.OperatingHours,
	logger Logger,
) *Service {
	defaults.IsDefault = true
	return &Service{
		ruleRepo:     ruleRepo,
		facilityRepo: facilityRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// Resolve возвращает часы работы площадки в день недели:
// заданное правило либо часы по умолчанию
func (s *Service) Resolve(ctx context.Context, facilityID int64, day time.Weekday) (domain.OperatingHours, error) {
	rule, err := s.ruleRepo.GetByFacilityAndDay(ctx, facilityID, day)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return s.defaults, nil
		}
		s.logger.Error("Resolve: failed to get rule facility=%d, day=%d: %v", facilityID, day, err)
		return domain.OperatingHours{}, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return domain.OperatingHours{
		StartTime:   rule.StartTime,
		EndTime:     rule.EndTime,
		IsAvailable: rule.IsAvailable,
	}, nil
}

// ListRules возвращает правила площадки на все семь дней недели
// Дни без правила заполняются часами по умолчанию
func (s *Service) ListRules(ctx context.Context, facilityID int64) (*models.RuleListResponse, error) {
	s.logger.Info("ListRules: fetching rules for facility=%d", facilityID)

	if err := s.ensureFacility(ctx, facilityID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Error("ListRules: repository error for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[time.Weekday]*domain.AvailabilityRule, len(rules))
	for _, r := range rules {
		byDay[r.DayOfWeek] = r
	}

	resp := &models.RuleListResponse{
		FacilityID: facilityID,
		Rules:      make([]models.RuleResponse, 0, domain.DaysInWeek),
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if r, ok := byDay[day]; ok {
			resp.Rules = append(resp.Rules, models.FromDomainRule(r))
			continue
		}
		resp.Rules = append(resp.Rules, models.FromOperatingHours(day, s.defaults))
	}

	return resp, nil
}

// UpsertRule создает или заменяет правило площадки для дня недели
func (s *Service) UpsertRule(ctx context.Context, req *models.UpsertRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpsertRule: facility=%d, day=%d, %s-%s, available=%t",
		req.FacilityID, req.DayOfWeek, req.StartTime, req.EndTime, req.IsAvailable)

	rule, err := s.buildRule(req)
	if err != nil {
		s.logger.Warn("UpsertRule: validation failed: %v", err)
		return nil, err
	}

	if err := s.ensureFacility(ctx, req.FacilityID); err != nil {
		return nil, err
	}

	saved, err := s.ruleRepo.Upsert(ctx, rule)
	if err != nil {
		s.logger.Error("UpsertRule: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: UpsertRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertRule: saved rule id=%d", saved.ID)
	resp := models.FromDomainRule(saved)
	return &resp, nil
}

func (s *Service) buildRule(req *models.UpsertRuleRequest) (*domain.AvailabilityRule, error) {
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facility id must be positive", ErrInvalidInput)
	}
	if req.DayOfWeek < int(time.Sunday) || req.DayOfWeek > int(time.Saturday) {
		return nil, fmt.Errorf("%w: day of week must be between 0 and 6", ErrInvalidInput)
	}

	// Для закрытого дня время можно не указывать
	startRaw, endRaw := req.StartTime, req.EndTime
	if !req.IsAvailable && startRaw == "" && endRaw == "" {
		startRaw, endRaw = s.defaults.StartTime.String(), s.defaults.EndTime.String()
	}

	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if req.IsAvailable && !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return &domain.AvailabilityRule{
		FacilityID:  req.FacilityID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: req.IsAvailable,
	}, nil
}

func (s *Service) ensureFacility(ctx context.Context, facilityID int64) error {
	_, err := s.facilityRepo.GetByID(ctx, facilityID)
	if err == nil {
		return nil
	}
	if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
		s.logger.Warn("facility id=%d not found", facilityID)
		return ErrFacilityNotFound
	}
	s.logger.Error("failed to get facility id=%d: %v", facilityID, err)
	return fmt.Errorf("%w: facility lookup: %v", ErrInternal, err)
}
