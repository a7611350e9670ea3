package conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ErrCheckFailed возвращается, если проверку не удалось выполнить
var ErrCheckFailed = errors.New("conflicts: check failed")

// ReservationRepository источник активных бронирований
// Внутри транзакции чтение должно быть блокирующим (FOR UPDATE)
type ReservationRepository interface {
	FindActive(ctx context.Context, facilityID int64, window *domain.Interval, excludeID *int64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Checker проверяет пересечение предлагаемого окна с активными бронированиями площадки
type Checker struct {
	repo   ReservationRepository
	logger Logger
}

// NewChecker создает новый экземпляр проверки конфликтов
func NewChecker(repo ReservationRepository, logger Logger) *Checker {
	return &Checker{repo: repo, logger: logger}
}

// HasConflict возвращает true, если окно пересекается хотя бы с одним активным
// бронированием площадки, кроме excludeID
// Должен вызываться в той же транзакции, что и последующая запись
func (c *Checker) HasConflict(ctx context.Context, facilityID int64, window domain.Interval, excludeID *int64) (bool, error) {
	candidates, err := c.repo.FindActive(ctx, facilityID, &window, excludeID)
	if err != nil {
		// Причина сохраняется в цепочке: конфликт сериализации должен распознаваться выше
		return false, fmt.Errorf("%w: facility=%d: %w", ErrCheckFailed, facilityID, err)
	}

	// Окончательное решение принимает domain.Interval.Overlaps
	for _, r := range candidates {
		if !r.IsActive() {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.Interval().Overlaps(window) {
			c.logger.Warn("HasConflict: facility=%d window %s - %s overlaps reservation id=%d",
				facilityID, window.Start.Format("2006-01-02T15:04"), window.End.Format("2006-01-02T15:04"), r.ID)
			return true, nil
		}
	}

	return false, nil
}
