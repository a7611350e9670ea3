package reservation

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, означающие конкурентное пересечение бронирований
const (
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlap возвращается, когда БД отклонила запись из-за пересечения
	// с другим активным бронированием (exclusion constraint или конфликт сериализации)
	ErrOverlap = errors.New("reservation.repository: overlapping active reservation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

// wrapDBError оборачивает ошибку драйвера в base, а ошибки пересечения в ErrOverlap
func wrapDBError(base error, op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqExclusionViolation, pqSerializationFailure:
			return fmt.Errorf("%w: %s: %v", ErrOverlap, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", base, op, err)
}
