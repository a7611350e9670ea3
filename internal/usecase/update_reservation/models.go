package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/optional"
)

// Request частичное обновление бронирования
// Отсутствующее поле не меняется, null очищает необязательное поле
type Request struct {
	ID               int64
	CustomerName     optional.Field[string]
	CustomerEmail    optional.Field[string]
	CustomerPhone    optional.Field[string]
	EventTitle       optional.Field[string]
	EventDescription optional.Field[string]
	StartDateTime    optional.Field[time.Time]
	EndDateTime      optional.Field[time.Time]
	Status           optional.Field[string]
	Notes            optional.Field[string]
}

// timeChanged возвращает true, если в запросе есть хотя бы одна граница окна
func (r *Request) timeChanged() bool {
	return r.StartDateTime.IsSet() || r.EndDateTime.IsSet()
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Reservation *domain.Reservation
}
