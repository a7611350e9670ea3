package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	FacilityID       int64     // ID площадки
	CustomerName     string    // Имя клиента
	CustomerEmail    string    // Email клиента
	CustomerPhone    *string   // Телефон (опционально)
	EventTitle       string    // Название мероприятия
	EventDescription *string   // Описание (опционально)
	StartDateTime    time.Time // Начало, включительно
	EndDateTime      time.Time // Окончание, не включительно
	Notes            *string   // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
}
