package middleware

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/jwtauth"
)

// HTTPMetrics сбор метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// TokenVerifier проверка JWT с требуемой ролью
type TokenVerifier interface {
	RequireRole(raw, role string) (*jwtauth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
