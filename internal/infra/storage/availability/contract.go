package availability

import "github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД (*sql.DB, *dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor
