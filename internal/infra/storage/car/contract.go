package car

import "github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"

// Queryer чтение через sqlx (*sqlx.DB или *dbmetrics.InstrumentedQueryer поверх него)
type Queryer = dbmetrics.Queryer
