package car

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// carRow строка таблицы cars для сканирования через sqlx
type carRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Brand        string    `db:"brand"`
	Model        string    `db:"model"`
	Type         string    `db:"type"`
	PricePerDay  float64   `db:"price_per_day"`
	Fuel         string    `db:"fuel"`
	Transmission string    `db:"transmission"`
	Seats        int       `db:"seats"`
	Location     string    `db:"location"`
	Description  string    `db:"description"`
	Availability bool      `db:"availability"`
	CreatedAt    time.Time `db:"created_at"`
}

var carColumns = []string{
	"id",
	"name",
	"brand",
	"model",
	"type",
	"price_per_day",
	"fuel",
	"transmission",
	"seats",
	"location",
	"description",
	"availability",
	"created_at",
}

func (r carRow) toDomain() *domain.Car {
	return &domain.Car{
		ID:           r.ID,
		Name:         r.Name,
		Brand:        r.Brand,
		Model:        r.Model,
		Type:         r.Type,
		PricePerDay:  r.PricePerDay,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Seats:        r.Seats,
		Location:     r.Location,
		Description:  r.Description,
		Availability: r.Availability,
		CreatedAt:    r.CreatedAt,
	}
}
