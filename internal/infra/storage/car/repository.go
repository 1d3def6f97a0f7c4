package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

const tableCars = "cars"

// likeEscaper экранирует спецсимволы шаблона LIKE, экранирующий символ по умолчанию - обратный слеш
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository каталог автомобилей (только чтение)
type Repository struct {
	db Queryer
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db Queryer) *Repository {
	return &Repository{db: db}
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	query, args, err := psqlbuilder.Select(carColumns...).
		From(tableCars).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var row carRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}

	return row.toDomain(), nil
}

// List получает автомобили каталога с фильтрацией
// Строковые фильтры сравниваются без учета регистра, location - по вхождению
func (r *Repository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	var rows []carRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}

	cars := make([]*domain.Car, 0, len(rows))
	for _, row := range rows {
		cars = append(cars, row.toDomain())
	}

	return cars, nil
}

func buildListQuery(filter domain.CarFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(carColumns...).
		From(tableCars).
		OrderBy("price_per_day ASC", "id ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(type)": strings.ToLower(*filter.Type)})
	}
	if filter.Brand != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(brand)": strings.ToLower(*filter.Brand)})
	}
	if filter.Fuel != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(fuel)": strings.ToLower(*filter.Fuel)})
	}
	if filter.Transmission != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"LOWER(transmission)": strings.ToLower(*filter.Transmission)})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price_per_day": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price_per_day": *filter.MaxPrice})
	}
	if filter.Seats != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"seats": *filter.Seats})
	}
	if filter.Availability != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"availability": *filter.Availability})
	}
	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"location": "%" + escapeLike(*filter.Location) + "%"})
	}

	return selectBuilder
}

// escapeLike превращает пользовательский ввод в буквальную подстроку для LIKE / ILIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
