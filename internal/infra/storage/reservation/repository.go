package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

const tableReservations = "reservations"

// reservationColumns порядок колонок должен совпадать с scanReservation
var reservationColumns = []string{
	"id",
	"user_id",
	"car_id",
	"start_date",
	"end_date",
	"total_price",
	"status",
	"pickup_location",
	"dropoff_location",
	"customer_name",
	"customer_email",
	"customer_phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Пересечение с активным бронированием того же автомобиля запрещено
// exclusion constraint reservations_no_overlap, нарушение возвращается как ErrConflict.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	customerName, customerEmail, customerPhone := customerInfoColumns(reservation.CustomerInfo)

	query, args, err := psqlbuilder.Insert(tableReservations).
		Columns(
			"user_id",
			"car_id",
			"start_date",
			"end_date",
			"total_price",
			"status",
			"pickup_location",
			"dropoff_location",
			"customer_name",
			"customer_email",
			"customer_phone",
		).
		Values(
			reservation.UserID,
			reservation.CarID,
			reservation.StartDate,
			reservation.EndDate,
			reservation.TotalPrice,
			reservation.Status,
			reservation.PickupLocation,
			reservation.DropoffLocation,
			customerName,
			customerEmail,
			customerPhone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if known := translateError(err); known != nil {
			return nil, fmt.Errorf("%w: Create - execute insert: %v", known, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(tableReservations).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до смены статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if known := translateError(err); known != nil {
			return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", known, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает бронирования с опциональной фильтрацией по пользователю, автомобилю и статусу
// Сортировка: сначала самые новые по дате начала
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From(tableReservations).
		OrderBy("start_date DESC", "id DESC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.CarID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"car_id": *filter.CarID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// HasConflict проверяет, есть ли у автомобиля активное (pending / confirmed) бронирование,
// пересекающееся с [startDate, endDate] включительно.
// excludeID позволяет не учитывать само перепроверяемое бронирование.
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE).
func (r *Repository) HasConflict(ctx context.Context, carID int64, period domain.DateRange, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildConflictQuery(carID, period, excludeID, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		if known := translateError(err); known != nil {
			return false, fmt.Errorf("%w: HasConflict - execute query: %v", known, err)
		}
		return false, fmt.Errorf("%w: HasConflict - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

func buildConflictQuery(carID int64, period domain.DateRange, excludeID *int64, lock bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select("id").
		From(tableReservations).
		Where(squirrel.Eq{"car_id": carID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		// Пересечение включительно: a1 <= b2 AND b1 <= a2
		Where(squirrel.LtOrEq{"start_date": period.End}).
		Where(squirrel.GtOrEq{"end_date": period.Start}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Запись условная (WHERE status = from): если статус успел измениться,
// возвращается ErrStatusChanged, если бронирования нет - ErrReservationNotFound.
// Меняются только status и updated_at.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReservations).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(reservationColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.explainMissedUpdate(ctx, id)
	}
	if err != nil {
		if known := translateError(err); known != nil {
			return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", known, err)
		}
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// explainMissedUpdate определяет, почему условный UPDATE не затронул строк
func (r *Repository) explainMissedUpdate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableReservations).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build exists query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - check exists: %v", ErrExecQuery, err)
	}

	return ErrStatusChanged
}

// scanReservation сканирует одну строку в domain.Reservation
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation                                domain.Reservation
		customerName, customerEmail, customerPhone sql.NullString
		createdAt, updatedAt                       sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CarID,
		&reservation.StartDate,
		&reservation.EndDate,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.PickupLocation,
		&reservation.DropoffLocation,
		&customerName,
		&customerEmail,
		&customerPhone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerName.Valid || customerEmail.Valid || customerPhone.Valid {
		reservation.CustomerInfo = &domain.CustomerInfo{
			Name:  customerName.String,
			Email: customerEmail.String,
			Phone: customerPhone.String,
		}
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func customerInfoColumns(info *domain.CustomerInfo) (name, email, phone sql.NullString) {
	if info == nil {
		return
	}
	return nullString(info.Name), nullString(info.Email), nullString(info.Phone)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
