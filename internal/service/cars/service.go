package cars

import (
	"context"
	"errors"
	"fmt"

	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/ptr"
)

// Service сервис каталога автомобилей (только чтение)
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	s.logger.Info("GetByID: fetching car id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: carId must be positive", ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// List получает автомобили каталога с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error) {
	s.logger.Info("List: fetching cars")

	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	filter := req.ToDomainFilter()
	s.logger.Debug("List: type=%q brand=%q location=%q price=[%.2f, %.2f] seats>=%d",
		ptr.Value(filter.Type), ptr.Value(filter.Brand), ptr.Value(filter.Location),
		ptr.Value(filter.MinPrice), ptr.Value(filter.MaxPrice), ptr.Value(filter.Seats))

	cars, err := s.carRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d cars", len(cars))
	return models.FromDomainCarList(cars), nil
}

// validateListRequest проверяет диапазоны фильтров
func validateListRequest(req *models.ListCarsRequest) error {
	if req.MinPrice != nil && *req.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must not be negative", ErrInvalidInput)
	}
	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidInput)
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return fmt.Errorf("%w: minPrice is greater than maxPrice", ErrInvalidInput)
	}
	if req.Seats != nil && *req.Seats <= 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}
	return nil
}
