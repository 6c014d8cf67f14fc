package service

import (
	"context"
	"fmt"
	"strconv"

	"ycliu87/Car-Garage/internal/api/models"
	"ycliu87/Car-Garage/internal/api/repository"
	"ycliu87/Car-Garage/internal/validator"
)

// DefaultListLimit is used when the list endpoint gets no limit parameter.
const DefaultListLimit = 9

// maxLimitLen caps the raw limit string at 3 characters, so limits are
// practically <= 999.
const maxLimitLen = 3

// CatalogService defines the interface for car catalog business logic.
type CatalogService interface {
	List(ctx context.Context, rawLimit string) ([]models.Car, error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Create(ctx context.Context, form *models.CarForm) (int64, error)
	Update(ctx context.Context, id int64, form *models.CarForm) error
	Delete(ctx context.Context, id int64) error
}

type catalogService struct {
	carRepo repository.CarRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(carRepo repository.CarRepository) CatalogService {
	return &catalogService{carRepo: carRepo}
}

// List returns up to rawLimit cars in insertion order. An empty rawLimit
// means DefaultListLimit; anything longer than 3 characters, non-numeric or
// negative is a validation conflict.
func (s *catalogService) List(ctx context.Context, rawLimit string) ([]models.Car, error) {
	limit := DefaultListLimit
	if rawLimit != "" {
		if len(rawLimit) > maxLimitLen {
			return nil, fmt.Errorf("%w: limit %q longer than %d characters", models.ErrConflict, rawLimit, maxLimitLen)
		}
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid limit %q", models.ErrConflict, rawLimit)
		}
		limit = n
	}
	return s.carRepo.List(ctx, limit)
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.Car, error) {
	return s.carRepo.Get(ctx, id)
}

// Create validates the form and inserts a fully-populated record. The store
// assigns the id from its monotonic counter.
func (s *catalogService) Create(ctx context.Context, form *models.CarForm) (int64, error) {
	if err := validator.GetValidator().Struct(form); err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrConflict, err)
	}
	return s.carRepo.Create(ctx, form.Car())
}

// Update fully replaces the record at id; there is no field merge.
func (s *catalogService) Update(ctx context.Context, id int64, form *models.CarForm) error {
	if err := validator.GetValidator().Struct(form); err != nil {
		return fmt.Errorf("%w: %v", models.ErrConflict, err)
	}
	return s.carRepo.Update(ctx, id, form.Car())
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	return s.carRepo.Delete(ctx, id)
}
