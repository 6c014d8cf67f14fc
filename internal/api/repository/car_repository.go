package repository

import (
	"context"
	"sync"

	"ycliu87/Car-Garage/internal/api/models"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository.catalog")

// CarRepository defines the interface for car listing data operations.
// Implementations assign ids from a monotonically increasing counter that is
// never derived from the current map size, so ids are not reused after
// deletes.
type CarRepository interface {
	// List returns up to limit cars in insertion order.
	List(ctx context.Context, limit int) ([]models.Car, error)
	// Get returns the car for id or models.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Car, error)
	// Create inserts the car and returns its assigned id.
	Create(ctx context.Context, car models.Car) (int64, error)
	// Update fully replaces the fields of the car at id, or returns
	// models.ErrNotFound.
	Update(ctx context.Context, id int64, car models.Car) error
	// Delete removes the car at id, or returns models.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

type memoryCarRepository struct {
	mu     sync.Mutex
	cars   map[int64]models.Car
	order  []int64
	nextID int64
}

// NewMemoryCarRepository creates the default in-memory CarRepository. Nothing
// survives a process restart.
func NewMemoryCarRepository() CarRepository {
	return &memoryCarRepository{
		cars: make(map[int64]models.Car),
	}
}

func (r *memoryCarRepository) List(ctx context.Context, limit int) ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars := make([]models.Car, 0, len(r.order))
	for _, id := range r.order {
		if len(cars) >= limit {
			break
		}
		cars = append(cars, r.cars[id])
	}
	return cars, nil
}

func (r *memoryCarRepository) Get(ctx context.Context, id int64) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &car, nil
}

func (r *memoryCarRepository) Create(ctx context.Context, car models.Car) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	car.ID = r.nextID
	r.cars[car.ID] = car
	r.order = append(r.order, car.ID)
	return car.ID, nil
}

func (r *memoryCarRepository) Update(ctx context.Context, id int64, car models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[id]; !ok {
		return models.ErrNotFound
	}
	car.ID = id
	r.cars[id] = car
	return nil
}

func (r *memoryCarRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.cars, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
