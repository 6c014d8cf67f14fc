package repository

import (
	"context"
	"errors"
	"testing"

	"ycliu87/Car-Garage/internal/api/models"
)

func corolla() models.Car {
	return models.Car{Brand: "Toyota", Model: "Corolla", Year: 2020, Price: 20000, Color: "Red"}
}

func TestMemoryCarRepository_IDsNeverReused(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 5; i++ {
		id, err := repo.Create(ctx, corolla())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if id <= lastID {
			t.Errorf("Create() id = %d, want > %d", id, lastID)
		}
		lastID = id
	}

	// Deleting must not make the counter fall back onto a surviving id.
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	id, err := repo.Create(ctx, corolla())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 6 {
		t.Errorf("Create() after deletes id = %d, want 6", id)
	}
}

func TestMemoryCarRepository_DeleteThenGet(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, corolla())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.Get(ctx, id); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryCarRepository_UpdateReplacesAllFields(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, corolla())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	replacement := models.Car{Brand: "Honda", Model: "Civic", Year: 2022, Price: 25000, Color: "Blue"}
	if err := repo.Update(ctx, id, replacement); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	replacement.ID = id
	if *got != replacement {
		t.Errorf("Get() after Update() = %+v, want %+v", *got, replacement)
	}
}

func TestMemoryCarRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryCarRepository()

	err := repo.Update(context.Background(), 42, corolla())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update() on missing id error = %v, want ErrNotFound", err)
	}
}

func TestMemoryCarRepository_ListInsertionOrder(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	brands := []string{"Toyota", "Honda", "Ford", "Mazda"}
	for _, brand := range brands {
		if _, err := repo.Create(ctx, models.Car{Brand: brand, Model: "M", Year: 2020, Price: 1, Color: "Red"}); err != nil {
			t.Fatalf("Create(%s) error = %v", brand, err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "limit below size", limit: 2, want: []string{"Toyota", "Honda"}},
		{name: "limit equal to size", limit: 4, want: brands},
		{name: "limit above size", limit: 9, want: brands},
		{name: "zero limit", limit: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars, err := repo.List(ctx, tt.limit)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(cars) != len(tt.want) {
				t.Fatalf("List() returned %d cars, want %d", len(cars), len(tt.want))
			}
			for i, brand := range tt.want {
				if cars[i].Brand != brand {
					t.Errorf("List()[%d].Brand = %q, want %q", i, cars[i].Brand, brand)
				}
			}
		})
	}
}

func TestMemoryCarRepository_ListSkipsDeleted(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	for _, brand := range []string{"Toyota", "Honda", "Ford"} {
		if _, err := repo.Create(ctx, models.Car{Brand: brand, Model: "M", Year: 2020, Price: 1, Color: "Red"}); err != nil {
			t.Fatalf("Create(%s) error = %v", brand, err)
		}
	}
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	cars, err := repo.List(ctx, 9)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(cars) != 2 || cars[0].Brand != "Toyota" || cars[1].Brand != "Ford" {
		t.Errorf("List() after delete = %+v, want Toyota then Ford", cars)
	}
}
