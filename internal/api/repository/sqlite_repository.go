package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ycliu87/Car-Garage/internal/api/models"

	"github.com/jmoiron/sqlx"
)

type sqliteCarRepository struct {
	db *sqlx.DB
}

// NewSQLiteCarRepository creates a SQLite-based CarRepository. AUTOINCREMENT
// keeps the id sequence monotonic across deletes.
func NewSQLiteCarRepository(db *sqlx.DB) CarRepository {
	return &sqliteCarRepository{db: db}
}

func (r *sqliteCarRepository) List(ctx context.Context, limit int) ([]models.Car, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.List")
	defer span.End()

	cars := []models.Car{}
	query := `SELECT id, brand, model, year, price, color FROM cars ORDER BY id LIMIT ?`
	if err := r.db.SelectContext(ctx, &cars, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (r *sqliteCarRepository) Get(ctx context.Context, id int64) (*models.Car, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.Get")
	defer span.End()

	var car models.Car
	query := `SELECT id, brand, model, year, price, color FROM cars WHERE id = ?`
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

func (r *sqliteCarRepository) Create(ctx context.Context, car models.Car) (int64, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.Create")
	defer span.End()

	query := `INSERT INTO cars (brand, model, year, price, color) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, car.Brand, car.Model, car.Year, car.Price, car.Color)
	if err != nil {
		return 0, fmt.Errorf("failed to create car: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted car id: %w", err)
	}
	return id, nil
}

func (r *sqliteCarRepository) Update(ctx context.Context, id int64, car models.Car) error {
	ctx, span := tracer.Start(ctx, "CarRepository.Update")
	defer span.End()

	query := `UPDATE cars SET brand = ?, model = ?, year = ?, price = ?, color = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, car.Brand, car.Model, car.Year, car.Price, car.Color, id)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *sqliteCarRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "CarRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewSQLiteUserRepository creates a SQLite-based UserRepository. Friends and
// notifications are not persisted by this backend; no handler writes them.
func NewSQLiteUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Create(ctx context.Context, user models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	query := `INSERT INTO users (username, name, email, hashed_password, birthday) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.Username, user.Name, user.Email, user.HashedPassword, user.Birthday)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqliteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	var user models.User
	query := `SELECT username, name, email, hashed_password, birthday FROM users WHERE username = ?`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

func (r *sqliteUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.FindByEmail")
	defer span.End()

	var user models.User
	query := `SELECT username, name, email, hashed_password, birthday FROM users WHERE email = ?`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}
