package repository

import (
	"context"
	"fmt"
	"strconv"

	"ycliu87/Car-Garage/internal/api/models"

	"github.com/go-redis/redis/v8"
)

const (
	carNextIDKey = "cars:next_id"
	carOrderKey  = "cars:ids"
)

type redisCarRepository struct {
	rdb *redis.Client
}

// NewRedisCarRepository creates a Redis-based CarRepository. Each car is a
// hash under car:<id>; cars:ids keeps insertion order and cars:next_id is the
// monotonic counter.
func NewRedisCarRepository(rdb *redis.Client) CarRepository {
	return &redisCarRepository{rdb: rdb}
}

func carKey(id int64) string {
	return fmt.Sprintf("car:%d", id)
}

func (r *redisCarRepository) List(ctx context.Context, limit int) ([]models.Car, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.List")
	defer span.End()

	// LRange treats -1 as "last element", so a zero limit must not reach it.
	if limit <= 0 {
		return []models.Car{}, nil
	}

	ids, err := r.rdb.LRange(ctx, carOrderKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read car id list: %w", err)
	}

	cars := make([]models.Car, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt car id %q in order list: %w", raw, err)
		}
		car, err := r.get(ctx, id)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, nil
}

func (r *redisCarRepository) Get(ctx context.Context, id int64) (*models.Car, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.Get")
	defer span.End()

	return r.get(ctx, id)
}

func (r *redisCarRepository) get(ctx context.Context, id int64) (*models.Car, error) {
	data, err := r.rdb.HGetAll(ctx, carKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get car from redis: %w", err)
	}
	if len(data) == 0 {
		return nil, models.ErrNotFound
	}

	year, err := strconv.Atoi(data["year"])
	if err != nil {
		return nil, fmt.Errorf("corrupt year for car %d: %w", id, err)
	}
	price, err := strconv.Atoi(data["price"])
	if err != nil {
		return nil, fmt.Errorf("corrupt price for car %d: %w", id, err)
	}

	return &models.Car{
		ID:    id,
		Brand: data["brand"],
		Model: data["model"],
		Year:  year,
		Price: price,
		Color: data["color"],
	}, nil
}

func (r *redisCarRepository) Create(ctx context.Context, car models.Car) (int64, error) {
	ctx, span := tracer.Start(ctx, "CarRepository.Create")
	defer span.End()

	id, err := r.rdb.Incr(ctx, carNextIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate car id: %w", err)
	}

	pipe := r.rdb.Pipeline()
	pipe.HSet(ctx, carKey(id),
		"brand", car.Brand,
		"model", car.Model,
		"year", car.Year,
		"price", car.Price,
		"color", car.Color,
	)
	pipe.RPush(ctx, carOrderKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to create car in redis: %w", err)
	}
	return id, nil
}

func (r *redisCarRepository) Update(ctx context.Context, id int64, car models.Car) error {
	ctx, span := tracer.Start(ctx, "CarRepository.Update")
	defer span.End()

	exists, err := r.rdb.Exists(ctx, carKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to check car existence: %w", err)
	}
	if exists == 0 {
		return models.ErrNotFound
	}

	err = r.rdb.HSet(ctx, carKey(id),
		"brand", car.Brand,
		"model", car.Model,
		"year", car.Year,
		"price", car.Price,
		"color", car.Color,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to update car in redis: %w", err)
	}
	return nil
}

func (r *redisCarRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "CarRepository.Delete")
	defer span.End()

	deleted, err := r.rdb.Del(ctx, carKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete car from redis: %w", err)
	}
	if deleted == 0 {
		return models.ErrNotFound
	}
	if err := r.rdb.LRem(ctx, carOrderKey, 1, id).Err(); err != nil {
		return fmt.Errorf("failed to remove car from order list: %w", err)
	}
	return nil
}

type redisUserRepository struct {
	rdb *redis.Client
}

// NewRedisUserRepository creates a Redis-based UserRepository. Each user is a
// hash under user:<username> with a user_email:<email> index key, so email
// lookups skip the O(n) scan the memory backend does.
func NewRedisUserRepository(rdb *redis.Client) UserRepository {
	return &redisUserRepository{rdb: rdb}
}

func userKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

func emailKey(email string) string {
	return fmt.Sprintf("user_email:%s", email)
}

func (r *redisUserRepository) Create(ctx context.Context, user models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	exists, err := r.rdb.Exists(ctx, userKey(user.Username)).Result()
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists != 0 {
		return models.ErrConflict
	}

	pipe := r.rdb.Pipeline()
	pipe.HSet(ctx, userKey(user.Username),
		"name", user.Name,
		"email", user.Email,
		"hashed_password", user.HashedPassword,
		"birthday", user.Birthday,
	)
	pipe.Set(ctx, emailKey(user.Email), user.Username, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user in redis: %w", err)
	}
	return nil
}

func (r *redisUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, userKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user from redis: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &models.User{
		Username:       username,
		Name:           data["name"],
		Email:          data["email"],
		HashedPassword: data["hashed_password"],
		Birthday:       data["birthday"],
	}, nil
}

func (r *redisUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.FindByEmail")
	defer span.End()

	username, err := r.rdb.Get(ctx, emailKey(email)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up email index: %w", err)
	}
	return r.GetByUsername(ctx, username)
}
