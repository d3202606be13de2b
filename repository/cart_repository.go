package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

// CartRepository defines the interface for cart storage. Carts live in Redis,
// one JSON document per user.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
	// RemoveCourses deletes the given course references from the user's cart.
	// Missing cart or missing items are not errors; removal is idempotent.
	RemoveCourses(ctx context.Context, userID string, courseIDs []uuid.UUID) error
}

type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &RedisCartRepository{client: client, ttl: ttl}
}

func (r *RedisCartRepository) getKey(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (r *RedisCartRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.getKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(cart.UserID), data, r.ttl).Err()
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.getKey(userID)).Err()
}

func (r *RedisCartRepository) RemoveCourses(ctx context.Context, userID string, courseIDs []uuid.UUID) error {
	cart, err := r.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil
	}

	remove := make(map[uuid.UUID]bool, len(courseIDs))
	for _, id := range courseIDs {
		remove[id] = true
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !remove[item.CourseID] {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		return r.DeleteCart(ctx, userID)
	}
	return r.SaveCart(ctx, cart)
}
