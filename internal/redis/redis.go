package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every single Redis operation.
const opTimeout = 5 * time.Second

// redisClient holds the Redis client connection
var redisClient *redis.Client

// Init initializes the Redis connection and sets the global client variable
func Init(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx, cancel := opCtx()
	defer cancel()

	_, err = client.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")
	redisClient = client

	return client
}

// GetClient returns the global Redis client connection
func GetClient() *redis.Client {
	return redisClient
}

// Close closes the Redis client connection
func Close() error {
	if redisClient != nil {
		log.Println("Closing Redis connection...")
		return redisClient.Close()
	}
	return nil
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// Set stores a key-value pair in Redis
func Set(key string, value interface{}, expiration time.Duration) error {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key from Redis
func Get(key string) (string, error) {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.Get(ctx, key).Result()
}

// Delete removes a key from Redis
func Delete(key string) error {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.Del(ctx, key).Err()
}

// HashSet sets a hash field to value in Redis
func HashSet(key, field string, value interface{}) error {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.HSet(ctx, key, field, value).Err()
}

// HashGet gets the value of a hash field
func HashGet(key, field string) (string, error) {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.HGet(ctx, key, field).Result()
}

// HashGetAll gets all fields and values of a hash
func HashGetAll(key string) (map[string]string, error) {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.HGetAll(ctx, key).Result()
}

// HashDelete removes fields from a hash
func HashDelete(key string, fields ...string) error {
	ctx, cancel := opCtx()
	defer cancel()

	return redisClient.HDel(ctx, key, fields...).Err()
}
