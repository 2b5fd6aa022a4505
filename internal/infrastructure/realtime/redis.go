package realtime

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis connection used as the realtime store.
// The only thing this application does with it is append contact
// messages to a stream; nothing ever reads the stream back.
type Client struct {
	Client *redis.Client
}

func NewClient(host, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (c *Client) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	// Ping to verify connection
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	if c.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// Stream returns an append handle for a named stream.
func (c *Client) Stream(name string) *Stream {
	return &Stream{client: c.Client, name: name}
}

// Stream is a write-only handle on a Redis stream. XADD assigns each
// record a generated key, which is returned to the caller.
type Stream struct {
	client *redis.Client
	name   string
}

func (s *Stream) Append(ctx context.Context, values map[string]interface{}) (string, error) {
	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.name,
		Values: values,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("append to stream %q failed: %w", s.name, err)
	}
	return id, nil
}
