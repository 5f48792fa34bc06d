package player

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
	"github.com/KirkDiggler/fishing-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fishing-api/internal/redis"
)

// Key pattern: player:{player_id}
const playerKeyPrefix = "player:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis repository for player records
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a player record by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	data, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("player not found").WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get player from Redis")
	}

	var record fishing.PlayerRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player record")
	}

	return &GetOutput{Record: &record}, nil
}

// Create stores a new player record
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	record := *input.Record
	record.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player record")
	}

	// SetNX keeps first-reference creation atomic across processes.
	created, err := r.client.SetNX(ctx, playerKey(record.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store player in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("player already exists").WithMeta("player_id", record.ID)
	}

	return &CreateOutput{Record: &record}, nil
}

// Update replaces an existing player record
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	key := playerKey(input.Record.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check player existence")
	}
	if exists == 0 {
		return nil, errors.NotFound("player not found").WithMeta("player_id", input.Record.ID)
	}

	record := *input.Record
	record.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player record")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to update player in Redis")
	}

	return &UpdateOutput{Record: &record}, nil
}

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}
