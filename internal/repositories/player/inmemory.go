package player

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Useful for local development and tests; nothing survives a restart.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*fishing.PlayerRecord
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*fishing.PlayerRecord),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a player record by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFound("player not found").WithMeta("player_id", input.PlayerID)
	}

	copied, err := copyRecord(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy player record")
	}

	return &GetOutput{Record: copied}, nil
}

// Create stores a new player record
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Record.ID]; exists {
		return nil, errors.AlreadyExists("player already exists").WithMeta("player_id", input.Record.ID)
	}

	copied, err := copyRecord(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy player record")
	}
	r.store[input.Record.ID] = copied

	return &CreateOutput{Record: input.Record}, nil
}

// Update replaces an existing player record
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Record.ID]; !exists {
		return nil, errors.NotFound("player not found").WithMeta("player_id", input.Record.ID)
	}

	copied, err := copyRecord(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy player record")
	}
	r.store[input.Record.ID] = copied

	return &UpdateOutput{Record: input.Record}, nil
}

// copyRecord deep-copies a record through JSON so stored state cannot be
// mutated through retained pointers.
func copyRecord(record *fishing.PlayerRecord) (*fishing.PlayerRecord, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var copied fishing.PlayerRecord
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}
