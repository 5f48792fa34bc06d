// Package player provides repository interface and types for player
// record storage
package player

import (
	"context"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/fishing-api/internal/repositories/player Repository

// GetInput contains parameters for retrieving a player record
type GetInput struct {
	PlayerID string
}

// GetOutput contains the result of retrieving a player record
type GetOutput struct {
	Record *fishing.PlayerRecord
}

// CreateInput contains parameters for creating a player record
type CreateInput struct {
	Record *fishing.PlayerRecord
}

// CreateOutput contains the result of creating a player record
type CreateOutput struct {
	Record *fishing.PlayerRecord
}

// UpdateInput contains parameters for replacing a player record
type UpdateInput struct {
	Record *fishing.PlayerRecord
}

// UpdateOutput contains the result of replacing a player record
type UpdateOutput struct {
	Record *fishing.PlayerRecord
}

// Repository defines the storage interface for player records. Records
// are stored whole; callers own concurrency control per player ID.
type Repository interface {
	// Get retrieves a player record by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Create stores a new player record; fails if the ID already exists
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Update replaces an existing player record
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
}
