package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
	player "github.com/KirkDiggler/fishing-api/internal/repositories/player"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newRecord := func(id string) *fishing.PlayerRecord {
		return fishing.NewDefaultRecord(id, now, nil)
	}

	t.Run("create then get", func(t *testing.T) {
		repo := player.NewInMemory()

		_, err := repo.Create(ctx, &player.CreateInput{Record: newRecord("p1")})
		require.NoError(t, err)

		out, err := repo.Get(ctx, &player.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, "p1", out.Record.ID)
		assert.Equal(t, fishing.StartingBalance, out.Record.Balance)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		repo := player.NewInMemory()

		_, err := repo.Create(ctx, &player.CreateInput{Record: newRecord("p1")})
		require.NoError(t, err)

		out, err := repo.Get(ctx, &player.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		out.Record.Balance = 0
		out.Record.Inventory["Clownfish"] = 99

		again, err := repo.Get(ctx, &player.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, fishing.StartingBalance, again.Record.Balance)
		assert.Zero(t, again.Record.Inventory["Clownfish"])
	})

	t.Run("duplicate create rejected", func(t *testing.T) {
		repo := player.NewInMemory()

		_, err := repo.Create(ctx, &player.CreateInput{Record: newRecord("p1")})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &player.CreateInput{Record: newRecord("p1")})
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("get and update missing player", func(t *testing.T) {
		repo := player.NewInMemory()

		_, err := repo.Get(ctx, &player.GetInput{PlayerID: "ghost"})
		assert.True(t, errors.IsNotFound(err))

		_, err = repo.Update(ctx, &player.UpdateInput{Record: newRecord("ghost")})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("update replaces stored state", func(t *testing.T) {
		repo := player.NewInMemory()

		record := newRecord("p1")
		_, err := repo.Create(ctx, &player.CreateInput{Record: record})
		require.NoError(t, err)

		record.Balance = 42
		_, err = repo.Update(ctx, &player.UpdateInput{Record: record})
		require.NoError(t, err)

		out, err := repo.Get(ctx, &player.GetInput{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, 42.0, out.Record.Balance)
	})
}
