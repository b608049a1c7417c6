package audit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndFind(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	event := Event{
		ID:         uuid.New(),
		RunID:      uuid.New(),
		DocumentID: "1a7b5f4b9d8c4cf09a0d0f3a27d6c95bafc94e0e9ecc354c3e2a47fbbc5b9f3a",
		Action:     ActionVerify,
		Status:     "VALID",
		DurationMS: 42,
	}
	require.NoError(t, store.Append(ctx, event))

	got, err := store.FindByRunID(ctx, event.RunID.String())
	require.NoError(t, err)
	assert.Equal(t, event, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreFindUnknownRun(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.FindByRunID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreLastWriteWinsPerRun(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	runID := uuid.New()

	first := Event{ID: uuid.New(), RunID: runID, Status: "VALID"}
	second := Event{ID: uuid.New(), RunID: runID, Status: "INVALID"}
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	got, err := store.FindByRunID(ctx, runID.String())
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
