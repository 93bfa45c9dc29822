package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "lulu:memories"

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, testKey), mr
}

func TestStore_LoadMissingReturnsSeed(t *testing.T) {
	store, _ := setupStore(t)

	facts := store.Load(context.Background())
	assert.Equal(t, SeedFacts(), facts)
}

func TestStore_LoadCorruptReturnsSeed(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set(testKey, "{not json"))

	facts := store.Load(context.Background())
	assert.Equal(t, SeedFacts(), facts)
}

func TestStore_AddAssignsIDAndPersists(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	facts, err := store.Add(ctx, Fact{Category: CategoryClient, Content: "Repeat client: Mochi"})
	require.NoError(t, err)
	require.Len(t, facts, len(SeedFacts())+1)

	added := facts[len(facts)-1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, CategoryClient, added.Category)

	// The full list is written back as one JSON value
	raw, err := mr.Get(testKey)
	require.NoError(t, err)
	var persisted []Fact
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, facts, persisted)
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three"} {
		_, err := store.Add(ctx, Fact{Category: CategoryMisc, Content: content})
		require.NoError(t, err)
	}

	facts := store.Load(ctx)
	n := len(facts)
	assert.Equal(t, "one", facts[n-3].Content)
	assert.Equal(t, "two", facts[n-2].Content)
	assert.Equal(t, "three", facts[n-1].Content)
}

func TestStore_AddCollidingIDAppendsWithoutMerging(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	first, err := store.Add(ctx, Fact{ID: "dup", Category: CategoryMisc, Content: "a"})
	require.NoError(t, err)
	second, err := store.Add(ctx, Fact{ID: "dup", Category: CategoryMisc, Content: "b"})
	require.NoError(t, err)

	assert.Len(t, second, len(first)+1)
	assert.Equal(t, "a", second[len(second)-2].Content)
	assert.Equal(t, "b", second[len(second)-1].Content)
}

func TestStore_RemoveKeepsRemainderOrder(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	facts, err := store.Remove(ctx, SeedFacts()[0].ID)
	require.NoError(t, err)
	require.Len(t, facts, len(SeedFacts())-1)
	assert.Equal(t, SeedFacts()[1], facts[0])
}

func TestStore_RemoveMissingIDIsNoOpButStillPersists(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	facts, err := store.Remove(ctx, "missing-id")
	require.NoError(t, err)
	assert.Equal(t, SeedFacts(), facts)

	// The write still happens: the seed list is now materialized in Redis.
	raw, err := mr.Get(testKey)
	require.NoError(t, err)
	var persisted []Fact
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, SeedFacts(), persisted)
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	added, err := store.Add(ctx, Fact{Category: CategoryPricing, Content: "Chibi: $150"})
	require.NoError(t, err)

	loaded := store.Load(ctx)
	assert.Equal(t, added, loaded)
}
