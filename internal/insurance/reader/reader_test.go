package reader

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/index"
	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

const owner = "owner-1"

// countingStore tracks membership queries issued against the wrapped store.
type countingStore struct {
	docstore.Store
	queries int
}

func (c *countingStore) QueryMembership(ctx context.Context, collection string, ids []string) ([]docstore.Doc, error) {
	c.queries++
	return c.Store.QueryMembership(ctx, collection, ids)
}

// failingStore errors on every read.
type failingStore struct {
	docstore.Store
}

func (f *failingStore) GetDoc(context.Context, string, string) (docstore.Fields, error) {
	return nil, dErrors.New(dErrors.CodeUnavailable, "backend down")
}

func (f *failingStore) QueryMembership(context.Context, string, []string) ([]docstore.Doc, error) {
	return nil, dErrors.New(dErrors.CodeUnavailable, "backend down")
}

func seed(t *testing.T, docs *docstore.MemoryStore, n int) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := docs.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{
			"name":    fmt.Sprintf("Policy %02d", i),
			"price":   100.0,
			"dueDate": fmt.Sprintf("2025-01-%02d", i%28+1),
			"active":  i%2 == 0,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, docs.SetDoc(ctx, docstore.UsersCollection, owner, docstore.Fields{
		"insurances": toAny(ids),
	}))
	return ids
}

func toAny(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func TestFetchByIDsChunking(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	ids := seed(t, mem, 23)
	counting := &countingStore{Store: mem}
	batcher := NewBatcher(counting, nil)

	records, err := batcher.FetchByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, records, 23)
	assert.Equal(t, 3, counting.queries, "23 ids need chunks of 10, 10, 3")
}

func TestFetchByIDsEmptyInputIssuesNoQuery(t *testing.T) {
	counting := &countingStore{Store: docstore.NewMemoryStore()}
	records, err := NewBatcher(counting, nil).FetchByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, counting.queries)
}

func TestFetchByIDsSkipsMissingAndDedupes(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	ids := seed(t, mem, 2)
	batcher := NewBatcher(mem, nil)

	records, err := batcher.FetchByIDs(ctx, []string{ids[0], "missing", ids[0], ids[1]})
	require.NoError(t, err)
	assert.Len(t, records, 2, "missing ids skipped, duplicates fetched once")
}

func newAggregator(docs docstore.Store) *Aggregator {
	return NewAggregator(index.NewOwners(docs), NewBatcher(docs, nil), slog.Default())
}

func TestListAllSortedByDueDate(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	seed(t, mem, 15)

	records := newAggregator(mem).ListAll(ctx, owner)
	require.Len(t, records, 15)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].DueDate, records[i].DueDate)
	}
}

func TestListAllUnknownOwnerIsEmpty(t *testing.T) {
	records := newAggregator(docstore.NewMemoryStore()).ListAll(context.Background(), "nobody")
	assert.Empty(t, records)
}

func TestListAllFailsSoft(t *testing.T) {
	mem := docstore.NewMemoryStore()
	seed(t, mem, 3)
	agg := newAggregator(&failingStore{Store: mem})

	assert.Empty(t, agg.ListAll(context.Background(), owner))
	assert.Equal(t, insurance.Stats{}, agg.Stats(context.Background(), owner))
}

func TestListActiveFilters(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	seed(t, mem, 10)

	active := newAggregator(mem).ListActive(ctx, owner)
	require.NotEmpty(t, active)
	for _, r := range active {
		assert.True(t, r.Active)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	seed(t, mem, 4) // seeded alternating: 2 active, 2 inactive

	stats := newAggregator(mem).Stats(ctx, owner)
	assert.Equal(t, insurance.Stats{Total: 4, Active: 2, Inactive: 2, CompletionRate: 50}, stats)
}

func TestStatsZeroRecords(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	require.NoError(t, mem.SetDoc(ctx, docstore.UsersCollection, owner, docstore.Fields{"insurances": []any{}}))

	stats := newAggregator(mem).Stats(ctx, owner)
	assert.Equal(t, insurance.Stats{Total: 0, Active: 0, Inactive: 0, CompletionRate: 0}, stats)
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	ids := seed(t, mem, 2)

	// A record belonging to someone else: exists but not in owner's index.
	foreign, err := mem.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{"name": "Foreign", "active": true})
	require.NoError(t, err)

	agg := newAggregator(mem)

	got, err := agg.GetByID(ctx, owner, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)

	_, err = agg.GetByID(ctx, owner, foreign)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotOwned))

	_, err = agg.GetByID(ctx, "nobody", ids[0])
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotOwned))
}

func TestGetByIDDanglingIndexEntry(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	ids := seed(t, mem, 1)

	// Simulate the delete-order transient: record gone, index entry not yet.
	require.NoError(t, mem.DeleteDoc(ctx, docstore.InsurancesCollection, ids[0]))

	_, err := newAggregator(mem).GetByID(ctx, owner, ids[0])
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	seed(t, mem, 4)

	profile := newAggregator(mem).Profile(ctx, owner)
	assert.Len(t, profile.Records, 4)
	assert.Equal(t, 4, profile.Stats.Total)
	assert.NotNil(t, profile.Owner)

	empty := newAggregator(mem).Profile(ctx, "nobody")
	assert.Equal(t, Profile{}, empty)
}
