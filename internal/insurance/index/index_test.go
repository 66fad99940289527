package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
)

const owner = "owner-1"

func seedOwner(t *testing.T, docs *docstore.MemoryStore, entries []any) {
	t.Helper()
	require.NoError(t, docs.SetDoc(context.Background(), docstore.UsersCollection, owner, docstore.Fields{
		"email":      "owner@example.com",
		"insurances": entries,
	}))
}

func TestListMissingOwnerIsNotFound(t *testing.T) {
	owners := NewOwners(docstore.NewMemoryStore())
	_, err := owners.List(context.Background(), "nobody")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestListDecodesMixedEntryShapes(t *testing.T) {
	ctx := context.Background()
	docs := docstore.NewMemoryStore()
	seedOwner(t, docs, []any{"a", map[string]any{"id": "b", "name": "Car"}, 42})

	entries, err := NewOwners(docs).List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, insurance.EntryIDs(entries), "unreadable entries are dropped")
	assert.NotNil(t, entries[1].Embedded)
}

func TestAddEntryAppends(t *testing.T) {
	ctx := context.Background()
	docs := docstore.NewMemoryStore()
	seedOwner(t, docs, []any{"a"})
	owners := NewOwners(docs)

	require.NoError(t, owners.AddEntry(ctx, owner, insurance.BareEntry("b")))

	entries, err := owners.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, insurance.EntryIDs(entries))
}

func TestAddEntryCreatesAbsentOwnerDoc(t *testing.T) {
	ctx := context.Background()
	owners := NewOwners(docstore.NewMemoryStore())

	require.NoError(t, owners.AddEntry(ctx, owner, insurance.BareEntry("a")))

	entries, err := owners.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, insurance.EntryIDs(entries))
}

func TestRemoveEntry(t *testing.T) {
	ctx := context.Background()
	docs := docstore.NewMemoryStore()
	seedOwner(t, docs, []any{"a", "b", "c"})
	owners := NewOwners(docs)

	require.NoError(t, owners.RemoveEntry(ctx, owner, "b"))
	entries, err := owners.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, insurance.EntryIDs(entries))

	// Removing an unknown id leaves the index unchanged.
	require.NoError(t, owners.RemoveEntry(ctx, owner, "zzz"))
	entries, err = owners.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, insurance.EntryIDs(entries))
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	docs := docstore.NewMemoryStore()
	seedOwner(t, docs, []any{"a", "b", "c"})
	owners := NewOwners(docs)

	require.NoError(t, owners.ReplaceAll(ctx, owner, []insurance.IndexEntry{insurance.BareEntry("a")}))
	entries, err := owners.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, insurance.EntryIDs(entries))

	// The rest of the owner document is untouched by index rewrites.
	fields, err := owners.OwnerDoc(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", fields["email"])

	assert.ErrorIs(t, owners.ReplaceAll(ctx, "nobody", nil), docstore.ErrNotFound)
}
