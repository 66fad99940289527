//go:build integration

package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/pkg/testutil/containers"
)

func TestPostgresStore_Integration(t *testing.T) {
	pg := containers.NewPostgresContainer(t)

	store, err := docstore.NewPostgresStore(context.Background(), pg.DB)
	require.NoError(t, err)

	runStoreSuite(t, store)
}

func TestRedisStore_Integration(t *testing.T) {
	rc := containers.NewRedisContainer(t)

	runStoreSuite(t, docstore.NewRedisStore(rc.Client))
}

// runStoreSuite exercises the full Store contract against a live backend.
// Both implementations must behave exactly like the memory store.
func runStoreSuite(t *testing.T, store docstore.Store) {
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		id, err := store.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{
			"name":   "Home",
			"price":  float64(120),
			"active": true,
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		fields, err := store.GetDoc(ctx, docstore.InsurancesCollection, id)
		require.NoError(t, err)
		assert.Equal(t, "Home", fields["name"])
		assert.Equal(t, float64(120), fields["price"])
		assert.Equal(t, true, fields["active"])
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := store.GetDoc(ctx, docstore.InsurancesCollection, "no-such-doc")
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("set replaces full document", func(t *testing.T) {
		err := store.SetDoc(ctx, docstore.UsersCollection, "owner-1", docstore.Fields{
			"email":      "anna@example.com",
			"insurances": []any{},
		})
		require.NoError(t, err)

		err = store.SetDoc(ctx, docstore.UsersCollection, "owner-1", docstore.Fields{
			"email": "anna@example.com",
		})
		require.NoError(t, err)

		fields, err := store.GetDoc(ctx, docstore.UsersCollection, "owner-1")
		require.NoError(t, err)
		assert.NotContains(t, fields, "insurances")
	})

	t.Run("update merges partial fields", func(t *testing.T) {
		id, err := store.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{
			"name":   "Car",
			"active": true,
		})
		require.NoError(t, err)

		err = store.UpdateDoc(ctx, docstore.InsurancesCollection, id, docstore.Fields{"active": false})
		require.NoError(t, err)

		fields, err := store.GetDoc(ctx, docstore.InsurancesCollection, id)
		require.NoError(t, err)
		assert.Equal(t, "Car", fields["name"])
		assert.Equal(t, false, fields["active"])
	})

	t.Run("update missing", func(t *testing.T) {
		err := store.UpdateDoc(ctx, docstore.InsurancesCollection, "no-such-doc", docstore.Fields{"active": false})
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("delete then get", func(t *testing.T) {
		id, err := store.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{"name": "Gone"})
		require.NoError(t, err)

		require.NoError(t, store.DeleteDoc(ctx, docstore.InsurancesCollection, id))

		_, err = store.GetDoc(ctx, docstore.InsurancesCollection, id)
		assert.ErrorIs(t, err, docstore.ErrNotFound)

		err = store.DeleteDoc(ctx, docstore.InsurancesCollection, id)
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("membership query skips missing ids", func(t *testing.T) {
		var ids []string
		for _, name := range []string{"A", "B", "C"} {
			id, err := store.CreateDoc(ctx, docstore.InsurancesCollection, docstore.Fields{"name": name})
			require.NoError(t, err)
			ids = append(ids, id)
		}

		docs, err := store.QueryMembership(ctx, docstore.InsurancesCollection,
			[]string{ids[0], "no-such-doc", ids[2]})
		require.NoError(t, err)
		require.Len(t, docs, 2)

		got := map[string]bool{}
		for _, doc := range docs {
			got[doc.ID] = true
		}
		assert.True(t, got[ids[0]])
		assert.True(t, got[ids[2]])
	})

	t.Run("membership query rejects oversized batches", func(t *testing.T) {
		ids := make([]string, docstore.MaxBatch+1)
		for i := range ids {
			ids[i] = "id"
		}
		_, err := store.QueryMembership(ctx, docstore.InsurancesCollection, ids)
		assert.ErrorIs(t, err, docstore.ErrBatchTooLarge)
	})
}
