// Package reader implements the read side: batched membership retrieval
// against the capped store query, and the aggregated per-owner views built
// on top of it.
package reader

import (
	"context"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/metrics"
)

// Batcher fetches records by id in chunks the store's membership query
// accepts. It makes no ordering guarantee; consumers sort.
type Batcher struct {
	docs    docstore.Store
	metrics *metrics.Metrics
}

func NewBatcher(docs docstore.Store, m *metrics.Metrics) *Batcher {
	return &Batcher{docs: docs, metrics: m}
}

// FetchByIDs retrieves the records for ids, issuing ceil(len/MaxBatch)
// membership queries. Ids without a record are skipped; duplicated input ids
// are queried once. Empty input issues no query.
func (b *Batcher) FetchByIDs(ctx context.Context, ids []string) ([]insurance.Record, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var records []insurance.Record
	for start := 0; start < len(ids); start += docstore.MaxBatch {
		end := min(start+docstore.MaxBatch, len(ids))
		docs, err := b.docs.QueryMembership(ctx, docstore.InsurancesCollection, ids[start:end])
		if err != nil {
			return nil, err
		}
		b.metrics.IncMembershipQueries()
		for _, doc := range docs {
			records = append(records, insurance.FromDoc(doc))
		}
	}
	return records, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
