package reader

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/index"
	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// Aggregator computes the per-owner views. List and stats reads fail soft: a
// store outage yields an empty result plus a warning log, never an error, so
// the presentation layer stays up.
type Aggregator struct {
	owners  *index.Owners
	batcher *Batcher
	logger  *slog.Logger
}

func NewAggregator(owners *index.Owners, batcher *Batcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{owners: owners, batcher: batcher, logger: logger}
}

// Profile is the owner document together with the synchronized record list
// and its summary, fetched in one call.
type Profile struct {
	Owner   docstore.Fields    `json:"owner"`
	Records []insurance.Record `json:"insurances"`
	Stats   insurance.Stats    `json:"stats"`
}

// ListAll returns the owner's records sorted ascending by due date.
// Canonical dates make lexicographic order chronological; the sort is stable
// so equal due dates keep retrieval order.
func (a *Aggregator) ListAll(ctx context.Context, ownerID string) []insurance.Record {
	entries, err := a.owners.List(ctx, ownerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		a.warn(ctx, "list owner index failed", ownerID, err)
		return nil
	}

	records, err := a.batcher.FetchByIDs(ctx, insurance.EntryIDs(entries))
	if err != nil {
		a.warn(ctx, "fetch records failed", ownerID, err)
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DueDate < records[j].DueDate
	})
	return records
}

// ListActive returns the active subset of ListAll, same order.
func (a *Aggregator) ListActive(ctx context.Context, ownerID string) []insurance.Record {
	all := a.ListAll(ctx, ownerID)
	active := all[:0:0]
	for _, r := range all {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}

// Stats summarizes the owner's records. Zero records yield all-zero stats.
func (a *Aggregator) Stats(ctx context.Context, ownerID string) insurance.Stats {
	return insurance.ComputeStats(a.ListAll(ctx, ownerID))
}

// GetByID returns one record, enforcing that the acting owner's index
// references it. Unlike the list reads this is a targeted lookup and reports
// errors: NotOwned when the id is outside the index even if the record
// exists, NotFound when the index references a record that is gone (the
// delete-order transient, surfaced as absence).
func (a *Aggregator) GetByID(ctx context.Context, ownerID, id string) (insurance.Record, error) {
	entries, err := a.owners.List(ctx, ownerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return insurance.Record{}, dErrors.New(dErrors.CodeNotOwned, "id not in owner index")
	}
	if err != nil {
		return insurance.Record{}, err
	}
	if !containsID(entries, id) {
		return insurance.Record{}, dErrors.New(dErrors.CodeNotOwned, "id not in owner index")
	}

	records, err := a.batcher.FetchByIDs(ctx, []string{id})
	if err != nil {
		return insurance.Record{}, err
	}
	if len(records) == 0 {
		return insurance.Record{}, docstore.ErrNotFound
	}
	return records[0], nil
}

// Profile returns the owner document with records and stats. An absent owner
// document yields the empty profile, not an error.
func (a *Aggregator) Profile(ctx context.Context, ownerID string) Profile {
	owner, err := a.owners.OwnerDoc(ctx, ownerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return Profile{}
	}
	if err != nil {
		a.warn(ctx, "load owner document failed", ownerID, err)
		return Profile{}
	}
	records := a.ListAll(ctx, ownerID)
	return Profile{
		Owner:   owner,
		Records: records,
		Stats:   insurance.ComputeStats(records),
	}
}

func (a *Aggregator) warn(ctx context.Context, msg, ownerID string, err error) {
	if a.logger != nil {
		a.logger.WarnContext(ctx, msg, "owner", ownerID, "err", err)
	}
}

func containsID(entries []insurance.IndexEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
