// Package service orchestrates the multi-step mutations that keep the
// authoritative Insurances collection and the per-owner index consistent.
// The two writes of each mutation are not atomic in the store; this engine
// owns the ordering, the compensation on intermediate failure, and the
// per-owner serialization that the store cannot provide.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/BartokGyorgy07/webkert-insurance/internal/audit"
	"github.com/BartokGyorgy07/webkert-insurance/internal/dates"
	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/metrics"
	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// clearConcurrency bounds the independent deletes of a bulk clear.
const clearConcurrency = 4

// RecordStore is the authoritative record CRUD the engine writes through.
type RecordStore interface {
	Create(ctx context.Context, r insurance.Record) (string, error)
	Get(ctx context.Context, id string) (insurance.Record, error)
	Update(ctx context.Context, id string, patch insurance.Patch) error
	Delete(ctx context.Context, id string) error
}

// OwnerIndex is the denormalized per-owner reference list.
type OwnerIndex interface {
	List(ctx context.Context, ownerID string) ([]insurance.IndexEntry, error)
	AddEntry(ctx context.Context, ownerID string, entry insurance.IndexEntry) error
	ReplaceAll(ctx context.Context, ownerID string, entries []insurance.IndexEntry) error
}

// Lister supplies the synchronized record list for bulk clear. Reads fail
// soft, so a store outage shows up here as an empty list and the clear
// no-ops instead of deleting blind.
type Lister interface {
	ListAll(ctx context.Context, ownerID string) []insurance.Record
}

// Engine is the synchronization engine. All operations resolve the acting
// owner through the identity provider and act only on that owner's index.
type Engine struct {
	identity identity.Provider
	records  RecordStore
	owners   OwnerIndex
	lister   Lister
	audit    *audit.Publisher
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	locks    ownerLocks

	// storeTimeout bounds each mutating operation; expiry is classified as
	// a timeout by the store layer.
	storeTimeout time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

func WithAudit(pub *audit.Publisher) Option {
	return func(e *Engine) { e.audit = pub }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithStoreTimeout(d time.Duration) Option {
	return func(e *Engine) { e.storeTimeout = d }
}

func New(provider identity.Provider, records RecordStore, owners OwnerIndex, lister Lister, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		identity:     provider,
		records:      records,
		owners:       owners,
		lister:       lister,
		logger:       logger,
		tracer:       otel.Tracer("webkert-insurance/engine"),
		storeTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add creates a record and links it into the owner's index. On index-write
// failure the just-created record is deleted again (compensation); if that
// also fails the orphan is logged and the original failure returned.
func (e *Engine) Add(ctx context.Context, draft insurance.Draft) (insurance.Record, error) {
	ctx, span, finish := e.begin(ctx, "engine.Add")
	defer span.End()

	owner, err := e.identity.CurrentOwner(ctx)
	if err != nil {
		return insurance.Record{}, finish(err)
	}
	if err := draft.Validate(); err != nil {
		return insurance.Record{}, finish(err)
	}
	dueDate, err := dates.Canonicalize(draft.DueDate)
	if err != nil {
		return insurance.Record{}, finish(dErrors.Wrap(err, dErrors.CodeValidation, "due date is not a recognizable date"))
	}

	defer e.locks.lock(owner).Unlock()

	record := insurance.Record{
		Name:        draft.Name,
		Price:       draft.Price,
		DueDate:     dueDate,
		Active:      draft.Active,
		Description: draft.Description,
	}
	id, err := e.records.Create(ctx, record)
	if err != nil {
		return insurance.Record{}, finish(err)
	}
	record.ID = id

	if err := e.owners.AddEntry(ctx, owner, insurance.BareEntry(id)); err != nil {
		// Compensate so the record does not dangle without an index entry.
		if rbErr := e.records.Delete(ctx, id); rbErr != nil {
			e.logger.ErrorContext(ctx, "orphaned record: index write and compensation both failed",
				"owner", owner, "record", id, "index_err", err, "compensation_err", rbErr)
		}
		return insurance.Record{}, finish(err)
	}

	e.metrics.IncRecordsCreated()
	e.emit(ctx, audit.Event{OwnerID: owner, Action: audit.ActionRecordCreated, RecordID: id})
	return record, finish(nil)
}

// Update applies a partial update to a record the owner holds. The legacy
// embedded copies in old index entries are deliberately not rewritten here;
// the engine only writes bare-id entries.
func (e *Engine) Update(ctx context.Context, id string, patch insurance.Patch) error {
	ctx, span, finish := e.begin(ctx, "engine.Update")
	defer span.End()
	return finish(e.update(ctx, id, patch, audit.ActionRecordUpdated))
}

// ToggleStatus flips a record's active flag. Sugar over Update.
func (e *Engine) ToggleStatus(ctx context.Context, id string, active bool) error {
	ctx, span, finish := e.begin(ctx, "engine.ToggleStatus")
	defer span.End()
	return finish(e.update(ctx, id, insurance.Patch{Active: &active}, audit.ActionStatusToggled))
}

func (e *Engine) update(ctx context.Context, id string, patch insurance.Patch, action audit.Action) error {
	owner, err := e.identity.CurrentOwner(ctx)
	if err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.DueDate != nil {
		canonical, err := dates.Canonicalize(*patch.DueDate)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "due date is not a recognizable date")
		}
		patch.DueDate = &canonical
	}

	defer e.locks.lock(owner).Unlock()

	if err := e.requireOwnership(ctx, owner, id); err != nil {
		return err
	}
	if err := e.records.Update(ctx, id, patch); err != nil {
		return err
	}
	e.emit(ctx, audit.Event{OwnerID: owner, Action: action, RecordID: id})
	return nil
}

// Delete removes a record and its index entry, record first. A concurrent
// read in the window between the two writes sees a dangling index entry and
// skips it. When the record is already gone the index entry is still
// removed (repair) and NotFound reported.
func (e *Engine) Delete(ctx context.Context, id string) error {
	ctx, span, finish := e.begin(ctx, "engine.Delete")
	defer span.End()

	owner, err := e.identity.CurrentOwner(ctx)
	if err != nil {
		return finish(err)
	}

	defer e.locks.lock(owner).Unlock()

	entries, err := e.owners.List(ctx, owner)
	if err != nil {
		return finish(ownershipErr(err))
	}
	if !containsID(entries, id) {
		return finish(dErrors.New(dErrors.CodeNotOwned, "id not in owner index"))
	}

	deleteErr := e.records.Delete(ctx, id)
	if deleteErr != nil && !errors.Is(deleteErr, docstore.ErrNotFound) {
		return finish(deleteErr)
	}

	kept := entries[:0:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if err := e.owners.ReplaceAll(ctx, owner, kept); err != nil {
		return finish(err)
	}

	if deleteErr == nil {
		e.metrics.IncRecordsDeleted(1)
	}
	e.emit(ctx, audit.Event{OwnerID: owner, Action: audit.ActionRecordDeleted, RecordID: id})
	return finish(deleteErr)
}

// ClearResult reports the outcome of a bulk clear. Failed names the inactive
// records removed from the index whose authoritative delete failed; they are
// orphans until a retry succeeds.
type ClearResult struct {
	Cleared []string `json:"cleared"`
	Failed  []string `json:"failed,omitempty"`
}

// ClearInactive removes every inactive record. The index is rewritten first,
// then the record deletes run independently; any subset may fail, which is
// surfaced as a partial-failure error together with the failed ids, never
// swallowed.
func (e *Engine) ClearInactive(ctx context.Context) (ClearResult, error) {
	ctx, span, finish := e.begin(ctx, "engine.ClearInactive")
	defer span.End()

	owner, err := e.identity.CurrentOwner(ctx)
	if err != nil {
		return ClearResult{}, finish(err)
	}

	defer e.locks.lock(owner).Unlock()

	inactive := make(map[string]bool)
	for _, r := range e.lister.ListAll(ctx, owner) {
		if !r.Active {
			inactive[r.ID] = true
		}
	}
	if len(inactive) == 0 {
		return ClearResult{}, finish(nil)
	}

	entries, err := e.owners.List(ctx, owner)
	if err != nil {
		return ClearResult{}, finish(ownershipErr(err))
	}
	kept := entries[:0:0]
	for _, entry := range entries {
		if !inactive[entry.ID] {
			kept = append(kept, entry)
		}
	}
	if err := e.owners.ReplaceAll(ctx, owner, kept); err != nil {
		return ClearResult{}, finish(err)
	}

	// The per-record deletes are commutative and idempotent, so they may run
	// concurrently. Failures are collected, not short-circuited.
	var (
		mu     sync.Mutex
		result ClearResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(clearConcurrency)
	for id := range inactive {
		g.Go(func() error {
			err := e.records.Delete(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && !errors.Is(err, docstore.ErrNotFound) {
				result.Failed = append(result.Failed, id)
				return nil
			}
			result.Cleared = append(result.Cleared, id)
			return nil
		})
	}
	_ = g.Wait()
	sort.Strings(result.Cleared)
	sort.Strings(result.Failed)

	e.metrics.IncRecordsDeleted(len(result.Cleared))
	e.emit(ctx, audit.Event{OwnerID: owner, Action: audit.ActionInactiveCleared, FailedIDs: result.Failed})

	if len(result.Failed) > 0 {
		e.metrics.IncPartialFailures()
		e.logger.WarnContext(ctx, "bulk clear left orphaned records",
			"owner", owner, "failed", result.Failed)
		return result, finish(dErrors.Newf(dErrors.CodePartialFailure,
			"%d of %d inactive records could not be deleted", len(result.Failed), len(inactive)))
	}
	return result, finish(nil)
}

// requireOwnership enforces invariant I3: the id must be referenced by the
// acting owner's index, even if the record exists in the authoritative
// collection.
func (e *Engine) requireOwnership(ctx context.Context, owner, id string) error {
	entries, err := e.owners.List(ctx, owner)
	if err != nil {
		return ownershipErr(err)
	}
	if !containsID(entries, id) {
		return dErrors.New(dErrors.CodeNotOwned, "id not in owner index")
	}
	return nil
}

// ownershipErr maps a missing owner document to NotOwned: an owner without
// an index owns nothing.
func ownershipErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotOwned, "owner has no index")
	}
	return err
}

func containsID(entries []insurance.IndexEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// begin opens a span and a bounded context for one operation and returns a
// finish func that records the outcome on the span and latency metric.
func (e *Engine) begin(ctx context.Context, op string) (context.Context, trace.Span, func(error) error) {
	ctx, span := e.tracer.Start(ctx, op)
	cancel := context.CancelFunc(func() {})
	if e.storeTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			ctx, cancel = context.WithTimeout(ctx, e.storeTimeout)
		}
	}
	start := time.Now()
	finish := func(err error) error {
		cancel()
		e.metrics.ObserveOperation(op, time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
		}
		return err
	}
	return ctx, span, finish
}

func (e *Engine) emit(ctx context.Context, event audit.Event) {
	if err := e.audit.Emit(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "err", err)
	}
}
