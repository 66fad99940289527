// Package docstore defines the key-addressed document store port the
// insurance layers are built on, plus memory, Postgres and Redis
// implementations. The store offers no cross-document atomicity; keeping
// multi-document writes consistent is the synchronization engine's job.
package docstore

import (
	"context"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// MaxBatch is the membership-query cap. Queries above this size are rejected
// by every implementation, mirroring the backing store's own limit.
const MaxBatch = 10

// Collection names used by the insurance layers.
const (
	InsurancesCollection = "Insurances"
	UsersCollection      = "Users"
)

// Fields is a single document's content. Values hold what encoding/json
// produces for the corresponding wire types (string, float64, bool, nested
// maps and slices).
type Fields map[string]any

// Doc pairs a document id with its fields.
type Doc struct {
	ID     string
	Fields Fields
}

var (
	// ErrNotFound keeps store-level 404s consistent across implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "document not found")
	// ErrBatchTooLarge is returned when a membership query exceeds MaxBatch.
	ErrBatchTooLarge = dErrors.Newf(dErrors.CodeValidation, "membership query exceeds %d ids", MaxBatch)
)

// Store is interface-driven so domain code stays testable and persistence can
// be swapped without rewiring business logic.
type Store interface {
	// CreateDoc stores fields under a generated id and returns that id.
	CreateDoc(ctx context.Context, collection string, fields Fields) (string, error)
	// SetDoc writes a full document under a caller-chosen id, creating or
	// replacing it. Owner documents are keyed by external identity.
	SetDoc(ctx context.Context, collection, id string, fields Fields) error
	// GetDoc returns the document or ErrNotFound.
	GetDoc(ctx context.Context, collection, id string) (Fields, error)
	// UpdateDoc merges partial fields into an existing document.
	// Returns ErrNotFound when the document does not exist.
	UpdateDoc(ctx context.Context, collection, id string, partial Fields) error
	// DeleteDoc removes the document. Returns ErrNotFound when absent.
	DeleteDoc(ctx context.Context, collection, id string) error
	// QueryMembership returns the documents whose id is in ids. Missing ids
	// are skipped, never an error. len(ids) must not exceed MaxBatch.
	QueryMembership(ctx context.Context, collection string, ids []string) ([]Doc, error)
}
