// Package store wraps the authoritative Insurances collection with typed CRUD.
package store

import (
	"context"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
)

// Records is the authoritative record store. It operates on single documents
// only; the store gives no cross-record atomicity.
type Records struct {
	docs docstore.Store
}

func NewRecords(docs docstore.Store) *Records {
	return &Records{docs: docs}
}

// Create stores the record fields under a generated id and writes that id
// back into the document so the embedded copy matches the key.
func (s *Records) Create(ctx context.Context, r insurance.Record) (string, error) {
	fields := insurance.FieldsOf(r)
	delete(fields, "id")
	id, err := s.docs.CreateDoc(ctx, docstore.InsurancesCollection, fields)
	if err != nil {
		return "", err
	}
	if err := s.docs.UpdateDoc(ctx, docstore.InsurancesCollection, id, docstore.Fields{"id": id}); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the record or a NotFound error.
func (s *Records) Get(ctx context.Context, id string) (insurance.Record, error) {
	fields, err := s.docs.GetDoc(ctx, docstore.InsurancesCollection, id)
	if err != nil {
		return insurance.Record{}, err
	}
	return insurance.FromDoc(docstore.Doc{ID: id, Fields: fields}), nil
}

// Update applies the set fields of patch to the stored record.
func (s *Records) Update(ctx context.Context, id string, patch insurance.Patch) error {
	if patch.IsEmpty() {
		return nil
	}
	return s.docs.UpdateDoc(ctx, docstore.InsurancesCollection, id, patch.Fields())
}

// Delete removes the record. Deleting an absent record reports NotFound.
func (s *Records) Delete(ctx context.Context, id string) error {
	return s.docs.DeleteDoc(ctx, docstore.InsurancesCollection, id)
}
