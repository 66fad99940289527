// Package index maintains the denormalized per-owner list of record
// references stored in the owner's Users document. Every mutation is a
// read-modify-write that overwrites the whole insurances field, so writers
// must be serialized per owner (the engine holds a per-owner lock).
package index

import (
	"context"
	"errors"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
)

const entriesField = "insurances"

// Owners reads and writes owner index documents.
type Owners struct {
	docs docstore.Store
}

func NewOwners(docs docstore.Store) *Owners {
	return &Owners{docs: docs}
}

// List returns the owner's index entries. A missing owner document is
// reported as NotFound so callers can distinguish "no owner" from "owner
// with nothing tracked".
func (o *Owners) List(ctx context.Context, ownerID string) ([]insurance.IndexEntry, error) {
	fields, err := o.docs.GetDoc(ctx, docstore.UsersCollection, ownerID)
	if err != nil {
		return nil, err
	}
	return decodeEntries(fields), nil
}

// OwnerDoc returns the raw owner document (profile fields plus index).
func (o *Owners) OwnerDoc(ctx context.Context, ownerID string) (docstore.Fields, error) {
	return o.docs.GetDoc(ctx, docstore.UsersCollection, ownerID)
}

// AddEntry appends one entry to the owner's index. An absent owner document
// is created rather than silently dropping the reference, otherwise the
// just-created record would be orphaned.
func (o *Owners) AddEntry(ctx context.Context, ownerID string, entry insurance.IndexEntry) error {
	fields, err := o.docs.GetDoc(ctx, docstore.UsersCollection, ownerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return o.docs.SetDoc(ctx, docstore.UsersCollection, ownerID, docstore.Fields{
			entriesField: insurance.EntriesToField([]insurance.IndexEntry{entry}),
		})
	}
	if err != nil {
		return err
	}
	entries := append(decodeEntries(fields), entry)
	return o.writeEntries(ctx, ownerID, entries)
}

// RemoveEntry drops the entry referencing id. Removing an id that is not
// present rewrites the index unchanged.
func (o *Owners) RemoveEntry(ctx context.Context, ownerID, id string) error {
	fields, err := o.docs.GetDoc(ctx, docstore.UsersCollection, ownerID)
	if err != nil {
		return err
	}
	entries := decodeEntries(fields)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return o.writeEntries(ctx, ownerID, kept)
}

// ReplaceAll overwrites the owner's index with entries.
func (o *Owners) ReplaceAll(ctx context.Context, ownerID string, entries []insurance.IndexEntry) error {
	if _, err := o.docs.GetDoc(ctx, docstore.UsersCollection, ownerID); err != nil {
		return err
	}
	return o.writeEntries(ctx, ownerID, entries)
}

func (o *Owners) writeEntries(ctx context.Context, ownerID string, entries []insurance.IndexEntry) error {
	return o.docs.UpdateDoc(ctx, docstore.UsersCollection, ownerID, docstore.Fields{
		entriesField: insurance.EntriesToField(entries),
	})
}

func decodeEntries(fields docstore.Fields) []insurance.IndexEntry {
	raw, ok := fields[entriesField].([]any)
	if !ok {
		return nil
	}
	var entries []insurance.IndexEntry
	for _, v := range raw {
		if e, ok := insurance.EntryFromValue(v); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
