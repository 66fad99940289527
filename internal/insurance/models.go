// Package insurance holds the domain model for recurring insurance
// obligations: the authoritative record, the denormalized per-owner index
// entries, and validation applied before anything reaches the store.
package insurance

import (
	"strings"
	"unicode/utf8"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

const (
	minNameLength        = 3
	maxDescriptionLength = 200
)

// Record is the authoritative insurance item. DueDate is always canonical
// YYYY-MM-DD once stored.
type Record struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DueDate     string  `json:"dueDate"`
	Active      bool    `json:"active"`
	Description string  `json:"description,omitempty"`
}

// Draft carries the fields of a record before it has an id. DueDate is `any`
// because the presentation layer supplies anything from a canonical string to
// a full timestamp; the engine canonicalizes it before the store sees it.
type Draft struct {
	Name        string
	Price       float64
	DueDate     any
	Active      bool
	Description string
}

// Validate rejects drafts that must never reach the store.
func (d Draft) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < minNameLength {
		return dErrors.Newf(dErrors.CodeValidation, "name must be at least %d characters", minNameLength)
	}
	if d.Price < 0 {
		return dErrors.New(dErrors.CodeValidation, "price must not be negative")
	}
	if utf8.RuneCountInString(d.Description) > maxDescriptionLength {
		return dErrors.Newf(dErrors.CodeValidation, "description must not exceed %d characters", maxDescriptionLength)
	}
	return nil
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Price       *float64
	DueDate     *string
	Active      *bool
	Description *string
}

// Validate rejects patches with out-of-range values.
func (p Patch) Validate() error {
	if p.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*p.Name)) < minNameLength {
		return dErrors.Newf(dErrors.CodeValidation, "name must be at least %d characters", minNameLength)
	}
	if p.Price != nil && *p.Price < 0 {
		return dErrors.New(dErrors.CodeValidation, "price must not be negative")
	}
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxDescriptionLength {
		return dErrors.Newf(dErrors.CodeValidation, "description must not exceed %d characters", maxDescriptionLength)
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.DueDate == nil && p.Active == nil && p.Description == nil
}

// Fields renders only the set fields for a partial document update.
func (p Patch) Fields() docstore.Fields {
	fields := docstore.Fields{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.DueDate != nil {
		fields["dueDate"] = *p.DueDate
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	return fields
}

// Stats summarizes an owner's records.
type Stats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Inactive       int     `json:"inactive"`
	CompletionRate float64 `json:"completionRate"`
}

// ComputeStats derives the summary from a record list. CompletionRate is 0
// for an empty list, never NaN.
func ComputeStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	for _, r := range records {
		if r.Active {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Active) / float64(stats.Total) * 100
	}
	return stats
}

// FieldsOf renders a record's content as store fields. The id is written into
// the document as well so historical readers that rely on the embedded id
// keep working.
func FieldsOf(r Record) docstore.Fields {
	fields := docstore.Fields{
		"id":      r.ID,
		"name":    r.Name,
		"price":   r.Price,
		"dueDate": r.DueDate,
		"active":  r.Active,
	}
	if r.Description != "" {
		fields["description"] = r.Description
	}
	return fields
}

// FromDoc decodes a stored document into a record. The document id wins over
// any embedded id field.
func FromDoc(doc docstore.Doc) Record {
	r := Record{ID: doc.ID}
	if v, ok := doc.Fields["name"].(string); ok {
		r.Name = v
	}
	if v, ok := doc.Fields["price"].(float64); ok {
		r.Price = v
	}
	if v, ok := doc.Fields["dueDate"].(string); ok {
		r.DueDate = v
	}
	if v, ok := doc.Fields["active"].(bool); ok {
		r.Active = v
	}
	if v, ok := doc.Fields["description"].(string); ok {
		r.Description = v
	}
	return r
}
