package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/service"
	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

//go:generate mockgen -source=handlers_insurance.go -destination=mocks/insurance_mocks.go -package=mocks

// EngineService is the write side consumed by the handler.
type EngineService interface {
	Add(ctx context.Context, draft insurance.Draft) (insurance.Record, error)
	Update(ctx context.Context, id string, patch insurance.Patch) error
	ToggleStatus(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	ClearInactive(ctx context.Context) (service.ClearResult, error)
}

// ReaderService is the read side consumed by the handler.
type ReaderService interface {
	ListAll(ctx context.Context, ownerID string) []insurance.Record
	ListActive(ctx context.Context, ownerID string) []insurance.Record
	Stats(ctx context.Context, ownerID string) insurance.Stats
	GetByID(ctx context.Context, ownerID, id string) (insurance.Record, error)
}

// InsuranceHandler handles the insurance CRUD endpoints.
type InsuranceHandler struct {
	engine   EngineService
	reader   ReaderService
	identity identity.Provider
	logger   *slog.Logger
}

func NewInsuranceHandler(engine EngineService, reader ReaderService, provider identity.Provider, logger *slog.Logger) *InsuranceHandler {
	return &InsuranceHandler{engine: engine, reader: reader, identity: provider, logger: logger}
}

// Register mounts the insurance routes. Static segments are registered
// before the id parameter so /insurances/inactive is not captured as an id.
func (h *InsuranceHandler) Register(r chi.Router) {
	r.Route("/insurances", func(r chi.Router) {
		r.Get("/", h.handleListAll)
		r.Get("/active", h.handleListActive)
		r.Get("/stats", h.handleStats)
		r.Post("/", h.handleAdd)
		r.Delete("/inactive", h.handleClearInactive)
		r.Get("/{id}", h.handleGet)
		r.Patch("/{id}", h.handleUpdate)
		r.Patch("/{id}/status", h.handleToggle)
		r.Delete("/{id}", h.handleDelete)
	})
}

type addRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DueDate     string  `json:"dueDate"`
	Active      bool    `json:"active"`
	Description string  `json:"description"`
}

type updateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	DueDate     *string  `json:"dueDate"`
	Active      *bool    `json:"active"`
	Description *string  `json:"description"`
}

type toggleRequest struct {
	Active *bool `json:"active"`
}

func (h *InsuranceHandler) handleListAll(w http.ResponseWriter, r *http.Request) {
	owner, err := h.identity.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(h.reader.ListAll(r.Context(), owner)))
}

func (h *InsuranceHandler) handleListActive(w http.ResponseWriter, r *http.Request) {
	owner, err := h.identity.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(h.reader.ListActive(r.Context(), owner)))
}

func (h *InsuranceHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	owner, err := h.identity.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.reader.Stats(r.Context(), owner))
}

func (h *InsuranceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	owner, err := h.identity.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	record, err := h.reader.GetByID(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *InsuranceHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rejectBody(w, r, err)
		return
	}
	record, err := h.engine.Add(r.Context(), insurance.Draft{
		Name:        req.Name,
		Price:       req.Price,
		DueDate:     req.DueDate,
		Active:      req.Active,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *InsuranceHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rejectBody(w, r, err)
		return
	}
	patch := insurance.Patch{
		Name:        req.Name,
		Price:       req.Price,
		DueDate:     req.DueDate,
		Active:      req.Active,
		Description: req.Description,
	}
	if err := h.engine.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InsuranceHandler) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rejectBody(w, r, err)
		return
	}
	if req.Active == nil {
		writeError(w, dErrors.New(dErrors.CodeValidation, "active flag is required"))
		return
	}
	if err := h.engine.ToggleStatus(r.Context(), chi.URLParam(r, "id"), *req.Active); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InsuranceHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClearInactive returns 200 on full success and 207 when a subset of
// deletes failed; the body always carries the cleared and failed ids so the
// caller can retry just the failures.
func (h *InsuranceHandler) handleClearInactive(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.ClearInactive(r.Context())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodePartialFailure) {
			writeJSON(w, http.StatusMultiStatus, result)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// rejectBody answers undecodable request bodies. The decode error is logged
// at debug, never echoed to the caller.
func (h *InsuranceHandler) rejectBody(w http.ResponseWriter, r *http.Request, err error) {
	if h.logger != nil {
		h.logger.DebugContext(r.Context(), "request body rejected", "path", r.URL.Path, "err", err)
	}
	writeError(w, dErrors.New(dErrors.CodeValidation, "malformed request body"))
}

func orEmpty(records []insurance.Record) []insurance.Record {
	if records == nil {
		return []insurance.Record{}
	}
	return records
}
