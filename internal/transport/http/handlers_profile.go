package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/reader"
)

//go:generate mockgen -source=handlers_profile.go -destination=mocks/profile_mocks.go -package=mocks

// ProfileService supplies the combined owner view.
type ProfileService interface {
	Profile(ctx context.Context, ownerID string) reader.Profile
}

// ProfileHandler serves the owner document with records and stats in one
// response, so the profile page needs a single round trip.
type ProfileHandler struct {
	profiles ProfileService
	identity identity.Provider
}

func NewProfileHandler(profiles ProfileService, provider identity.Provider) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, identity: provider}
}

func (h *ProfileHandler) Register(r chi.Router) {
	r.Get("/me", h.handleProfile)
}

func (h *ProfileHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := h.identity.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.profiles.Profile(r.Context(), owner))
}
