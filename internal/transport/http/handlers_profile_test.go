package httptransport

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BartokGyorgy07/webkert-insurance/internal/docstore"
	"github.com/BartokGyorgy07/webkert-insurance/internal/identity"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance"
	"github.com/BartokGyorgy07/webkert-insurance/internal/insurance/reader"
	"github.com/BartokGyorgy07/webkert-insurance/internal/transport/http/mocks"
	"github.com/BartokGyorgy07/webkert-insurance/pkg/testutil"
)

func TestProfileHandler_handleProfile_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := reader.Profile{
		Owner:   docstore.Fields{"email": "anna@example.com", "name": "Anna"},
		Records: []insurance.Record{{ID: "ins-1", Name: "Home", Active: true}},
		Stats:   insurance.Stats{Total: 1, Active: 1, CompletionRate: 100},
	}
	mockProfiles := mocks.NewMockProfileService(ctrl)
	mockProfiles.EXPECT().Profile(gomock.Any(), testOwner).Return(profile).Times(1)

	r := chi.NewRouter()
	NewProfileHandler(mockProfiles, identity.ContextProvider{}).Register(r)

	w := testutil.DoRequest(r, authed(testutil.NewRequest(t, "GET", "/me")))

	assert.Equal(t, http.StatusOK, w.Code)

	var got reader.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, profile.Stats, got.Stats)
	assert.Len(t, got.Records, 1)
}

func TestProfileHandler_handleProfile_Unauthenticated(t *testing.T) {
	r := chi.NewRouter()
	NewProfileHandler(nil, identity.ContextProvider{}).Register(r)

	w := testutil.DoRequest(r, testutil.NewRequest(t, "GET", "/me"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
