package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/okto-client/internal/adapter"
	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/mock"
	"github.com/MKhiriev/okto-client/internal/utils"
	"github.com/MKhiriev/okto-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// A 401 on the feed endpoint ends the session before LoadFeed returns.
func TestSessionAndFeed_UnauthorizedFeedLogsOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, models.AuthResponse{AccessToken: "tok", TokenType: "bearer", UserID: 7})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeTestJSON(w, testUser)
	})
	mux.HandleFunc("GET /users/7/profile", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, testProfile)
	})
	mux.HandleFunc("GET /news/feed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("GET /insights/7", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, models.InsightsResponse{Insights: []models.Insight{}})
	})
	mux.HandleFunc("GET /news/sources", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, models.NewsSources{Sources: []string{"dr.dk"}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenRepository(ctrl)
	tokens.EXPECT().SaveToken(gomock.Any(), "tok").Return(nil)
	tokens.EXPECT().DeleteToken(gomock.Any()).Return(nil)

	httpAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: server.URL}, logger.Nop())
	require.NoError(t, err)

	sessions := NewClientSessionService(httpAdapter, tokens, config.ClientApp{}, logger.Nop())
	feed := NewClientFeedService(httpAdapter, utils.NewInsightIDGenerator(), config.ClientFeed{PageSize: 20}, logger.Nop())

	ctx := context.Background()
	require.NoError(t, sessions.Login(ctx, "anna@example.dk", "pw"))
	require.True(t, sessions.Snapshot().IsAuthenticated())

	var (
		mu     sync.Mutex
		events []string
	)
	sessions.Subscribe(func(s models.Session) {
		mu.Lock()
		events = append(events, "session:"+s.Status.String())
		mu.Unlock()
	})

	err = feed.LoadFeed(ctx, *sessions.Snapshot().UserID)
	mu.Lock()
	events = append(events, "feed returned")
	mu.Unlock()

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, []string{"session:anonymous", "feed returned"}, events)

	got := sessions.Snapshot()
	assert.Equal(t, models.SessionAnonymous, got.Status)
	assert.Empty(t, got.Token)
	assert.Nil(t, got.User)
	assert.Empty(t, httpAdapter.Token())
	assert.Empty(t, feed.Snapshot().Articles)
}

// A sparse patch sent through the real adapter only touches the fields it
// carries; the read-back snapshot keeps what the server already had.
func TestSessionService_UpdateProfile_MergesOnServer(t *testing.T) {
	var (
		mu      sync.Mutex
		stored  = map[string]any{"id": 1, "user_id": 7, "region": "Hovedstaden"}
		putBody string
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, models.AuthResponse{AccessToken: "tok", TokenType: "bearer", UserID: 7})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, testUser)
	})
	mux.HandleFunc("GET /users/7/profile", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		writeTestJSON(w, stored)
	})
	mux.HandleFunc("PUT /users/7/profile", func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var patch map[string]any
		assert.NoError(t, json.Unmarshal(raw, &patch))

		mu.Lock()
		putBody = string(raw)
		for k, v := range patch {
			stored[k] = v
		}
		mu.Unlock()
		writeTestJSON(w, map[string]any{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenRepository(ctrl)
	tokens.EXPECT().SaveToken(gomock.Any(), "tok").Return(nil)

	httpAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: server.URL}, logger.Nop())
	require.NoError(t, err)
	sessions := NewClientSessionService(httpAdapter, tokens, config.ClientApp{}, logger.Nop())

	ctx := context.Background()
	require.NoError(t, sessions.Login(ctx, "anna@example.dk", "pw"))
	before := sessions.Snapshot().Profile
	require.NotNil(t, before)
	assert.Nil(t, before.Age)

	require.NoError(t, sessions.UpdateProfile(ctx, models.ProfileUpdateRequest{Age: models.Ptr(32)}))

	mu.Lock()
	assert.JSONEq(t, `{"age":32}`, putBody)
	mu.Unlock()

	got := sessions.Snapshot().Profile
	require.NotNil(t, got)
	require.NotNil(t, got.Age)
	assert.Equal(t, 32, *got.Age)
	require.NotNil(t, got.Region)
	assert.Equal(t, "Hovedstaden", *got.Region)
	assert.True(t, got.IsComplete())
}

func writeTestJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
