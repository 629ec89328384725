// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func assertKind(t *testing.T, err error, kind error) *TransportError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	return te
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", got)

	got, err = normalizeBaseURL("https://api.okto.dk")
	require.NoError(t, err)
	assert.Equal(t, "https://api.okto.dk", got)
}

func TestToken_SetTrimClear(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8000")
	assert.Empty(t, a.Token())

	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"first_name": "Anna",
			"last_name":  "Hansen",
			"email":      "anna@example.dk",
			"password":   "hemmelig",
		}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": "tok-1", "token_type": "bearer", "user_id": 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), models.SignupRequest{
		FirstName: "Anna", LastName: "Hansen", Email: "anna@example.dk", Password: "hemmelig",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AuthResponse{AccessToken: "tok-1", TokenType: "bearer", UserID: 7}, got)
	// the session layer owns the decision to adopt the token
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": "tok-2", "token_type": "bearer", "user_id": 3})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.dk", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.AccessToken)
	assert.Equal(t, int64(3), got.UserID)
}

func TestLogin_BadCredentialsIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.dk"})
	te := assertKind(t, err, ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, te.Status)
	assert.Contains(t, te.Detail, "Incorrect email or password")
}

func TestLogin_MissingAccessTokenIsDecodingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"token_type": "bearer", "user_id": 3})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})
	assertKind(t, err, ErrDecodingFailed)
}

// ── status classification ────────────────────────────────────────────────────

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrServerUnavailable},
		{http.StatusBadGateway, ErrServerUnavailable},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
		{http.StatusBadRequest, ErrUnknown},
		{http.StatusForbidden, ErrUnknown},
		{http.StatusConflict, ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background())
			te := assertKind(t, err, tt.kind)
			assert.Equal(t, tt.status, te.Status)
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetCurrentUser(context.Background())
	te := assertKind(t, err, ErrNetwork)
	assert.Zero(t, te.Status)
	assert.NotEmpty(t, te.Detail)
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.GetCurrentUser(context.Background())
	assertKind(t, err, ErrNetwork)
}

// ── unauthorized hook ────────────────────────────────────────────────────────

func TestUnauthorized_ClearsTokenAndFiresHookBeforeReturn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("expired")

	fired := 0
	a.OnUnauthorized(func() {
		fired++
		assert.Empty(t, a.Token(), "token must be cleared before the hook runs")
	})

	_, err := a.GetProfile(context.Background(), 1)
	assertKind(t, err, ErrUnauthorized)
	assert.Equal(t, 1, fired)
	assert.Empty(t, a.Token())
}

func TestNon401_DoesNotFireHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	a.OnUnauthorized(func() { t.Fatal("hook must not fire") })

	err := a.UpdateProfile(context.Background(), 1, models.ProfileUpdateRequest{Age: models.Ptr(30)})
	assertKind(t, err, ErrNotFound)
	assert.Equal(t, "tok", a.Token())
}

func TestUnauthorized_ReplacedTokenIsKept(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))
		close(arrived)
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")
	a.OnUnauthorized(func() { t.Error("hook must not fire for a replaced token") })

	errCh := make(chan error, 1)
	go func() {
		_, err := a.GetCurrentUser(context.Background())
		errCh <- err
	}()

	<-arrived
	a.SetToken("new")
	close(release)

	assertKind(t, <-errCh, ErrUnauthorized)
	assert.Equal(t, "new", a.Token())
}

func TestGetNewsFeed_UnauthorizedForReplacedToken(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "old", r.URL.Query().Get("token"))
		close(arrived)
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")
	fired := false
	a.OnUnauthorized(func() { fired = true })

	errCh := make(chan error, 1)
	go func() {
		_, err := a.GetNewsFeed(context.Background(), 7, 20)
		errCh <- err
	}()

	<-arrived
	a.SetToken("new")
	close(release)

	assertKind(t, <-errCh, ErrUnauthorized)
	assert.False(t, fired)
	assert.Equal(t, "new", a.Token())
}

// ── users & profile ──────────────────────────────────────────────────────────

func TestGetCurrentUser_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "email": "anna@example.dk", "first_name": "Anna", "last_name": "Hansen"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 7, Email: "anna@example.dk", FirstName: "Anna", LastName: "Hansen"}, got)
}

func TestGetCurrentUser_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background())
	assertKind(t, err, ErrUnauthorized)
}

func TestGetCurrentUser_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "seven"`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background())
	te := assertKind(t, err, ErrDecodingFailed)
	assert.NotEmpty(t, te.Detail)
}

func TestGetProfile_DefaultsNotificationFlags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/7/profile", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "user_id": 7, "age": 32, "region": "Hovedstaden", "daily_digest": false})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, got.Age)
	assert.Equal(t, 32, *got.Age)
	assert.True(t, got.BreakingNews)
	assert.False(t, got.DailyDigest)
	assert.True(t, got.AIInsights)
	assert.Nil(t, got.HousingType)
}

func TestUpdateProfile_SparseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/7/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"age": 40, "loan_types": []}`, string(raw))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.UpdateProfile(context.Background(), 7, models.ProfileUpdateRequest{
		Age:       models.Ptr(40),
		LoanTypes: models.Ptr([]string{}),
	})
	require.NoError(t, err)
}

// ── news ─────────────────────────────────────────────────────────────────────

func TestGetNewsFeed_TokenInQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news/feed", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"id": 1, "source": "DR", "title": "Renten stiger", "description": "d",
			"url": "https://dr.dk/1", "image_url": nil, "published_at": "2026-01-02T10:00:00",
			"category": "Loans & Rates", "author": "Jens",
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.GetNewsFeed(context.Background(), 7, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Renten stiger", got[0].Title)
	assert.Nil(t, got[0].ImageURL)
	require.NotNil(t, got[0].Author)
	assert.Equal(t, "Jens", *got[0].Author)
}

func TestGetNewsFeed_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	fired := false
	a.OnUnauthorized(func() { fired = true })

	_, err := a.GetNewsFeed(context.Background(), 7, 20)
	assertKind(t, err, ErrUnauthorized)
	assert.True(t, fired)
}

func TestGetNewsSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news/sources", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"sources": []string{"DR", "Børsen"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetNewsSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DR", "Børsen"}, got)
}

func TestRefreshNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news/refresh", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).RefreshNews(context.Background()))
}

// ── insights ─────────────────────────────────────────────────────────────────

func TestGetInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/insights/7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"insights": []map[string]string{
			{"title": "Skift bank", "description": "d", "type": "opportunity"},
			{"title": "Rentestigning", "description": "d", "type": "alert"},
		}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetInsights(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.InsightOpportunity, got[0].Kind)
	assert.Equal(t, models.InsightAlert, got[1].Kind)
	assert.Empty(t, got[0].ID)
}

func TestGetInsights_UnknownKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"insights": []map[string]string{
			{"title": "x", "description": "d", "type": "rumour"},
		}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetInsights(context.Background(), 7)
	assertKind(t, err, ErrDecodingFailed)
}
