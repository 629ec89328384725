package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/utils"
	"github.com/MKhiriev/okto-client/internal/validators"
	"github.com/MKhiriev/okto-client/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout when it is
// positive; otherwise the client keeps no timeout of its own.
//
// Returns an error wrapping [ErrInvalidRequest] if the address is empty or
// cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, newTransportError(ErrInvalidRequest, 0, fmt.Sprintf("invalid adapter http address: %v", err))
	}

	client := utils.NewHTTPClient().WithBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpServerAdapter{
		client:    client,
		validator: validators.NewResponseValidator(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

// Signup implements [ServerAdapter]. POST /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.do(ctx, h.client.R(), "", http.MethodPost, "/auth/signup", req, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

// Login implements [ServerAdapter]. POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.do(ctx, h.client.R(), "", http.MethodPost, "/auth/login", req, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

// GetCurrentUser implements [ServerAdapter]. GET /users/me.
func (h *httpServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.doAuthed(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetProfile implements [ServerAdapter]. GET /users/{id}/profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	var profile models.Profile
	path := "/users/" + strconv.FormatInt(userID, 10) + "/profile"
	if err := h.doAuthed(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. PUT /users/{id}/profile; the
// response body is ignored.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) error {
	path := "/users/" + strconv.FormatInt(userID, 10) + "/profile"
	return h.doAuthed(ctx, http.MethodPut, path, req, nil)
}

// GetNewsFeed implements [ServerAdapter]. GET /news/feed with user_id, limit
// and token query parameters; no Authorization header is sent.
func (h *httpServerAdapter) GetNewsFeed(ctx context.Context, userID int64, limit int) ([]models.NewsArticle, error) {
	token := h.Token()
	req := h.client.R().SetQueryParams(map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"limit":   strconv.Itoa(limit),
		"token":   token,
	})

	var articles []models.NewsArticle
	if err := h.do(ctx, req, token, http.MethodGet, "/news/feed", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetNewsSources implements [ServerAdapter]. GET /news/sources.
func (h *httpServerAdapter) GetNewsSources(ctx context.Context) ([]string, error) {
	var sources models.NewsSources
	if err := h.doAuthed(ctx, http.MethodGet, "/news/sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources.Sources, nil
}

// RefreshNews implements [ServerAdapter]. POST /news/refresh.
func (h *httpServerAdapter) RefreshNews(ctx context.Context) error {
	return h.doAuthed(ctx, http.MethodPost, "/news/refresh", nil, nil)
}

// GetInsights implements [ServerAdapter]. GET /insights/{id}.
func (h *httpServerAdapter) GetInsights(ctx context.Context, userID int64) ([]models.Insight, error) {
	var resp models.InsightsResponse
	path := "/insights/" + strconv.FormatInt(userID, 10)
	if err := h.doAuthed(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Insights, nil
}

// doAuthed sends the request with the current token as a bearer header.
func (h *httpServerAdapter) doAuthed(ctx context.Context, method, path string, body, out any) error {
	token := h.Token()
	req := h.client.R()
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return h.do(ctx, req, token, method, path, body, out)
}

// do sends one request and decodes the 2xx body into out when out is not nil.
// Failures are classified into a [*TransportError]. A 401 additionally clears
// the token and fires the unauthorized hook before returning, provided sent
// (the token the request carried) is still the current one.
func (h *httpServerAdapter) do(ctx context.Context, req *resty.Request, sent, method, path string, body, out any) error {
	req.SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.do").Str("path", path).Msg("request failed")
		return mapRequestError(err)
	}

	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusUnauthorized {
			h.handleUnauthorized(sent)
		}
		h.logger.Debug().Str("func", "httpServerAdapter.do").Str("path", path).Int("status", resp.StatusCode()).Msg("non-2xx response")
		return err
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return decodingError(err)
	}
	if err = h.validator.Validate(ctx, out); err != nil {
		return decodingError(err)
	}

	return nil
}

// handleUnauthorized ignores a 401 for a token that was replaced while the
// request was in flight.
func (h *httpServerAdapter) handleUnauthorized(sent string) {
	h.mu.Lock()
	if h.token != sent {
		h.mu.Unlock()
		h.logger.Debug().Str("func", "httpServerAdapter.handleUnauthorized").Msg("401 for a replaced token ignored")
		return
	}
	h.token = ""
	fn := h.onUnauthorized
	h.mu.Unlock()

	if fn != nil {
		fn()
	}
}
