package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/okto-client/internal/adapter"
	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/store"
	"github.com/MKhiriev/okto-client/internal/utils"
	"github.com/MKhiriev/okto-client/models"
)

type clientSessionService struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenRepository

	// rollbackTokenOnLoadFailure clears a freshly issued token when loading
	// the user right after signup or login fails.
	rollbackTokenOnLoadFailure bool

	mu    sync.RWMutex
	state models.Session

	// publishMu keeps snapshots reaching listeners in mutation order.
	publishMu sync.Mutex
	observers observable[models.Session]

	logger *logger.Logger
}

// NewClientSessionService constructs the session manager and registers it as
// the adapter's unauthorized hook, so that a 401 from any component ends the
// session before the error reaches the caller.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, tokens store.TokenRepository, appCfg config.ClientApp, logger *logger.Logger) ClientSessionService {
	s := &clientSessionService{
		adapter:                    serverAdapter,
		tokens:                     tokens,
		rollbackTokenOnLoadFailure: appCfg.RollbackTokenOnLoadFailure,
		state:                      models.Session{Status: models.SessionAnonymous},
		logger:                     logger,
	}
	serverAdapter.OnUnauthorized(s.handleUnauthorized)
	return s
}

func (s *clientSessionService) Signup(ctx context.Context, firstName, lastName, email, password string) error {
	s.beginAuthentication()

	auth, err := s.adapter.Signup(ctx, models.SignupRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Signup").Msg("signup failed")
		return s.failAuthentication(fmt.Errorf("signup: %w", err))
	}

	return s.startSession(ctx, auth)
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	s.beginAuthentication()

	auth, err := s.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("login failed")
		return s.failAuthentication(fmt.Errorf("login: %w", err))
	}

	return s.startSession(ctx, auth)
}

// startSession adopts a server-issued token and loads the user behind it.
func (s *clientSessionService) startSession(ctx context.Context, auth models.AuthResponse) error {
	if err := s.tokens.SaveToken(ctx, auth.AccessToken); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.startSession").Msg("error persisting token")
		return s.failAuthentication(fmt.Errorf("%w: %w", ErrPersistToken, err))
	}
	s.adapter.SetToken(auth.AccessToken)

	userID := auth.UserID
	claims := s.parseClaims(auth.AccessToken)

	s.mu.Lock()
	s.state.Token = auth.AccessToken
	s.state.UserID = &userID
	s.state.Claims = claims
	s.mu.Unlock()
	s.publish()

	s.logger.Info().Str("func", "clientSessionService.startSession").
		Int64("user_id", userID).Str("subject", claims.Subject).Msg("session started")

	if err := s.loadCurrentUser(ctx, auth.AccessToken); err != nil {
		if s.rollbackTokenOnLoadFailure && !errors.Is(err, ErrSessionChanged) {
			s.clear(ctx)
		}
		return s.failAuthentication(err)
	}

	return nil
}

func (s *clientSessionService) Logout(ctx context.Context) {
	s.clear(ctx)
	s.logger.Info().Str("func", "clientSessionService.Logout").Msg("logged out")
}

func (s *clientSessionService) LoadCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	token := s.state.Token
	if token == "" {
		s.state.ErrorMessage = UserMessage(ErrNoActiveSession)
		s.mu.Unlock()
		s.publish()
		return ErrNoActiveSession
	}
	s.state.Loading = true
	s.mu.Unlock()
	s.publish()

	if err := s.loadCurrentUser(ctx, token); err != nil {
		s.setError(err)
		return err
	}
	return nil
}

// loadCurrentUser fetches identity then profile and commits both, provided
// the session still carries token.
func (s *clientSessionService) loadCurrentUser(ctx context.Context, token string) error {
	user, err := s.adapter.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.loadCurrentUser").Msg("error loading user")
		return fmt.Errorf("load current user: %w", err)
	}

	profile, err := s.adapter.GetProfile(ctx, user.ID)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.loadCurrentUser").Int64("user_id", user.ID).Msg("error loading profile")
		return fmt.Errorf("load profile: %w", err)
	}

	s.mu.Lock()
	if s.state.Token != token {
		s.mu.Unlock()
		return ErrSessionChanged
	}
	userID := user.ID
	s.state.UserID = &userID
	s.state.User = &user
	s.state.Profile = &profile
	s.state.Status = models.SessionAuthenticated
	s.state.Loading = false
	s.state.ErrorMessage = ""
	s.mu.Unlock()
	s.publish()

	return nil
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, patch models.ProfileUpdateRequest) error {
	s.mu.Lock()
	if s.state.UserID == nil {
		s.state.ErrorMessage = UserMessage(ErrNoActiveSession)
		s.mu.Unlock()
		s.publish()
		return ErrNoActiveSession
	}
	userID := *s.state.UserID
	token := s.state.Token
	s.state.Loading = true
	s.mu.Unlock()
	s.publish()

	if err := s.adapter.UpdateProfile(ctx, userID, patch); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Int64("user_id", userID).Msg("error updating profile")
		err = fmt.Errorf("update profile: %w", err)
		s.setError(err)
		return err
	}

	profile, err := s.adapter.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Int64("user_id", userID).Msg("error reading profile back")
		err = fmt.Errorf("load profile: %w", err)
		s.setError(err)
		return err
	}

	s.mu.Lock()
	if s.state.Token != token {
		s.mu.Unlock()
		return ErrSessionChanged
	}
	s.state.Profile = &profile
	s.state.Loading = false
	s.state.ErrorMessage = ""
	s.mu.Unlock()
	s.publish()

	return nil
}

func (s *clientSessionService) Restore(ctx context.Context) error {
	token, err := s.tokens.LoadToken(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		s.logger.Debug().Str("func", "clientSessionService.Restore").Msg("no persisted session")
		s.publish()
		return nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Restore").Msg("error loading persisted token")
		s.setError(err)
		return fmt.Errorf("restore session: %w", err)
	}

	s.adapter.SetToken(token)
	claims := s.parseClaims(token)

	s.mu.Lock()
	s.state = models.Session{
		Status:  models.SessionAuthenticating,
		Token:   token,
		Claims:  claims,
		Loading: true,
	}
	s.mu.Unlock()
	s.publish()

	if err := s.loadCurrentUser(ctx, token); err != nil {
		s.mu.Lock()
		if s.state.Status == models.SessionAuthenticating {
			s.state.Status = models.SessionAnonymous
		}
		s.mu.Unlock()
		s.setError(err)
		return fmt.Errorf("restore session: %w", err)
	}

	return nil
}

func (s *clientSessionService) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *clientSessionService) Subscribe(listener func(models.Session)) func() {
	return s.observers.subscribe(listener)
}

// handleUnauthorized runs inside the adapter before a 401 is returned.
func (s *clientSessionService) handleUnauthorized() {
	s.logger.Warn().Str("func", "clientSessionService.handleUnauthorized").Msg("server rejected the session token")

	if err := s.tokens.DeleteToken(context.Background()); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.handleUnauthorized").Msg("error deleting persisted token")
	}

	s.mu.Lock()
	s.state = models.Session{
		Status:       models.SessionAnonymous,
		ErrorMessage: UserMessage(adapter.ErrUnauthorized),
	}
	s.mu.Unlock()
	s.publish()
}

func (s *clientSessionService) beginAuthentication() {
	s.mu.Lock()
	s.state.Status = models.SessionAuthenticating
	s.state.Loading = true
	s.state.ErrorMessage = ""
	s.mu.Unlock()
	s.publish()
}

// failAuthentication leaves the session anonymous with err surfaced. A token
// stored before the failure is kept unless it was cleared explicitly.
func (s *clientSessionService) failAuthentication(err error) error {
	s.mu.Lock()
	s.state.Status = models.SessionAnonymous
	s.state.User = nil
	s.state.Profile = nil
	s.state.Loading = false
	s.state.ErrorMessage = UserMessage(err)
	s.mu.Unlock()
	s.publish()
	return err
}

func (s *clientSessionService) setError(err error) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.ErrorMessage = UserMessage(err)
	s.mu.Unlock()
	s.publish()
}

// clear drops the token everywhere together with identity and profile.
func (s *clientSessionService) clear(ctx context.Context) {
	s.adapter.SetToken("")
	if err := s.tokens.DeleteToken(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.clear").Msg("error deleting persisted token")
	}

	s.mu.Lock()
	s.state = models.Session{Status: models.SessionAnonymous}
	s.mu.Unlock()
	s.publish()
}

func (s *clientSessionService) parseClaims(token string) models.TokenClaims {
	claims, err := utils.ParseTokenClaims(token)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "clientSessionService.parseClaims").Msg("token claims unreadable")
	}
	return claims
}

func (s *clientSessionService) publish() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.observers.emit(s.Snapshot())
}
