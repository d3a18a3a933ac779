package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/medvision-ai/medvision-client/internal/adapter"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

// clientAuthService implements [ClientAuthService]. The session mutex
// serialises every session mutation so a completing login can never
// interleave with a logout and leave a token persisted without its user (or
// the other way round); the most recently completed operation wins.
type clientAuthService struct {
	storages *store.ClientStorages
	adapter  adapter.AuthAdapter
	logger   *logger.Logger

	mu      sync.Mutex
	current *models.User
}

// NewClientAuthService constructs a [ClientAuthService] over the local
// storages and the remote auth adapter.
func NewClientAuthService(storages *store.ClientStorages, authAdapter adapter.AuthAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{storages: storages, adapter: authAdapter, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	found, err := a.storages.Users.FindByCredentials(ctx, email, password)
	if err == nil {
		if found.IsBlocked {
			return models.User{}, ErrAccountBlocked
		}
		user := found.WithoutPassword()
		if err := a.establishSession(ctx, user, ""); err != nil {
			return models.User{}, err
		}
		a.logger.Info().Str("email", user.Email).Msg("local login")
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("local credential lookup: %w", err)
	}

	// local miss: fall back to the remote auth collaborator
	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrServer, err)
	}

	if err := a.establishSession(ctx, resp.User, resp.Token); err != nil {
		return models.User{}, err
	}
	a.logger.Info().Str("email", resp.User.Email).Msg("remote login")
	return resp.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	exists, err := a.storages.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("local email lookup: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	resp, err := a.adapter.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrServer, err)
	}

	if err := a.establishSession(ctx, resp.User, resp.Token); err != nil {
		return models.User{}, err
	}
	a.logger.Info().Str("email", resp.User.Email).Msg("registered")
	return resp.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.current = nil
	if err := a.storages.Sessions.ClearCurrentUser(ctx); err != nil {
		return err
	}
	return a.storages.Sessions.ClearToken(ctx)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	user, err := a.storages.Sessions.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	a.mu.Lock()
	a.current = &user
	a.mu.Unlock()

	return user, nil
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return models.User{}, false
	}
	return *a.current, true
}

func (a *clientAuthService) IsAdmin() bool {
	user, ok := a.CurrentUser()
	return ok && user.IsAdmin()
}

// establishSession persists the session user and, when present, the remote
// token, then publishes the user in memory. The user is written before the
// token; if the token write fails the partial session is rolled back so no
// torn state survives.
func (a *clientAuthService) establishSession(ctx context.Context, user models.User, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.storages.Sessions.SaveCurrentUser(ctx, user); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}

	if token != "" {
		if err := a.storages.Sessions.SaveToken(ctx, token); err != nil {
			_ = a.storages.Sessions.ClearCurrentUser(ctx)
			return fmt.Errorf("persist session token: %w", err)
		}
	} else if err := a.storages.Sessions.ClearToken(ctx); err != nil {
		return fmt.Errorf("clear stale session token: %w", err)
	}

	a.current = &user
	return nil
}
