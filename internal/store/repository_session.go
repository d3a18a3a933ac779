package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// sessionRepository persists the current session user and the opaque remote
// token under their fixed keys. The stored user object is always
// password-free; only the service layer writes here and it strips
// credentials first.
type sessionRepository struct {
	storage KVStorage
	logger  *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided storage and logger.
func NewSessionRepository(storage KVStorage, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{storage: storage, logger: logger}
}

func (r *sessionRepository) CurrentUser(ctx context.Context) (models.User, error) {
	raw, err := r.storage.Get(ctx, currentUserKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, fmt.Errorf("read session user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("decode session user: %w", err)
	}

	return user, nil
}

func (r *sessionRepository) SaveCurrentUser(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	if err := r.storage.Set(ctx, currentUserKey, raw); err != nil {
		return fmt.Errorf("write session user: %w", err)
	}

	return nil
}

func (r *sessionRepository) ClearCurrentUser(ctx context.Context) error {
	if err := r.storage.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	raw, err := r.storage.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read session token: %w", err)
	}

	return string(raw), nil
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	if err := r.storage.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	return nil
}

func (r *sessionRepository) ClearToken(ctx context.Context) error {
	if err := r.storage.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
