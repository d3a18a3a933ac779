package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// Seed admin account created on first initialization. There is exactly one
// admin conceptually; the record can never be blocked or deleted.
const (
	SeedAdminID       = "admin-001"
	SeedAdminName     = "System Admin"
	SeedAdminEmail    = "admin@medvision.ai"
	SeedAdminPassword = "admin123"
)

// userRepository is the [KVStorage]-backed implementation of
// [UserRepository]. The whole collection is stored as one JSON array under
// the users key; every mutation rewrites it in full.
type userRepository struct {
	storage KVStorage
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// storage and logger.
func NewUserRepository(storage KVStorage, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) Initialize(ctx context.Context) error {
	_, err := r.storage.Get(ctx, usersKey)
	if err == nil {
		// collection already exists, never overwrite it
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("read users collection: %w", err)
	}

	admin := models.StoredUser{
		User: models.User{
			ID:        SeedAdminID,
			Name:      SeedAdminName,
			Email:     SeedAdminEmail,
			Role:      models.RoleAdmin,
			CreatedAt: time.Now(),
		},
		Password: SeedAdminPassword,
	}

	r.logger.Info().Str("email", admin.Email).Msg("seeding admin account")
	return r.writeAll(ctx, []models.StoredUser{admin})
}

func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (models.StoredUser, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return models.StoredUser{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, nil
		}
	}

	return models.StoredUser{}, ErrUserNotFound
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}

	return false, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.StoredUser, error) {
	return r.readAll(ctx)
}

func (r *userRepository) Create(ctx context.Context, user models.StoredUser) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	return r.writeAll(ctx, append(users, user))
}

func (r *userRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.ID != id {
			continue
		}
		if u.Role == models.RoleAdmin {
			return ErrAdminImmutable
		}
		users[i].IsBlocked = blocked
		return r.writeAll(ctx, users)
	}

	return ErrUserNotFound
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID == id {
			if u.Role == models.RoleAdmin {
				return ErrAdminImmutable
			}
			continue
		}
		kept = append(kept, u)
	}

	return r.writeAll(ctx, kept)
}

func (r *userRepository) readAll(ctx context.Context) ([]models.StoredUser, error) {
	raw, err := r.storage.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users collection: %w", err)
	}

	var users []models.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users collection: %w", err)
	}

	return users, nil
}

func (r *userRepository) writeAll(ctx context.Context, users []models.StoredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users collection: %w", err)
	}

	if err := r.storage.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("write users collection: %w", err)
	}

	return nil
}
