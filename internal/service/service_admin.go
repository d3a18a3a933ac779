package service

import (
	"context"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

type adminService struct {
	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewAdminService constructs an [AdminService] over the local storages.
func NewAdminService(storages *store.ClientStorages, log *logger.Logger) AdminService {
	return &adminService{storages: storages, logger: log}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	stored, err := s.storages.Users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]models.User, 0, len(stored))
	for _, u := range stored {
		users = append(users, u.WithoutPassword())
	}

	return users, nil
}

func (s *adminService) SetBlocked(ctx context.Context, id string, blocked bool) error {
	if err := s.storages.Users.SetBlocked(ctx, id, blocked); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Bool("blocked", blocked).Msg("user block state changed")
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	// scans referencing the user are intentionally kept: ownership is a
	// plain foreign key, not a cascade
	if err := s.storages.Users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("user deleted")
	return nil
}

func (s *adminService) AllScans(ctx context.Context) ([]models.Scan, error) {
	return s.storages.Scans.GetAll(ctx)
}

func (s *adminService) DeleteScan(ctx context.Context, id string) error {
	if err := s.storages.Scans.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("scan deleted")
	return nil
}
