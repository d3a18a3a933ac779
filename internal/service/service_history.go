package service

import (
	"context"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

type historyService struct {
	scans  store.ScanRepository
	logger *logger.Logger
}

// NewHistoryService constructs a [HistoryService] over the scan repository.
func NewHistoryService(scans store.ScanRepository, log *logger.Logger) HistoryService {
	return &historyService{scans: scans, logger: log}
}

func (s *historyService) UserScans(ctx context.Context, userID string) ([]models.Scan, error) {
	scans, err := s.scans.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user scans: %w", err)
	}
	return scans, nil
}

func (s *historyService) DeleteScan(ctx context.Context, id string) error {
	if err := s.scans.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("scan removed from history")
	return nil
}
