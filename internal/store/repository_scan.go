package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// scanRepository is the [KVStorage]-backed implementation of
// [ScanRepository]. The whole collection is one JSON array under the scans
// key, most-recent-first; every mutation rewrites it in full.
type scanRepository struct {
	storage KVStorage
	logger  *logger.Logger
}

// NewScanRepository constructs a [ScanRepository] backed by the provided
// storage and logger.
func NewScanRepository(storage KVStorage, logger *logger.Logger) ScanRepository {
	logger.Debug().Msg("creating scan repository")
	return &scanRepository{storage: storage, logger: logger}
}

func (r *scanRepository) Bootstrap(ctx context.Context, seed SeedSource) error {
	_, err := r.storage.Get(ctx, scansKey)
	if err == nil {
		// collection already exists, even an empty one stays as-is
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("read scans collection: %w", err)
	}

	samples := seed.SampleScans()
	r.logger.Info().Int("count", len(samples)).Msg("seeding sample scans")
	return r.writeAll(ctx, samples)
}

func (r *scanRepository) Append(ctx context.Context, scan models.Scan) error {
	scans, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	updated := make([]models.Scan, 0, len(scans)+1)
	updated = append(updated, scan)
	updated = append(updated, scans...)

	return r.writeAll(ctx, updated)
}

func (r *scanRepository) Delete(ctx context.Context, id string) error {
	scans, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	kept := scans[:0]
	for _, s := range scans {
		if s.ID != id {
			kept = append(kept, s)
		}
	}

	return r.writeAll(ctx, kept)
}

func (r *scanRepository) FindByUser(ctx context.Context, userID string) ([]models.Scan, error) {
	scans, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var owned []models.Scan
	for _, s := range scans {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}

	return owned, nil
}

func (r *scanRepository) GetAll(ctx context.Context) ([]models.Scan, error) {
	return r.readAll(ctx)
}

func (r *scanRepository) readAll(ctx context.Context) ([]models.Scan, error) {
	raw, err := r.storage.Get(ctx, scansKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read scans collection: %w", err)
	}

	var scans []models.Scan
	if err := json.Unmarshal(raw, &scans); err != nil {
		return nil, fmt.Errorf("decode scans collection: %w", err)
	}

	return scans, nil
}

func (r *scanRepository) writeAll(ctx context.Context, scans []models.Scan) error {
	raw, err := json.Marshal(scans)
	if err != nil {
		return fmt.Errorf("encode scans collection: %w", err)
	}

	if err := r.storage.Set(ctx, scansKey, raw); err != nil {
		return fmt.Errorf("write scans collection: %w", err)
	}

	return nil
}
