package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

func newTestHistorySvc(t *testing.T) (HistoryService, store.ScanRepository) {
	t.Helper()
	scans := store.NewScanRepository(store.NewMemoryStorage(), logger.Nop())
	return NewHistoryService(scans, logger.Nop()), scans
}

func TestUserScans_OwnedOnly(t *testing.T) {
	svc, scans := newTestHistorySvc(t)
	ctx := context.Background()

	now := time.Now()
	mine := []models.Scan{
		{ID: "scan-1", UserID: "user-1", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "scan-2", UserID: "user-1", CreatedAt: now},
	}
	other := models.Scan{ID: "scan-3", UserID: "user-2", CreatedAt: now}

	require.NoError(t, scans.Append(ctx, mine[0]))
	require.NoError(t, scans.Append(ctx, other))
	require.NoError(t, scans.Append(ctx, mine[1]))

	got, err := svc.UserScans(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// collection is most-recent-first
	assert.Equal(t, "scan-2", got[0].ID)
	assert.Equal(t, "scan-1", got[1].ID)
}

func TestUserScans_Empty(t *testing.T) {
	svc, _ := newTestHistorySvc(t)

	got, err := svc.UserScans(context.Background(), "user-9")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryDeleteScan(t *testing.T) {
	svc, scans := newTestHistorySvc(t)
	ctx := context.Background()

	require.NoError(t, scans.Append(ctx, models.Scan{ID: "scan-1", UserID: "user-1"}))
	require.NoError(t, svc.DeleteScan(ctx, "scan-1"))

	got, err := svc.UserScans(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// deleting an unknown id is a no-op
	assert.NoError(t, svc.DeleteScan(ctx, "scan-1"))
}
