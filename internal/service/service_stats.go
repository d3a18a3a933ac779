package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

// AccuracyRate is the fixed dashboard accuracy figure. The data model
// carries no ground truth, so this is a display constant, not a computed
// value.
const AccuracyRate = 0.94

// trendMonths is the length of the dashboard monthly trend, current month
// included.
const trendMonths = 6

// recentScansLimit caps the dashboard recent-scans list.
const recentScansLimit = 5

type statsService struct {
	scans store.ScanRepository
	now   func() time.Time
}

// NewStatsService constructs a [StatsService] over the scan repository.
// now is the clock used for "this month" and trend bucketing; pass nil for
// time.Now.
func NewStatsService(scans store.ScanRepository, now func() time.Time) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{scans: scans, now: now}
}

func (s *statsService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	scans, err := s.scans.GetAll(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("load scans for stats: %w", err)
	}

	now := s.now()

	stats := models.DashboardStats{
		TotalScans:   len(scans),
		AccuracyRate: AccuracyRate,
	}

	counts := make(map[models.Disease]int, len(models.Diseases))
	for _, scan := range scans {
		if scan.Diagnosis.Disease != models.DiseaseNormal {
			stats.DiseasesDetected++
		}
		if sameMonth(scan.CreatedAt, now) {
			stats.ScansThisMonth++
		}
		counts[scan.Diagnosis.Disease]++
	}

	stats.DiseaseBreakdown = make([]models.DiseaseCount, 0, len(models.Diseases))
	for _, d := range models.Diseases {
		stats.DiseaseBreakdown = append(stats.DiseaseBreakdown, models.DiseaseCount{
			Disease: d,
			Count:   counts[d],
		})
	}

	stats.MonthlyTrend = monthlyTrend(scans, now)
	stats.RecentScans = recentScans(scans)

	return stats, nil
}

// monthlyTrend buckets scans into the last six calendar months, oldest
// first, ending at the month of now.
func monthlyTrend(scans []models.Scan, now time.Time) []models.MonthlyCount {
	trend := make([]models.MonthlyCount, 0, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		// normalise to the first of the month so month arithmetic never
		// spills over on short months
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		entry := models.MonthlyCount{Month: month.Format("Jan")}
		for _, scan := range scans {
			if !sameMonth(scan.CreatedAt, month) {
				continue
			}
			entry.Scans++
			if scan.Diagnosis.Disease != models.DiseaseNormal {
				entry.Detections++
			}
		}

		trend = append(trend, entry)
	}

	return trend
}

// recentScans returns up to recentScansLimit scans ordered by creation
// timestamp descending.
func recentScans(scans []models.Scan) []models.Scan {
	sorted := make([]models.Scan, len(scans))
	copy(sorted, scans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > recentScansLimit {
		sorted = sorted[:recentScansLimit]
	}
	return sorted
}

func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}
