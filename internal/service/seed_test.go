package service

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/models"
)

func TestSampleScans_Shape(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	seeder := NewSampleSeeder(rand.New(rand.NewSource(1)), func() time.Time { return now })

	scans := seeder.SampleScans()
	require.Len(t, scans, sampleScanCount)

	for i, scan := range scans {
		assert.Equal(t, fmt.Sprintf("scan-%d", i+1), scan.ID)
		assert.Regexp(t, `^user-[1-5]$`, scan.UserID)
		assert.Contains(t, sampleUserNames, scan.UserName)
		assert.Contains(t, sampleBodyParts, scan.BodyPart)
		assert.Equal(t, "/placeholder.svg", scan.OriginalImageURL)
		assert.Equal(t, "/placeholder.svg", scan.ContourImageURL)
		assert.Contains(t, sampleDiseases, scan.Diagnosis.Disease)

		assert.GreaterOrEqual(t, scan.Diagnosis.Confidence, 0.75)
		assert.Less(t, scan.Diagnosis.Confidence, 0.95)

		assert.False(t, scan.CreatedAt.After(now))
		assert.False(t, scan.CreatedAt.Before(now.AddDate(0, 0, -60)))

		if scan.Diagnosis.Disease == models.DiseaseNormal {
			assert.Equal(t, models.RiskLow, scan.Diagnosis.RiskLevel)
			assert.Empty(t, scan.Diagnosis.AffectedRegions)
		} else {
			assert.Contains(t, sampleRisks, scan.Diagnosis.RiskLevel)
			assert.NotEmpty(t, scan.Diagnosis.AffectedRegions)
		}

		assert.Equal(t, sampleExplanations[scan.Diagnosis.Disease], scan.Diagnosis.Explanation)
		assert.Equal(t, sampleRecommendations[scan.Diagnosis.Disease], scan.Diagnosis.Recommendations)
	}
}

func TestSampleScans_DeterministicWithPinnedSource(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	first := NewSampleSeeder(rand.New(rand.NewSource(42)), clock).SampleScans()
	second := NewSampleSeeder(rand.New(rand.NewSource(42)), clock).SampleScans()

	assert.Equal(t, first, second)
}
