package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/models"
)

func reportScan() models.Scan {
	return models.Scan{
		ID:       "scan-7",
		UserID:   "user-1",
		UserName: "Dr. Sarah Johnson",
		Diagnosis: models.DiagnosisResult{
			Disease:         models.DiseaseTuberculosis,
			Confidence:      0.912,
			RiskLevel:       models.RiskHigh,
			Explanation:     "Findings with **Cavitary Lesions** detected.",
			AffectedRegions: []string{"Upper right lobe"},
			Recommendations: []string{"Contact tracing", "Initiate DOTS therapy"},
		},
		CreatedAt: time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC),
		ImageType: models.ImageTypeXRay,
		BodyPart:  "Chest",
	}
}

func TestGeneratePDF(t *testing.T) {
	data, err := GeneratePDF(reportScan())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestSaveToFile(t *testing.T) {
	scan := reportScan()
	path := filepath.Join(t.TempDir(), FileName(scan))

	require.NoError(t, SaveToFile(scan, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "MedVision_XRAY_Report_scan-7.pdf", FileName(reportScan()))
}

func TestText(t *testing.T) {
	text := Text(reportScan())

	assert.Contains(t, text, "MedVision AI - Medical XRAY Diagnostic Report")
	assert.Contains(t, text, "Report ID: scan-7")
	assert.Contains(t, text, "Analyzed by: Dr. Sarah Johnson")
	assert.Contains(t, text, "Finding: Tuberculosis (TB)")
	assert.Contains(t, text, "Confidence: 91.2%")
	assert.Contains(t, text, "- Upper right lobe")
	assert.Contains(t, text, "- Initiate DOTS therapy")
	assert.NotContains(t, text, "**", "markdown markers must be stripped")
}
