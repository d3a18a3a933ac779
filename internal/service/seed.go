package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

// sampleScanCount is the size of the synthetic collection seeded into an
// empty scan store on first run.
const sampleScanCount = 25

var (
	sampleDiseases  = []models.Disease{models.DiseaseTuberculosis, models.DiseasePneumonia, models.DiseaseBoneFracture, models.DiseaseNormal}
	sampleUserNames = []string{"Dr. Sarah Johnson", "Dr. Michael Chen", "Nurse Emily Davis", "Dr. Robert Wilson", "Tech Alex Brown"}
	sampleBodyParts = []string{"Chest", "Lungs", "Ribs", "Spine", "Hand", "Leg"}
	sampleRisks     = []models.RiskLevel{models.RiskHigh, models.RiskModerate, models.RiskLow}
)

// Demo texts differ from the live submission lexicon on purpose: seeded
// scans read like archived reports, live ones like fresh AI output.
var sampleExplanations = map[models.Disease]string{
	models.DiseaseTuberculosis: "Detected characteristic upper lobe infiltrates with cavitary lesions. The pattern shows typical nodular opacities consistent with active pulmonary tuberculosis.",
	models.DiseasePneumonia:    "Identified consolidation in the lower lobes with air bronchograms. The opacity pattern and distribution are consistent with bacterial pneumonia.",
	models.DiseaseBoneFracture: "Detected discontinuity in bone cortex with surrounding soft tissue swelling. The fracture line is visible with minimal displacement.",
	models.DiseaseNormal:       "No significant abnormalities detected. Lung fields appear clear, cardiac silhouette is within normal limits, and bony structures show no acute findings.",
	models.DiseaseUnknown:      "Unable to determine a definitive diagnosis. Further clinical correlation and additional imaging may be required.",
}

var sampleRegions = map[models.Disease][]string{
	models.DiseaseTuberculosis: {"Upper right lobe", "Apical segment", "Posterior segment"},
	models.DiseasePneumonia:    {"Lower left lobe", "Right middle lobe", "Basal segments"},
	models.DiseaseBoneFracture: {"Cortical surface", "Trabecular bone", "Periosteum"},
	models.DiseaseNormal:       {},
	models.DiseaseUnknown:      {},
}

var sampleRecommendations = map[models.Disease][]string{
	models.DiseaseTuberculosis: {"Confirm with sputum culture and sensitivity testing", "Start empiric anti-tuberculosis therapy as per protocol", "Notify public health authorities", "Screen close contacts"},
	models.DiseasePneumonia:    {"Initiate appropriate antibiotic therapy", "Consider blood cultures before treatment", "Monitor oxygen saturation", "Follow-up imaging in 4-6 weeks"},
	models.DiseaseBoneFracture: {"Orthopedic consultation recommended", "Consider immobilization with splint or cast", "Pain management as needed", "Follow-up imaging in 2-4 weeks"},
	models.DiseaseNormal:       {"No immediate intervention required", "Continue routine screening as indicated", "Maintain healthy lifestyle practices"},
	models.DiseaseUnknown:      {"Recommend clinical correlation", "Consider additional imaging modalities", "Specialist consultation may be beneficial"},
}

// SampleSeeder implements [store.SeedSource] with a randomised collection of
// demo scans. rng and now are injectable so tests can pin the output.
type SampleSeeder struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSampleSeeder constructs a seeder. Pass nil for a time-seeded rng and
// the wall clock.
func NewSampleSeeder(rng *rand.Rand, now func() time.Time) *SampleSeeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &SampleSeeder{rng: rng, now: now}
}

var _ store.SeedSource = (*SampleSeeder)(nil)

// SampleScans generates the demo collection: scan ids scan-1..scan-25 owned
// by user-1..user-5, confidences in [0.75, 0.95), dates spread over the last
// 60 days.
func (s *SampleSeeder) SampleScans() []models.Scan {
	scans := make([]models.Scan, 0, sampleScanCount)
	now := s.now()

	for i := 0; i < sampleScanCount; i++ {
		disease := sampleDiseases[s.rng.Intn(len(sampleDiseases))]
		daysAgo := s.rng.Intn(60)

		risk := models.RiskLow
		if disease != models.DiseaseNormal {
			risk = sampleRisks[s.rng.Intn(len(sampleRisks))]
		}

		imageType := models.ImageTypeXRay
		if s.rng.Float64() > 0.5 {
			imageType = models.ImageTypeCT
		}

		scans = append(scans, models.Scan{
			ID:               fmt.Sprintf("scan-%d", i+1),
			UserID:           fmt.Sprintf("user-%d", s.rng.Intn(5)+1),
			UserName:         sampleUserNames[s.rng.Intn(len(sampleUserNames))],
			OriginalImageURL: "/placeholder.svg",
			ContourImageURL:  "/placeholder.svg",
			Diagnosis: models.DiagnosisResult{
				Disease:         disease,
				Confidence:      0.75 + s.rng.Float64()*0.2,
				RiskLevel:       risk,
				Explanation:     sampleExplanations[disease],
				AffectedRegions: sampleRegions[disease],
				Recommendations: sampleRecommendations[disease],
			},
			CreatedAt: now.AddDate(0, 0, -daysAgo),
			ImageType: imageType,
			BodyPart:  sampleBodyParts[s.rng.Intn(len(sampleBodyParts))],
		})
	}

	return scans
}
