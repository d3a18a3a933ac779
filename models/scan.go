package models

import "time"

// ImageType is the acquisition modality of an uploaded study.
type ImageType string

const (
	ImageTypeXRay ImageType = "xray"
	ImageTypeCT   ImageType = "ct"
)

// Disease is the diagnostic category attached to a scan.
type Disease string

const (
	DiseaseTuberculosis Disease = "tuberculosis"
	DiseasePneumonia    Disease = "pneumonia"
	DiseaseBoneFracture Disease = "bone_fracture"
	DiseaseNormal       Disease = "normal"
	DiseaseUnknown      Disease = "unknown"
)

// Diseases lists every diagnostic category in fixed display order. Dashboard
// breakdowns iterate this slice so all categories are always reported, even
// at zero count.
var Diseases = []Disease{
	DiseaseTuberculosis,
	DiseasePneumonia,
	DiseaseBoneFracture,
	DiseaseNormal,
	DiseaseUnknown,
}

// RiskLevel is the coarse severity bucket of a diagnosis, independent of the
// confidence score.
type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
	RiskNormal   RiskLevel = "normal"
)

// DiagnosisResult is the AI finding embedded in a scan. It is a value object
// owned by its Scan and has no identity of its own.
type DiagnosisResult struct {
	Disease    Disease   `json:"disease"`
	Confidence float64   `json:"confidence"`
	RiskLevel  RiskLevel `json:"riskLevel"`

	// Explanation is free text selected from the per-disease lexicon.
	Explanation string `json:"explanation"`

	// AffectedRegions and Recommendations are ordered display lists; order
	// is significant and entries are not deduplicated.
	AffectedRegions []string `json:"affectedRegions"`
	Recommendations []string `json:"recommendations"`
}

// Scan is a single analyzed study. Once created a scan is immutable except
// for deletion; there is no update-in-place operation.
type Scan struct {
	ID string `json:"id"`

	// UserID and UserName denormalize the owning account. UserName is a
	// snapshot taken at scan time and is intentionally not kept in sync
	// with later renames.
	UserID   string `json:"userId"`
	UserName string `json:"userName"`

	// OriginalImageURL references the uploaded image; ContourImageURL is
	// the optional visual-analysis overlay returned by the inference
	// service (a data URL with embedded base64 JPEG).
	OriginalImageURL string `json:"originalImageUrl"`
	ContourImageURL  string `json:"contourImageUrl,omitempty"`

	Diagnosis DiagnosisResult `json:"diagnosis"`
	CreatedAt time.Time       `json:"createdAt"`
	ImageType ImageType       `json:"imageType"`
	BodyPart  string          `json:"bodyPart"`
}
