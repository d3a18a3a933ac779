package service

import "github.com/medvision-ai/medvision-client/models"

// labelLexicon maps the inference service's raw labels to diagnostic
// categories. Anything outside the lexicon is reported as unknown.
var labelLexicon = map[string]models.Disease{
	"Fractured":    models.DiseaseBoneFracture,
	"Normal":       models.DiseaseNormal,
	"Pneumonia":    models.DiseasePneumonia,
	"Tuberculosis": models.DiseaseTuberculosis,
}

// mapPredictionLabel translates a raw model label into a Disease.
func mapPredictionLabel(label string) models.Disease {
	if d, ok := labelLexicon[label]; ok {
		return d
	}
	return models.DiseaseUnknown
}

// liveExplanations is the fixed per-disease explanation text attached to
// live submissions. The text is static content keyed by the AI verdict, not
// derived from the collaborator's response.
var liveExplanations = map[models.Disease]string{
	models.DiseaseTuberculosis: "The AI analysis identified characteristic features consistent with pulmonary tuberculosis:\n\n1. **Upper Lobe Infiltrates**: Detected nodular opacities.\n2. **Cavitary Lesions**: Identified potential cavitation suggesting active disease.\n3. **Tree-in-Bud Pattern**: Observed branching linear opacities.\n\nThe confidence score reflects similarity to known positive TB cases.",
	models.DiseasePneumonia:    "The AI analysis detected patterns consistent with bacterial pneumonia:\n\n1. **Lobar Consolidation**: Identified dense opacity in the lower lung lobes.\n2. **Silhouette Sign**: Obscuration of borders indicating localization.\n3. **Pleural Effusion**: Fluid detected at the costophrenic angle.",
	models.DiseaseBoneFracture: "The AI analysis detected a bone fracture with the following findings:\n\n1. **Cortical Disruption**: Clear discontinuity in the bone cortex identified.\n2. **Alignment Assessment**: Evaluation of displacement at the site.\n3. **Soft Tissue Changes**: Associated swelling observed.",
	models.DiseaseNormal:       "The AI analysis found no significant abnormalities:\n\n1. **Lung Fields**: Both lung fields appear clear.\n2. **Cardiac Silhouette**: Heart size and shape are within normal limits.\n3. **Bony Structures**: No acute bony abnormalities identified.",
	models.DiseaseUnknown:      "The AI was unable to make a definitive diagnosis due to image quality or atypical patterns.",
}

// liveRecommendations is the fixed per-disease recommendation list attached
// to live submissions. Order is display order.
var liveRecommendations = map[models.Disease][]string{
	models.DiseaseTuberculosis: {"Sputum AFB smear and culture", "GeneXpert MTB/RIF testing", "Contact tracing", "Initiate DOTS therapy"},
	models.DiseasePneumonia:    {"Blood cultures", "Empiric antibiotic therapy", "Monitor oxygen saturation", "Follow-up X-ray in 4-6 weeks"},
	models.DiseaseBoneFracture: {"Orthopedic consultation", "Additional imaging views", "Immobilization", "Pain management"},
	models.DiseaseNormal:       {"No immediate intervention required", "Routine health maintenance"},
	models.DiseaseUnknown:      {"Clinical correlation recommended", "Consider CT scan", "Specialist consultation"},
}

// DiseaseName returns the human-readable name of a diagnostic category, as
// shown on the results screen and in exported reports.
func DiseaseName(d models.Disease) string {
	switch d {
	case models.DiseaseTuberculosis:
		return "Tuberculosis (TB)"
	case models.DiseasePneumonia:
		return "Pneumonia"
	case models.DiseaseBoneFracture:
		return "Bone Fracture"
	case models.DiseaseNormal:
		return "Normal"
	default:
		return "Inconclusive"
	}
}
