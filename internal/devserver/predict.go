package devserver

import (
	"hash/fnv"
	"io"
	"net/http"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// maxUploadBytes bounds the in-memory multipart parse.
const maxUploadBytes = 32 << 20

// predictLabels are the raw model labels the stub cycles through. They match
// what the real inference service emits.
var predictLabels = []string{"Normal", "Pneumonia", "Tuberculosis", "Fractured"}

// predict is a deterministic stand-in for the inference collaborator: the
// verdict is derived from a hash of the uploaded bytes, so resubmitting the
// same image always yields the same label and confidence.
func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	modality := r.URL.Query().Get("modality")
	if modality != string(models.ImageTypeXRay) && modality != string(models.ImageTypeCT) {
		writeError(w, http.StatusBadRequest, "unknown modality")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("multipart parse failed")
		writeError(w, http.StatusBadRequest, "expected multipart form upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	hasher := fnv.New64a()
	if _, err := io.Copy(hasher, file); err != nil {
		log.Err(err).Msg("reading upload failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	sum := hasher.Sum64()

	label := predictLabels[sum%uint64(len(predictLabels))]
	confidence := 0.75 + float64((sum>>8)%2000)/10000

	log.Info().
		Str("file", header.Filename).
		Str("modality", modality).
		Str("sensitivity", r.URL.Query().Get("sensitivity")).
		Str("label", label).
		Msg("stub prediction issued")

	writeJSON(w, http.StatusOK, models.PredictionResponse{
		Prediction: models.Prediction{
			Label:      label,
			Confidence: confidence,
			IsNormal:   label == "Normal",
		},
	})
}
