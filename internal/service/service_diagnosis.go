package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/medvision-ai/medvision-client/internal/adapter"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/internal/utils"
	"github.com/medvision-ai/medvision-client/models"
)

// selectedFile is the staged upload between SelectFile and Submit.
type selectedFile struct {
	name        string
	contentType string
	data        []byte
}

// diagnosisService implements [DiagnosisService]. State transitions run
// under the mutex; the remote Predict call itself does not, so the UI can
// keep reading State while a submission is in flight.
type diagnosisService struct {
	scans     store.ScanRepository
	inference adapter.InferenceAdapter
	logger    *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	state  SubmissionState
	file   *selectedFile
	result *models.Scan
}

// NewDiagnosisService constructs a [DiagnosisService] over the scan
// repository and the inference adapter. now is the clock stamped onto
// created scans; pass nil for time.Now.
func NewDiagnosisService(scans store.ScanRepository, inference adapter.InferenceAdapter, log *logger.Logger, now func() time.Time) DiagnosisService {
	if now == nil {
		now = time.Now
	}
	return &diagnosisService{
		scans:     scans,
		inference: inference,
		logger:    log,
		now:       now,
		state:     StateIdle,
	}
}

func (d *diagnosisService) SelectFile(name, contentType string, data []byte) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	d.file = &selectedFile{name: name, contentType: contentType, data: data}
	d.result = nil
	d.state = StateFileSelected
	return nil
}

func (d *diagnosisService) Submit(ctx context.Context, user models.User, modality models.ImageType) (models.Scan, error) {
	d.mu.Lock()
	if d.state == StateSubmitting {
		d.mu.Unlock()
		return models.Scan{}, ErrSubmissionInFlight
	}
	if d.file == nil {
		d.mu.Unlock()
		return models.Scan{}, ErrNoFileSelected
	}
	file := d.file
	d.state = StateSubmitting
	d.mu.Unlock()

	resp, err := d.inference.Predict(ctx, adapter.PredictRequest{
		FileName:    file.name,
		ContentType: file.contentType,
		Data:        file.data,
		Modality:    modality,
	})
	if err != nil {
		d.fail()
		d.logger.Error().Err(err).Str("file", file.name).Msg("inference submission failed")
		return models.Scan{}, fmt.Errorf("%w: %v", ErrServer, err)
	}

	scan := d.buildScan(user, modality, file, resp)
	if err := d.scans.Append(ctx, scan); err != nil {
		d.fail()
		return models.Scan{}, fmt.Errorf("persist scan: %w", err)
	}

	d.mu.Lock()
	d.result = &scan
	d.state = StateSucceeded
	d.mu.Unlock()

	d.logger.Info().
		Str("scanID", scan.ID).
		Str("disease", string(scan.Diagnosis.Disease)).
		Float64("confidence", scan.Diagnosis.Confidence).
		Msg("diagnosis completed")
	return scan, nil
}

// fail drops a running submission back to fileSelected. The staged file is
// retained so a retry is just another Submit.
func (d *diagnosisService) fail() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file != nil {
		d.state = StateFileSelected
		return
	}
	d.state = StateFailed
}

func (d *diagnosisService) buildScan(user models.User, modality models.ImageType, file *selectedFile, resp models.PredictionResponse) models.Scan {
	disease := mapPredictionLabel(resp.Prediction.Label)

	risk := models.RiskHigh
	if resp.Prediction.IsNormal {
		risk = models.RiskLow
	}

	regions := []string{"Detected zones"}
	if resp.Prediction.IsNormal {
		regions = []string{}
	}

	bodyPart := "Chest"
	if modality == models.ImageTypeCT {
		bodyPart = "CT Scan Area"
	}

	original := "file://" + file.name
	contour := original
	if resp.VisualAnalysis != "" {
		contour = "data:image/jpeg;base64," + resp.VisualAnalysis
	}

	return models.Scan{
		ID:               utils.NewID(),
		UserID:           user.ID,
		UserName:         user.Name,
		OriginalImageURL: original,
		ContourImageURL:  contour,
		Diagnosis: models.DiagnosisResult{
			Disease:         disease,
			Confidence:      resp.Prediction.Confidence,
			RiskLevel:       risk,
			Explanation:     liveExplanations[disease],
			AffectedRegions: regions,
			Recommendations: liveRecommendations[disease],
		},
		CreatedAt: d.now(),
		ImageType: modality,
		BodyPart:  bodyPart,
	}
}

func (d *diagnosisService) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.file = nil
	d.result = nil
	d.state = StateIdle
}

func (d *diagnosisService) State() SubmissionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *diagnosisService) Result() (models.Scan, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.result == nil {
		return models.Scan{}, false
	}
	return *d.result, true
}
