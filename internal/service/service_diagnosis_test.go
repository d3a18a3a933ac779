package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medvision-ai/medvision-client/internal/adapter"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/mock"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/models"
)

var testClinician = models.User{ID: "user-1", Name: "Dr. Sarah Johnson", Email: "sarah@medvision.ai", Role: models.RoleDoctor}

func newTestDiagnosisSvc(t *testing.T, ctrl *gomock.Controller) (DiagnosisService, store.ScanRepository, *mock.MockInferenceAdapter) {
	t.Helper()

	storages := store.NewClientStoragesWithKV(store.NewMemoryStorage(), logger.Nop())
	mockInference := mock.NewMockInferenceAdapter(ctrl)
	now := func() time.Time { return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC) }
	return NewDiagnosisService(storages.Scans, mockInference, logger.Nop(), now), storages.Scans, mockInference
}

func TestSelectFile_RejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestDiagnosisSvc(t, ctrl)

	err := svc.SelectFile("report.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrNotAnImage)
	assert.Equal(t, StateIdle, svc.State())
}

func TestSelectFile_StagesImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestDiagnosisSvc(t, ctrl)

	require.NoError(t, svc.SelectFile("chest.png", "image/png", []byte{1, 2, 3}))
	assert.Equal(t, StateFileSelected, svc.State())
}

func TestSubmit_WithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestDiagnosisSvc(t, ctrl)

	_, err := svc.Submit(context.Background(), testClinician, models.ImageTypeXRay)
	assert.ErrorIs(t, err, ErrNoFileSelected)
}

func TestSubmit_SuccessMapsVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, scans, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	payload := []byte{0xFF, 0xD8, 0xFF}
	require.NoError(t, svc.SelectFile("chest.jpg", "image/jpeg", payload))

	mockInference.EXPECT().
		Predict(ctx, adapter.PredictRequest{FileName: "chest.jpg", ContentType: "image/jpeg", Data: payload, Modality: models.ImageTypeXRay}).
		Return(models.PredictionResponse{
			Prediction:     models.Prediction{Label: "Tuberculosis", Confidence: 0.91, IsNormal: false},
			VisualAnalysis: "b64contour",
		}, nil)

	scan, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	require.NoError(t, err)

	assert.Equal(t, models.DiseaseTuberculosis, scan.Diagnosis.Disease)
	assert.Equal(t, 0.91, scan.Diagnosis.Confidence)
	assert.Equal(t, models.RiskHigh, scan.Diagnosis.RiskLevel)
	assert.Equal(t, liveExplanations[models.DiseaseTuberculosis], scan.Diagnosis.Explanation)
	assert.Equal(t, liveRecommendations[models.DiseaseTuberculosis], scan.Diagnosis.Recommendations)
	assert.Equal(t, []string{"Detected zones"}, scan.Diagnosis.AffectedRegions)
	assert.Equal(t, "data:image/jpeg;base64,b64contour", scan.ContourImageURL)
	assert.Equal(t, "Chest", scan.BodyPart)
	assert.Equal(t, testClinician.ID, scan.UserID)
	assert.Equal(t, testClinician.Name, scan.UserName)

	assert.Equal(t, StateSucceeded, svc.State())
	result, ok := svc.Result()
	require.True(t, ok)
	assert.Equal(t, scan.ID, result.ID)

	stored, err := scans.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, scan.ID, stored[0].ID)
}

func TestSubmit_NormalVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SelectFile("ct.png", "image/png", []byte{1}))

	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionResponse{
			Prediction: models.Prediction{Label: "Normal", Confidence: 0.97, IsNormal: true},
		}, nil)

	scan, err := svc.Submit(ctx, testClinician, models.ImageTypeCT)
	require.NoError(t, err)

	assert.Equal(t, models.DiseaseNormal, scan.Diagnosis.Disease)
	assert.Equal(t, models.RiskLow, scan.Diagnosis.RiskLevel)
	assert.Empty(t, scan.Diagnosis.AffectedRegions)
	assert.Equal(t, "CT Scan Area", scan.BodyPart)
	// no visual analysis: contour falls back to the original reference
	assert.Equal(t, scan.OriginalImageURL, scan.ContourImageURL)
}

func TestSubmit_UnknownLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SelectFile("x.png", "image/png", []byte{1}))

	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionResponse{
			Prediction: models.Prediction{Label: "Covid-19", Confidence: 0.5, IsNormal: false},
		}, nil)

	scan, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	require.NoError(t, err)
	assert.Equal(t, models.DiseaseUnknown, scan.Diagnosis.Disease)
	assert.Equal(t, models.RiskHigh, scan.Diagnosis.RiskLevel)
}

func TestSubmit_FailureRetainsFileForRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, scans, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SelectFile("chest.png", "image/png", []byte{1}))

	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionResponse{}, errors.New("connection refused"))

	_, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, StateFileSelected, svc.State())

	stored, err := scans.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "failed submissions must not be recorded")

	// retry without reselecting the file
	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionResponse{
			Prediction: models.Prediction{Label: "Pneumonia", Confidence: 0.8, IsNormal: false},
		}, nil)

	scan, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	require.NoError(t, err)
	assert.Equal(t, models.DiseasePneumonia, scan.Diagnosis.Disease)
	assert.Equal(t, StateSucceeded, svc.State())
}

func TestSubmit_DuplicateInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SelectFile("chest.png", "image/png", []byte{1}))

	release := make(chan struct{})
	started := make(chan struct{})
	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, adapter.PredictRequest) (models.PredictionResponse, error) {
			close(started)
			<-release
			return models.PredictionResponse{
				Prediction: models.Prediction{Label: "Normal", Confidence: 0.9, IsNormal: true},
			}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
		done <- err
	}()

	<-started
	assert.Equal(t, StateSubmitting, svc.State())

	_, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.ErrorIs(t, svc.SelectFile("other.png", "image/png", []byte{2}), ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateSucceeded, svc.State())
}

func TestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockInference := newTestDiagnosisSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SelectFile("chest.png", "image/png", []byte{1}))
	mockInference.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionResponse{
			Prediction: models.Prediction{Label: "Normal", Confidence: 0.9, IsNormal: true},
		}, nil)

	_, err := svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	require.NoError(t, err)

	svc.Reset()
	assert.Equal(t, StateIdle, svc.State())
	_, ok := svc.Result()
	assert.False(t, ok)

	_, err = svc.Submit(ctx, testClinician, models.ImageTypeXRay)
	assert.ErrorIs(t, err, ErrNoFileSelected)
}
