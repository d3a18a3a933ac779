package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// sensitivityParam is the fixed sensitivity the client always submits with;
// the inference service treats it as a detection threshold tuning knob.
const sensitivityParam = "120"

type httpInferenceAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPInferenceAdapter constructs an [InferenceAdapter] talking to the
// inference collaborator at cfg.InferenceURL.
func NewHTTPInferenceAdapter(cfg config.ClientAdapter, log *logger.Logger) InferenceAdapter {
	baseURL := cfg.InferenceURL
	if baseURL == "" {
		baseURL = config.DefaultInferenceURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpInferenceAdapter{client: cli, logger: log}
}

func (a *httpInferenceAdapter) Predict(ctx context.Context, req PredictRequest) (models.PredictionResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"modality":    string(req.Modality),
			"sensitivity": sensitivityParam,
		}).
		SetMultipartField("file", req.FileName, req.ContentType, bytes.NewReader(req.Data)).
		Post("/predict")
	if err != nil {
		return models.PredictionResponse{}, fmt.Errorf("predict request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PredictionResponse{}, err
	}

	var out models.PredictionResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PredictionResponse{}, fmt.Errorf("decode predict response: %w", err)
	}

	a.logger.Debug().
		Str("label", out.Prediction.Label).
		Float64("confidence", out.Prediction.Confidence).
		Msg("prediction received")

	return out, nil
}
