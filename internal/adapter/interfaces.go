// Package adapter provides transport-layer clients for the two external
// collaborators of the medvision client: the auth service and the inference
// service.
//
// Both adapters are resty-based HTTP clients. Transport-level failures are
// mapped to the sentinel values in errors.go by mapHTTPError so callers can
// use [errors.Is] for status-agnostic handling; the auth adapter
// additionally surfaces the collaborator's `{message}` body text inside the
// returned error.
package adapter

import (
	"context"

	"github.com/medvision-ai/medvision-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter communicates with the remote auth collaborator. It is the
// second stage of the client's two-stage login/register strategy (local
// credential store first, remote fallback second).
type AuthAdapter interface {
	// Login posts the credentials to /api/auth/login. On 2xx the returned
	// value carries the remote user object and an opaque session token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register posts the new account to /api/auth/register. On 2xx a
	// session is expected to be established with the returned user and
	// token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
}

// PredictRequest carries one image submission to the inference collaborator.
type PredictRequest struct {
	// FileName is the original name of the uploaded file.
	FileName string

	// ContentType is the file's MIME type; the submission flow only
	// forwards image/* files.
	ContentType string

	// Data is the raw image payload sent as the multipart "file" field.
	Data []byte

	// Modality selects the acquisition type query parameter.
	Modality models.ImageType
}

// InferenceAdapter communicates with the remote inference collaborator.
type InferenceAdapter interface {
	// Predict uploads the image and returns the collaborator's verdict.
	// Any non-2xx response or transport failure is an error; no retries
	// are attempted.
	Predict(ctx context.Context, req PredictRequest) (models.PredictionResponse, error)
}
