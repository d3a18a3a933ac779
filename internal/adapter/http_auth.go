package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

type httpAuthAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an [AuthAdapter] talking to the auth
// collaborator at cfg.AuthURL.
func NewHTTPAuthAdapter(cfg config.ClientAdapter, log *logger.Logger) AuthAdapter {
	baseURL := cfg.AuthURL
	if baseURL == "" {
		baseURL = config.DefaultAuthURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpAuthAdapter{client: cli, logger: log}
}

func (a *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	a.logger.Debug().Str("email", req.Email).Msg("remote login succeeded")
	return out, nil
}

func (a *httpAuthAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	a.logger.Debug().Str("email", req.Email).Msg("remote register succeeded")
	return out, nil
}
