// Package devserver is a self-contained stand-in for the two remote
// collaborators of the medvision client: the auth service and the inference
// service. It keeps registered accounts in memory and derives deterministic
// stub predictions from the uploaded image bytes, so the full client flow
// can be exercised without any real backend.
package devserver

import (
	"sync"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

// account is one registered devserver user. The password is stored as a
// bcrypt hash.
type account struct {
	user         models.User
	passwordHash []byte
}

// Handler carries the devserver's state and settings across requests.
type Handler struct {
	cfg    *config.DevServerConfig
	logger *logger.Logger

	mu       sync.Mutex
	accounts map[string]account // keyed by lowercased email
}

// NewHandler constructs a devserver handler with an empty account set.
func NewHandler(cfg *config.DevServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("devserver handler created")
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		accounts: make(map[string]account),
	}
}
