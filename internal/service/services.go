package service

import (
	"github.com/medvision-ai/medvision-client/internal/adapter"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/store"
)

// ClientServices bundles every service of the running client.
type ClientServices struct {
	AuthService      ClientAuthService
	AdminService     AdminService
	StatsService     StatsService
	HistoryService   HistoryService
	DiagnosisService DiagnosisService
}

// NewClientServices wires the service layer over the local storages and the
// two collaborator adapters.
func NewClientServices(storages *store.ClientStorages, authAdapter adapter.AuthAdapter, inferenceAdapter adapter.InferenceAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(storages, authAdapter, log),
		AdminService:     NewAdminService(storages, log),
		StatsService:     NewStatsService(storages.Scans, nil),
		HistoryService:   NewHistoryService(storages.Scans, log),
		DiagnosisService: NewDiagnosisService(storages.Scans, inferenceAdapter, log, nil),
	}
}
