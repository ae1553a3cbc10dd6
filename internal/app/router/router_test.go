package router

import (
	"testing"

	"creditscoring/internal/pkg/config"
	mongodb "creditscoring/internal/pkg/db/mongo"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouterRequiresDatabase(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Scoring.CacheTTLMinutes = 15
	cfg.Scoring.AnalyticsWorkers = 2

	assert.Panics(t, func() {
		SetupRouter(cfg, &mongodb.MongoClient{}, nil)
	}, "SetupRouter should panic without an initialized database connection")
}
