package httpapi

import (
	"sync/atomic"

	"go.uber.org/zap"

	"jobtracker-engine/internal/config"
	"jobtracker-engine/internal/digest"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/store"
)

type Deps struct {
	Log *zap.Logger

	// Catalog is read-only for the process lifetime.
	Catalog []domain.Job

	Prefs   store.Prefs
	Saved   store.Saved
	Digests *digest.Generator

	Hub *events.Hub

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
