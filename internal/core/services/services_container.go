package services

import (
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extractor portssvc.Extractor, advisor portssvc.Advisor) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledgers: NewLedgerRegistry(repos.SnapshotRepo, extractor, advisor,
			WithUndatedGroupLabel(cfg.UndatedGroupLabel),
			WithDefaultLanguage(cfg.DefaultLanguage),
		),
	}
}
