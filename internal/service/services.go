package service

import (
	"github.com/formkeeper/formkeeper/internal/config"
	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	FormService     FormService
	ProspectService ProspectService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		FormService: NewFormService(storages.FormRepository, storages.ComponentRepository, logger),
		ProspectService: NewProspectService(
			storages.FormRepository,
			storages.ComponentRepository,
			storages.ProspectRepository,
			logger,
		),
	}
}
