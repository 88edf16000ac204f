package service

import (
	"github.com/teamgrid/richinfo-server/internal/config"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/store"
)

type Services struct {
	AuthService       AuthService
	TeamService       TeamService
	AccessGateService AccessGateService
	RichInfoService   RichInfoService
	AppInfoService    AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	accessGate := NewAccessGateService(storages.TeamRepository, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		TeamService:       NewTeamService(storages.TeamRepository, logger),
		AccessGateService: accessGate,
		RichInfoService:   NewRichInfoService(storages.RichInfoRepository, accessGate, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
