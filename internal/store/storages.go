package store

import (
	"context"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/config"
	"github.com/teamgrid/richinfo-server/internal/logger"
)

// Storages aggregates all repositories behind their interfaces so the
// service layer receives one wired container.
type Storages struct {
	UserRepository     UserRepository
	TeamRepository     TeamRepository
	RichInfoRepository RichInfoRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// returns the repository container.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TeamRepository:     NewTeamRepository(db, log),
		RichInfoRepository: NewRichInfoRepository(db, log),
	}, nil
}
