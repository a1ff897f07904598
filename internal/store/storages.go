package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages aggregates every persistence dependency of the services.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	AvatarStorage  AvatarStorage

	db *DB
}

// NewStorages connects to the configured database, migrates it, and builds
// the repositories and the avatar backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	avatars, err := newAvatarStorage(ctx, cfg.Avatars, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		AvatarStorage:  avatars,
		db:             db,
	}, nil
}

func newAvatarStorage(ctx context.Context, cfg config.Avatars, log *logger.Logger) (AvatarStorage, error) {
	switch cfg.Backend {
	case config.AvatarBackendS3:
		return NewS3AvatarStorage(ctx, cfg, log)
	case config.AvatarBackendFile, "":
		return NewFileAvatarStorage(cfg.Dir, cfg.URLPrefix, log), nil
	default:
		return nil, fmt.Errorf("unsupported avatar backend %q", cfg.Backend)
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
