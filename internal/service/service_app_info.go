package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

const appName = "go-blog"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService reports the version stamped into the binary at build
// time, falling back to the configured one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.AppInfo(appName, cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", info.Version).Msg("app info service created")
	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) Info(ctx context.Context) models.AppInfo {
	return s.info
}
