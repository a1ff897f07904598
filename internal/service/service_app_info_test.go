package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_Info(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	info := svc.Info(context.Background())

	assert.Equal(t, "go-blog", info.Name)
	assert.Equal(t, "v1.2.3-beta+build.42", info.Version)
}

func TestAppInfoService_Info_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.Info(ctx).Version)
}

func TestAppInfoService_BuildInfoWins(t *testing.T) {
	build := models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "dev"}, build, logger.Nop())
	require.NoError(t, err)

	info := svc.Info(context.Background())

	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "2026-10-01", info.BuildDate)
	assert.Equal(t, "abc123", info.BuildCommit)
}

func TestAppBuildInfo_Version(t *testing.T) {
	assert.Equal(t, "dev", models.AppBuildInfo{}.Version("dev"))
	assert.Equal(t, "2.0.0", models.NewAppBuildInfo("2.0.0", "", "").Version("dev"))
}
