package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// Services aggregates every service the transport layer calls. Form-taking
// services come wrapped with input validation.
type Services struct {
	AuthService          AuthService
	SessionService       SessionService
	PasswordResetService PasswordResetService
	PostService          PostService
	AccountService       AccountService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	hasher := NewBcryptHasher(cfg.BcryptCost)
	authService, err := NewAuthService(storages.UserRepository, hasher, logger)
	if err != nil {
		return nil, err
	}
	resetService := NewPasswordResetService(authService, NewResetTokenCodec(cfg, nil), mailer, cfg, logger)

	return &Services{
		AuthService:          NewAuthValidationService().Wrap(authService),
		SessionService:       NewSessionService(storages.UserRepository, cfg, logger),
		PasswordResetService: NewPasswordResetValidationService().Wrap(resetService),
		PostService:          NewPostValidationService().Wrap(NewPostService(storages, cfg, logger)),
		AccountService:       NewAccountValidationService().Wrap(NewAccountService(storages.UserRepository, storages.AvatarStorage, logger)),
		AppInfoService:       appInfoService,
	}, nil
}
