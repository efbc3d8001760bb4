package service

import (
	"github.com/MKhiriev/scholarship-portal/internal/adapter"
	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	ScholarshipService ScholarshipService
	ApplicationService ApplicationService
	ReviewService      ReviewService
	PaymentService     PaymentService
	AppInfoService     AppInfoService
}

func NewServices(
	storages *store.Storages,
	processor adapter.PaymentProcessor,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(cfg.App, validator, logger),
		UserService:        NewUserService(storages.UserRepository, validator, logger),
		ScholarshipService: NewScholarshipService(storages.ScholarshipRepository, validator, logger),
		ApplicationService: NewApplicationService(storages.ApplicationRepository, validator, logger),
		ReviewService:      NewReviewService(storages.ReviewRepository, validator, logger),
		PaymentService:     NewPaymentService(processor, cfg.Payment, logger),
		AppInfoService:     appInfoService,
	}, nil
}
