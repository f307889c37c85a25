package service

import (
	"github.com/MKhiriev/go-delivery-tracker/internal/config"
	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/internal/store"
	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/internal/validators"
	"github.com/MKhiriev/go-delivery-tracker/models"
)

type Services struct {
	AuthService     AuthService
	DeliveryService DeliveryService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	uuidGen := utils.NewUUIDGenerator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, uuidGen, cfg, logger),
		DeliveryService: NewDeliveryService(storages.DeliveryRepository, validator, uuidGen, models.DefaultStatusTransitions(), logger),
	}
}
