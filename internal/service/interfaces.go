package service

import (
	"context"

	"github.com/MKhiriev/go-delivery-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	Login(ctx context.Context, req models.CreateSessionRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type DeliveryService interface {
	CreateDelivery(ctx context.Context, req models.CreateDeliveryRequest) (models.Delivery, error)
	ListDeliveries(ctx context.Context) ([]models.Delivery, error)
	UpdateStatus(ctx context.Context, deliveryID string, req models.UpdateDeliveryStatusRequest) (models.Delivery, error)
	AddLog(ctx context.Context, req models.CreateDeliveryLogRequest) (models.DeliveryLog, error)
	GetDelivery(ctx context.Context, deliveryID string, caller models.AuthenticatedUser) (models.Delivery, error)
}
