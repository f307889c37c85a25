package store

import (
	"context"

	"github.com/MKhiriev/go-delivery-tracker/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery models.Delivery) (models.Delivery, error)
	ListDeliveries(ctx context.Context) ([]models.Delivery, error)
	GetDeliveryByID(ctx context.Context, deliveryID string) (models.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (models.Delivery, error)
	CreateDeliveryLog(ctx context.Context, log models.DeliveryLog) (models.DeliveryLog, error)
}
