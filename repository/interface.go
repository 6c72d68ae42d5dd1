package repository

import (
	"context"

	"benbao-ev/models"
)

// VehicleRepositoryInterface defines the contract for vehicle catalog operations
type VehicleRepositoryInterface interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Upsert(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

// AccessoryRepositoryInterface defines the contract for accessory catalog operations
type AccessoryRepositoryInterface interface {
	List(ctx context.Context, category string) ([]models.Accessory, error)
	GetByID(ctx context.Context, id string) (*models.Accessory, error)
	Upsert(ctx context.Context, accessory *models.Accessory) error
	Delete(ctx context.Context, id string) error
}

// AssetRepositoryInterface defines the contract for branding asset storage
type AssetRepositoryInterface interface {
	GetLogo(ctx context.Context) (string, error)
	SaveLogo(ctx context.Context, dataURI string) error
	DeleteLogo(ctx context.Context) error
}
