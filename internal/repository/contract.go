package repository

import (
	"context"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
)

type RegistrationRepository interface {
	AddRegistration(ctx context.Context, data dto.RegistrationRequest) (id string, err error)
	GetRegistrations(ctx context.Context) (data []domain.Registration, err error)
	GetRegistrationByID(ctx context.Context, id string) (registration domain.Registration, err error)
	UpdateRegistration(ctx context.Context, id string, data dto.RegistrationRequest) (err error)
	DeleteRegistration(ctx context.Context, id string) (err error)
	FindRegistrationIDs(ctx context.Context, filters map[string]interface{}) (ids []string, err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (id string, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	FindProducts(ctx context.Context, filters map[string]interface{}) (data []domain.Product, err error)
	FindProductIDs(ctx context.Context, filters map[string]interface{}) (ids []string, err error)
}

type ReservationRepository interface {
	AddReservation(ctx context.Context, data dto.ReservationRequest) (id string, err error)
	GetReservations(ctx context.Context) (data []domain.Reservation, err error)
	GetReservationByID(ctx context.Context, id string) (reservation domain.Reservation, err error)
	UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) (err error)
	DeleteReservation(ctx context.Context, id string) (err error)
	FindReservations(ctx context.Context, filters map[string]interface{}, productIDs []string, consumerIDs []string) (data []domain.Reservation, err error)
	AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (reservation domain.Reservation, err error)
}
