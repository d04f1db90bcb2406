package service

import (
	"context"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
)

type RegistrationService interface {
	AddRegistration(ctx context.Context, data dto.RegistrationRequest) (id dto.DocumentID, err error)
	GetRegistrations(ctx context.Context) (data []domain.Registration, err error)
	GetRegistrationByID(ctx context.Context, id string) (registration domain.Registration, err error)
	UpdateRegistration(ctx context.Context, id string, data dto.RegistrationRequest) (err error)
	DeleteRegistration(ctx context.Context, id string) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (id dto.DocumentID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	FilterProducts(ctx context.Context, filters map[string]interface{}) (data []domain.Product, err error)
}

type ReservationService interface {
	AddReservation(ctx context.Context, data dto.ReservationRequest) (id dto.DocumentID, err error)
	GetReservations(ctx context.Context) (data []domain.Reservation, err error)
	GetReservationByID(ctx context.Context, id string) (reservation domain.Reservation, err error)
	UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) (err error)
	DeleteReservation(ctx context.Context, id string) (err error)
	FilterReservations(ctx context.Context, filters map[string]interface{}) (data []domain.Reservation, err error)
	AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (reservation domain.Reservation, err error)
}
