package controller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) AddProduct(ctx context.Context, data dto.ProductRequest) (dto.DocumentID, error) {
	args := m.Called(ctx, data)
	id, _ := args.Get(0).(dto.DocumentID)
	return id, args.Error(1)
}

func (m *mockProductService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Product)
	return data, args.Error(1)
}

func (m *mockProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(domain.Product)
	return product, args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductService) FilterProducts(ctx context.Context, filters map[string]interface{}) ([]domain.Product, error) {
	args := m.Called(ctx, filters)
	data, _ := args.Get(0).([]domain.Product)
	return data, args.Error(1)
}

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) AddReservation(ctx context.Context, data dto.ReservationRequest) (dto.DocumentID, error) {
	args := m.Called(ctx, data)
	id, _ := args.Get(0).(dto.DocumentID)
	return id, args.Error(1)
}

func (m *mockReservationService) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Reservation)
	return data, args.Error(1)
}

func (m *mockReservationService) GetReservationByID(ctx context.Context, id string) (domain.Reservation, error) {
	args := m.Called(ctx, id)
	reservation, _ := args.Get(0).(domain.Reservation)
	return reservation, args.Error(1)
}

func (m *mockReservationService) UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockReservationService) DeleteReservation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReservationService) FilterReservations(ctx context.Context, filters map[string]interface{}) ([]domain.Reservation, error) {
	args := m.Called(ctx, filters)
	data, _ := args.Get(0).([]domain.Reservation)
	return data, args.Error(1)
}

func (m *mockReservationService) AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (domain.Reservation, error) {
	args := m.Called(ctx, id, data)
	reservation, _ := args.Get(0).(domain.Reservation)
	return reservation, args.Error(1)
}
