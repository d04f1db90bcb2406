package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
)

type mockRegistrationRepository struct {
	mock.Mock
}

func (m *mockRegistrationRepository) AddRegistration(ctx context.Context, data dto.RegistrationRequest) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *mockRegistrationRepository) GetRegistrations(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Registration)
	return data, args.Error(1)
}

func (m *mockRegistrationRepository) GetRegistrationByID(ctx context.Context, id string) (domain.Registration, error) {
	args := m.Called(ctx, id)
	registration, _ := args.Get(0).(domain.Registration)
	return registration, args.Error(1)
}

func (m *mockRegistrationRepository) UpdateRegistration(ctx context.Context, id string, data dto.RegistrationRequest) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockRegistrationRepository) DeleteRegistration(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRegistrationRepository) FindRegistrationIDs(ctx context.Context, filters map[string]interface{}) ([]string, error) {
	args := m.Called(ctx, filters)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) AddProduct(ctx context.Context, data dto.ProductRequest) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *mockProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Product)
	return data, args.Error(1)
}

func (m *mockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(domain.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) FindProducts(ctx context.Context, filters map[string]interface{}) ([]domain.Product, error) {
	args := m.Called(ctx, filters)
	data, _ := args.Get(0).([]domain.Product)
	return data, args.Error(1)
}

func (m *mockProductRepository) FindProductIDs(ctx context.Context, filters map[string]interface{}) ([]string, error) {
	args := m.Called(ctx, filters)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) AddReservation(ctx context.Context, data dto.ReservationRequest) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *mockReservationRepository) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]domain.Reservation)
	return data, args.Error(1)
}

func (m *mockReservationRepository) GetReservationByID(ctx context.Context, id string) (domain.Reservation, error) {
	args := m.Called(ctx, id)
	reservation, _ := args.Get(0).(domain.Reservation)
	return reservation, args.Error(1)
}

func (m *mockReservationRepository) UpdateReservation(ctx context.Context, id string, data dto.ReservationRequest) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *mockReservationRepository) DeleteReservation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReservationRepository) FindReservations(ctx context.Context, filters map[string]interface{}, productIDs []string, consumerIDs []string) ([]domain.Reservation, error) {
	args := m.Called(ctx, filters, productIDs, consumerIDs)
	data, _ := args.Get(0).([]domain.Reservation)
	return data, args.Error(1)
}

func (m *mockReservationRepository) AttachEvaluation(ctx context.Context, id string, data dto.EvaluationRequest) (domain.Reservation, error) {
	args := m.Called(ctx, id, data)
	reservation, _ := args.Get(0).(domain.Reservation)
	return reservation, args.Error(1)
}
