package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/pkg/errs"
)

func TestFilterProducts_IgnoresUnknownKeys(t *testing.T) {
	productRepo := &mockProductRepository{}
	svc := CreateProductService(productRepo)

	expected := []domain.Product{{ID: primitive.NewObjectID(), Category: "fruta"}}

	productRepo.On("FindProducts", mock.Anything, map[string]interface{}{"categoriaProduto": "fruta"}).
		Return(expected, nil)

	data, err := svc.FilterProducts(context.Background(), map[string]interface{}{
		"categoriaProduto": "fruta",
		"campoInvalido":    "x",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, data)
	productRepo.AssertExpectations(t)
}

func TestFilterProducts_NoMatch(t *testing.T) {
	productRepo := &mockProductRepository{}
	svc := CreateProductService(productRepo)

	productRepo.On("FindProducts", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)

	_, err := svc.FilterProducts(context.Background(), map[string]interface{}{"categoriaProduto": "fruta"})

	assert.ErrorIs(t, err, errs.ErrNoProductMatch)
}

func TestAddProduct(t *testing.T) {
	productRepo := &mockProductRepository{}
	svc := CreateProductService(productRepo)

	category := "fruta"
	name := "banana prata"
	payload := dto.ProductRequest{Name: &name, Category: &category}

	productRepo.On("AddProduct", mock.Anything, payload).Return("p1", nil)

	id, err := svc.AddProduct(context.Background(), payload)

	assert.NoError(t, err)
	assert.Equal(t, dto.DocumentID{ID: "p1"}, id)
}

func TestGetProductByID_NotFound(t *testing.T) {
	productRepo := &mockProductRepository{}
	svc := CreateProductService(productRepo)

	productRepo.On("GetProductByID", mock.Anything, "missing").
		Return(domain.Product{}, errs.ErrProductNotFound)

	_, err := svc.GetProductByID(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}
