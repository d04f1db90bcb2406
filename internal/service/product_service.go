package service

import (
	"context"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/repository"
	"github.com/agroconecta/marketplace-service/pkg/errs"
)

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func CreateProductService(repo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{repo: repo}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (id dto.DocumentID, err error) {
	newID, err := s.repo.AddProduct(ctx, data)
	if err != nil {
		return
	}

	return dto.DocumentID{ID: newID}, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	return s.repo.GetProducts(ctx)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (err error) {
	return s.repo.UpdateProduct(ctx, id, data)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.repo.DeleteProduct(ctx, id)
}

// FilterProducts runs AND-composed equality predicates over the allow-listed
// product fields. Keys outside the allow-list are ignored.
func (s *ProductServiceImpl) FilterProducts(ctx context.Context, filters map[string]interface{}) (data []domain.Product, err error) {
	data, err = s.repo.FindProducts(ctx, allowedProductFilters(filters))
	if err != nil {
		return
	}

	if len(data) == 0 {
		return nil, errs.ErrNoProductMatch
	}

	return data, nil
}
