package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/service"
	"github.com/agroconecta/marketplace-service/pkg/errs"
	"github.com/agroconecta/marketplace-service/pkg/response"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	g := e.Group("/produtos")
	g.GET("", c.GetProducts)
	g.POST("/filtro", c.FilterProducts)
	g.GET("/:id", c.GetProductByID)
	g.POST("", c.AddProduct)
	g.PUT("/:id", c.UpdateProduct)
	g.DELETE("/:id", c.DeleteProduct)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao criar o produto")
	}

	id, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao criar o produto")
	}

	return response.WriteSuccessResponse(e, "Produto cadastrado com sucesso.", id)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	data, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar os produtos")
	}

	return response.WriteSuccessResponse(e, "Lista de produtos cadastrados:", data)
}

func (c *ProductController) FilterProducts(e echo.Context) error {
	filters := map[string]interface{}{}
	if err := e.Bind(&filters); err != nil {
		log.Error().Err(err).Str("component", "FilterProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao buscar os produtos")
	}

	data, err := c.service.FilterProducts(e.Request().Context(), filters)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar os produtos")
	}

	return response.WriteSuccessResponse(e, "Produtos encontrados.", data)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar o produto")
	}

	return response.WriteSuccessResponse(e, "Produto encontrado.", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")

	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao atualizar o produto")
	}

	if err := c.service.UpdateProduct(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao atualizar o produto")
	}

	return response.WriteSuccessResponse(e, "Produto atualizado com sucesso.", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	if err := c.service.DeleteProduct(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao excluir o produto")
	}

	return response.WriteSuccessResponse(e, "Produto excluído com sucesso.", nil)
}
